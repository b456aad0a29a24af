package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	defaultPingPeriod = 30 * time.Second
	writeWait         = 10 * time.Second
)

// Stream godoc
// @Summary     Stream session state
// @Description Upgrades to a websocket and sends one JSON snapshot per state change, starting with the current one.
// @Tags        Session
// @Router      /api/v1/session/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "session.Stream: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.session.Subscribe()
	defer cancel()

	// The reader only watches for the client going away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case snap, ok := <-updates:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"))
				return
			}
			if err := conn.WriteJSON(newSnapshotResp(snap)); err != nil {
				h.l.Debugf(ctx, "session.Stream: write failed: %v", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-gone:
			return
		case <-ctx.Done():
			return
		}
	}
}
