package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"listing-directory/internal/model"
	"listing-directory/internal/session"
	"listing-directory/pkg/log"
)

// Session is the state object served by this delivery layer.
type Session interface {
	Snapshot() session.Snapshot
	SetFilters(in session.FilterInput) session.Snapshot
	UpdateDraft(fields map[string]string) error
	ResetDraft()
	Submit(ctx context.Context) (model.Listing, error)
	Remove(ctx context.Context, id string) error
	Reload(ctx context.Context) error
	Detail(ctx context.Context, id string) (model.Listing, error)
	Subscribe() (<-chan session.Snapshot, func())
}

type handler struct {
	l          log.Logger
	session    Session
	upgrader   websocket.Upgrader
	pingPeriod time.Duration
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, s Session) *handler {
	return &handler{
		l:       l,
		session: s,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pingPeriod: defaultPingPeriod,
	}
}
