package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"listing-directory/internal/middleware"
	sessionHTTP "listing-directory/internal/session/delivery/http"
)

// setupSessionDomain registers the listing session routes at /api/v1/session.
// The session itself is built in main because its lifetime spans the server's.
func (srv HTTPServer) setupSessionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := sessionHTTP.New(srv.l, srv.session)
	sessionHTTP.RegisterRoutes(api.Group("/session"), h, mw)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}
