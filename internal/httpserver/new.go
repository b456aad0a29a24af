package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"listing-directory/internal/middleware"
	sessionHTTP "listing-directory/internal/session/delivery/http"
	"listing-directory/pkg/log"
	"listing-directory/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

// Session is what the server needs from the listing session: the routes it
// backs plus readiness for /ready.
type Session interface {
	sessionHTTP.Session
	Ready() bool
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	middleware middleware.Config

	// Observability
	metrics *metrics.Manager

	// Session domain
	session Session
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Config

	// Metrics is optional; /metrics is not mounted without it.
	Metrics *metrics.Manager

	Session Session
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		middleware:  cfg.Middleware,
		metrics:     cfg.Metrics,
		session:     cfg.Session,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.session == nil {
		return errors.New("session is required")
	}
	return nil
}
