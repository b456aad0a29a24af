package middleware

import (
	"listing-directory/pkg/log"
)

// Config holds the knobs for the shared middlewares.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
