package middleware

import (
	"syllabus-tracker/pkg/log"
)

// Config tunes the request middlewares.
type Config struct {
	// UploadPerMin is the per-client upload budget. Zero disables the limit.
	UploadPerMin int
	// AllowedOrigins lists browser origins for CORS. Empty allows any origin.
	AllowedOrigins []string
}

type Middleware struct {
	l              log.Logger
	uploadLimiter  *rateLimiter
	allowedOrigins map[string]struct{}
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		allowedOrigins: make(map[string]struct{}, len(cfg.AllowedOrigins)),
	}
	if cfg.UploadPerMin > 0 {
		mw.uploadLimiter = newRateLimiter(cfg.UploadPerMin)
	}
	for _, o := range cfg.AllowedOrigins {
		mw.allowedOrigins[o] = struct{}{}
	}
	return mw
}
