package middleware

import (
	"smart-task-intake/pkg/log"
)

// Middleware bundles the request middlewares: caller scope extraction and
// per-user rate limiting.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds how many intent
// requests a single user may issue per minute.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
