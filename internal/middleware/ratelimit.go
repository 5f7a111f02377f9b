package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"syllabus-tracker/pkg/response"
)

const (
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

// RateLimitUpload throttles uploads per client IP.
func (m Middleware) RateLimitUpload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.uploadLimiter == nil {
			c.Next()
			return
		}

		if err := m.uploadLimiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimitUpload: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key; idle keys expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(requestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
