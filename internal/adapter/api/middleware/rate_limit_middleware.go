package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"laporkota/internal/infrastructure/ratelimit"
	"laporkota/pkg/errors"
	"laporkota/pkg/logger"
	"laporkota/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles the given action per caller. Authenticated callers are
// keyed by uid, anonymous ones by IP. Throttling blunts double-taps on
// submit but does not deduplicate them.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := c.Get("uid").(string)
			if !ok || key == "" {
				key = c.RealIP()
			}

			allowed, waitTime := m.limiter.Allow(key, action)
			if !allowed {
				logger.Warn("Rate limit hit: key=%s, action=%s, retry in %v", key, action, waitTime)
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many requests, retry in %d seconds", int(waitTime.Seconds())+1)))
			}

			return next(c)
		}
	}
}
