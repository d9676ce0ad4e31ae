package middlewares

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/pkg"
	"github.com/qassab/loyalty-core/pkg/adminkey"
	"github.com/qassab/loyalty-core/pkg/ratelimit"
)

// RateLimitMiddleware handles rate limiting
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
}

// NewRateLimitMiddleware creates a new RateLimitMiddleware
func NewRateLimitMiddleware(limiter ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// LimitByIP creates a middleware that limits requests by IP address
func (m *RateLimitMiddleware) LimitByIP(limit ratelimit.Rate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ip:%s", c.IP())
		return m.handle(c, key, limit)
	}
}

// LimitByAdminKey creates a middleware that limits requests per staff key,
// falling back to the IP when the key header is absent.
func (m *RateLimitMiddleware) LimitByAdminKey(limit ratelimit.Rate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ip:%s", c.IP())
		if raw := c.Get(adminkey.HeaderName); raw != "" {
			key = fmt.Sprintf("adminkey:%s", raw)
		}
		return m.handle(c, key, limit)
	}
}

func (m *RateLimitMiddleware) handle(c *fiber.Ctx, key string, limit ratelimit.Rate) error {
	allowed, info := m.limiter.Allow(key, limit)

	c.Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	c.Set("X-RateLimit-Reset", strconv.FormatInt(info.Reset.Unix(), 10))

	if !allowed {
		return pkg.ErrorResponse(c, errors.NewAppError(
			fiber.StatusTooManyRequests,
			"RATE_LIMITED",
			"Rate limit exceeded",
		))
	}

	return c.Next()
}
