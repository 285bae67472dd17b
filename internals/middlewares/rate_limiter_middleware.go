package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "frontdesk_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// GlobalRateLimiter applies to every endpoint.
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(300, time.Minute, "too many requests, try again later")
}

func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "too many login attempts, try again in a minute")
}

// RegisterRateLimiter is per kiosk IP; a front desk registers many visitors
// from one address, so the window is generous.
func RegisterRateLimiter() fiber.Handler {
	return newLimiter(30, time.Minute, "too many registrations, wait a moment")
}
