// Package webapi provides the HTTP surface of the accounts service. It is
// organized into sub-packages:
// - account: the ledger endpoints
// - common: shared response helpers and request validation
package webapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kongbank/accounts/app"
	accountweb "github.com/kongbank/accounts/webapi/account"
	"github.com/kongbank/accounts/webapi/common"
)

// SetupApp initializes Fiber with middleware, the health endpoints, and the
// account routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorJSON(c, fiber.StatusInternalServerError, common.CodeInternalError,
				"Internal server error occurred")
		},
	})

	// Rate limiting keyed by client IP. Uses X-Forwarded-For when behind a
	// proxy, falling back to X-Real-IP, then the direct peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, common.CodeInvalidInput,
				"Rate limit exceeded")
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Liveness probe; Fiber serves HEAD for GET routes, so this covers both.
	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("Accounts API is running")
	})

	accountweb.Routes(fiberApp, a.AccountService)
	return fiberApp
}
