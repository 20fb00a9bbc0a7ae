package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

var (
	corsMethods = []string{
		fiber.MethodGet, fiber.MethodPost, fiber.MethodPut,
		fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions,
	}
	corsAllowHeaders = []string{
		fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept,
		fiber.HeaderAuthorization, fiber.HeaderXRequestID,
	}
	// Request ids and the rate limiter's headers are readable by browsers.
	corsExposeHeaders = []string{
		fiber.HeaderXRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining",
		"X-RateLimit-Reset", fiber.HeaderRetryAfter,
	}
)

// CORS allows the configured origins. Credentials are only allowed for an
// explicit origin list; fiber rejects them with a wildcard.
func CORS(cfg *config.Config) fiber.Handler {
	origins := strings.TrimSpace(cfg.CORSOrigins)
	if origins == "" {
		origins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     strings.Join(corsMethods, ","),
		AllowHeaders:     strings.Join(corsAllowHeaders, ","),
		ExposeHeaders:    strings.Join(corsExposeHeaders, ","),
		AllowCredentials: origins != "*",
		MaxAge:           int(cfg.CORSMaxAge.Seconds()),
	})
}
