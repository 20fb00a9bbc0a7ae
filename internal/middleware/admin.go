package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/config"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired admits actors with the admin role or whose email is listed
// in ADMIN_EMAILS. It must run after LoadActor.
func AdminRequired(cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		a, err := actor.Get(c)
		if err != nil {
			return unauthorized(c, "Unauthorized")
		}

		if a.IsAdmin() || contains(adminEmails, a.Email) {
			return c.Next()
		}

		return forbidden(c, "Admin access required")
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if strings.EqualFold(item, val) {
			return true
		}
	}
	return false
}
