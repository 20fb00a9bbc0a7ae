package middleware

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

// LoadActor resolves the JWT subject to a user row and stores the resulting
// actor in the request locals. It must run after JWTProtected.
func LoadActor(store *repository.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := actor.SubjectFromToken(c)
		if err != nil {
			return unauthorized(c, "Unauthorized")
		}

		user, err := store.Users.FindByID(c.UserContext(), userID)
		if err != nil {
			slog.Error("failed to load actor", "user_id", userID.String(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Code:    "internal",
				Message: "Internal server error",
			})
		}
		if user == nil {
			return unauthorized(c, "Unauthorized: user no longer exists")
		}

		actor.Set(c, actor.FromUser(user))
		return c.Next()
	}
}

// SellerRequired rejects actors without a store.
func SellerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := actor.Get(c)
		if err != nil {
			return unauthorized(c, "Unauthorized")
		}
		if !a.IsSeller() {
			return forbidden(c, "A seller account is required")
		}
		return c.Next()
	}
}
