package middleware

import (
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c, "Unauthorized: invalid or expired token")
		},
	})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    "unauthorized",
		Message: message,
	})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    "forbidden",
		Message: message,
	})
}
