package actor

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const localsKey = "actor"

var ErrNoActor = errors.New("no authenticated actor in context")

// SubjectFromToken extracts the user UUID from the JWT stored by the jwt
// middleware.
func SubjectFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

func Set(c *fiber.Ctx, a Actor) {
	c.Locals(localsKey, a)
}

func Get(c *fiber.Ctx) (Actor, error) {
	a, ok := c.Locals(localsKey).(Actor)
	if !ok {
		return Actor{}, ErrNoActor
	}
	return a, nil
}
