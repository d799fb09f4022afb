package owner

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// FromContext extracts the authenticated owner from JWT claims in the
// Fiber context. Guest tokens carry a "guest": true claim; everything
// else is treated as a user token.
func FromContext(c *fiber.Ctx) (Ref, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return Ref{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Ref{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Ref{}, errors.New("missing sub claim")
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return Ref{}, err
	}

	if isGuest, _ := claims["guest"].(bool); isGuest {
		return ForGuest(id), nil
	}
	return ForUser(id), nil
}

// UserIDFromContext returns the user id for routes that require a full
// account (subscriptions, admin). Guest tokens are rejected.
func UserIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	ref, err := FromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	if ref.IsGuest() {
		return uuid.Nil, errors.New("account required")
	}
	return *ref.UserID, nil
}
