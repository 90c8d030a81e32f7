package server

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"photogram/internal/middleware"
	"photogram/internal/models"
)

// tokenFromHeader reads the opaque token carried as the raw value of the
// Authorization header, without a scheme prefix.
func tokenFromHeader(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Get("Authorization"))
}

// AuthRequired resolves the request token and rejects the request when it is
// missing, unknown or expired.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := s.authService.ResolveToken(c.UserContext(), tokenFromHeader(c))
		if err != nil {
			return respondError(c, err)
		}
		c.Locals("userID", user.ID)
		c.Locals("viewer", models.Authenticated(user))
		// Sync to UserContext for logging and downstream services
		c.SetUserContext(context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID))
		return c.Next()
	}
}

// AuthOptional resolves the request token when one is present. Requests with
// a missing or invalid token proceed as anonymous.
func (s *Server) AuthOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := s.authService.ResolveToken(c.UserContext(), tokenFromHeader(c))
		if err != nil {
			c.Locals("viewer", models.Anonymous())
			return c.Next()
		}
		c.Locals("userID", user.ID)
		c.Locals("viewer", models.Authenticated(user))
		c.SetUserContext(context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID))
		return c.Next()
	}
}
