package server

import (
	"github.com/gofiber/fiber/v2"

	"photogram/internal/models"
)

// authPayload is the shaped account returned by login and init_auth. The
// token rides alongside the viewer's own user shape.
type authPayload struct {
	UserPayload
	Token string `json:"token"`
}

func authResponse(c *fiber.Ctx, user *models.User, token *models.Token) authPayload {
	p := newPresenter(c.BaseURL(), nil)
	return authPayload{
		UserPayload: p.user(user),
		Token:       token.Key,
	}
}

// Register handles POST /register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if _, err := s.authService.Register(c.UserContext(), req.Username, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg": "Account created. Please log in.",
	})
}

// Login handles POST /login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	user, token, err := s.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(authResponse(c, user, token))
}

// InitAuth handles GET /init_auth. Clients call it on startup with a stored
// token to restore their session.
func (s *Server) InitAuth(c *fiber.Ctx) error {
	key := tokenFromHeader(c)
	user, err := s.authService.ResolveToken(c.UserContext(), key)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.tokenRepo.GetByKey(c.UserContext(), key)
	if err != nil || token == nil {
		return respondError(c, models.NewUnauthenticatedError())
	}

	return c.Status(fiber.StatusOK).JSON(authResponse(c, user, token))
}
