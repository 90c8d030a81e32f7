package server

import (
	"github.com/gofiber/fiber/v2"

	"photogram/internal/models"
)

// GetUsers handles GET /users. The full directory is returned in reverse
// id order; authenticated viewers see is_followed flags.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	v := viewer(c)

	users, err := s.userService.ListUsers(c.UserContext(), v)
	if err != nil {
		return respondError(c, err)
	}

	p := newPresenter(c.BaseURL(), nil)
	shaped := make([]UserPayload, 0, len(users))
	for i := range users {
		shaped = append(shaped, p.user(&users[i]))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": shaped,
	})
}

// ToggleFollow handles PUT /follow/:userId
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	targetID, err := parseID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	following, err := s.followService.ToggleFollow(c.UserContext(), userID, targetID)
	if err != nil {
		return respondError(c, err)
	}

	msg := "Following removed."
	if following {
		msg = "Following created."
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":         msg,
		"is_followed": following,
	})
}

// SetAvatar handles POST /avatar. The request is multipart with the image
// under the avatar field.
func (s *Server) SetAvatar(c *fiber.Ctx) error {
	v := viewer(c)
	user := v.User()

	header, err := c.FormFile("avatar")
	if err != nil {
		return respondError(c, models.NewValidationError("An avatar file is required."))
	}
	file, err := header.Open()
	if err != nil {
		return respondError(c, models.NewValidationError("Unreadable avatar upload"))
	}
	defer file.Close()

	profile, err := s.userService.SetAvatar(c.UserContext(), user, header.Filename, file)
	if err != nil {
		return respondError(c, err)
	}

	p := newPresenter(c.BaseURL(), nil)
	user.Profile = profile
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"avatar": p.avatarURL(user),
	})
}

// ResetAvatar handles DELETE /avatar and restores the default avatar.
func (s *Server) ResetAvatar(c *fiber.Ctx) error {
	v := viewer(c)
	user := v.User()

	profile, err := s.userService.ResetAvatar(c.UserContext(), user)
	if err != nil {
		return respondError(c, err)
	}

	p := newPresenter(c.BaseURL(), nil)
	user.Profile = profile
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"avatar": p.avatarURL(user),
	})
}
