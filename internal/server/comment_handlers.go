package server

import (
	"github.com/gofiber/fiber/v2"

	"photogram/internal/models"
)

// CreateComment handles POST /comment/:postId
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(c.UserContext(), userID, postID, req.Body)
	if err != nil {
		return respondError(c, err)
	}

	p := newPresenter(c.BaseURL(), nil)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"comment": p.comment(comment),
	})
}

// DeleteComment handles DELETE /comment/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	commentID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commentService.DeleteComment(c.UserContext(), userID, commentID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": "Ok, comment deleted.",
	})
}
