package server

import (
	"github.com/gofiber/fiber/v2"

	"photogram/internal/models"
	"photogram/internal/service"
)

// GetFeed handles GET /posts. Pagination is cursor based: startId is the id
// of the last post the client already has, and pages walk ids downward.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	startID := c.QueryInt("startId", 0)
	if startID < 0 {
		return respondError(c, models.NewValidationError("Invalid startId parameter."))
	}

	result, err := s.feedService.Feed(c.UserContext(), viewer(c), uint(startID))
	if err != nil {
		return respondError(c, err)
	}

	if result.NoFollows {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"msg": "Follow users to see their posts.",
		})
	}

	p := newPresenter(c.BaseURL(), result.FollowedIDs)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts":          p.posts(result.Posts),
		"are_posts_over": result.ArePostsOver,
	})
}

// CreatePost handles POST /posts. The request is multipart: a caption field
// plus one or more files under the images field.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid multipart form"))
	}

	caption := c.FormValue("caption")

	var uploads []service.ImageUpload
	var closers []func() error
	defer func() {
		for _, closeFile := range closers {
			_ = closeFile()
		}
	}()
	for _, header := range form.File["images"] {
		file, err := header.Open()
		if err != nil {
			return respondError(c, models.NewValidationError("Unreadable image upload"))
		}
		closers = append(closers, file.Close)
		uploads = append(uploads, service.ImageUpload{
			Filename: header.Filename,
			Content:  file,
		})
	}

	post, err := s.postService.CreatePost(c.UserContext(), userID, caption, uploads)
	if err != nil {
		return respondError(c, err)
	}

	p := newPresenter(c.BaseURL(), nil)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post": p.post(post),
	})
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	postID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postService.DeletePost(c.UserContext(), userID, postID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": "Post has been deleted.",
	})
}

// ToggleLike handles PUT /like/:postId
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	liked, total, err := s.postService.ToggleLike(c.UserContext(), userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	msg := "Like removed."
	if liked {
		msg = "Like added."
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":         msg,
		"is_liked":    liked,
		"total_likes": total,
	})
}
