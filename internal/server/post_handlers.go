package server

import (
	"io"

	"showcase/internal/models"
	"showcase/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadImage handles POST /api/posts/upload
func (s *Server) UploadImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username, _ := c.Locals("username").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No image file provided"))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}

	post, err := s.postService.UploadImage(c.UserContext(), service.UploadImageInput{
		UserID:      userID,
		Username:    username,
		Content:     content,
		ContentType: file.Header.Get("Content-Type"),
		Description: c.FormValue("description"),
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"post":    post.Summary(),
	})
}

// GetFeed handles GET /api/posts/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	posts, err := s.postService.GetFeed(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"posts": models.Summaries(posts)})
}

// GetPostsByUsername handles GET /api/posts/user/:username
func (s *Server) GetPostsByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	posts, err := s.postService.GetPostsByUsername(c.UserContext(), username)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"posts": models.Summaries(posts)})
}

// DeletePost handles DELETE /api/posts/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		RequesterID: userID,
		PostID:      postID,
	}); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
