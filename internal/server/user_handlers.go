package server

import (
	"showcase/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.userService.GetOwnProfile(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(profile)
}

// SearchUsers handles GET /api/users/search?username=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	users, err := s.userService.SearchUsernames(c.UserContext(), c.Query("username"))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// GetPublicProfile handles GET /api/users/:username
func (s *Server) GetPublicProfile(c *fiber.Ctx) error {
	profile, err := s.userService.GetPublicProfile(c.UserContext(), c.Params("username"))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(profile)
}
