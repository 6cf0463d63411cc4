package server

import (
	"errors"
	"fmt"
	"testing"

	"showcase/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", models.NewValidationError("bad input"), fiber.StatusBadRequest},
		{"not found", models.NewNotFoundError("Post", 1), fiber.StatusNotFound},
		{"unauthorized", models.NewUnauthorizedError("nope"), fiber.StatusForbidden},
		{"upload failed", models.NewUploadError(errors.New("host down")), fiber.StatusBadGateway},
		{"internal", models.NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"plain error", errors.New("anything"), fiber.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("context: %w", models.NewNotFoundError("User", 2)), fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapServiceError(tt.err))
		})
	}
}
