// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"io"

	"creel/internal/models"
	"creel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadImage handles POST /api/uploads. The multipart field name is "image".
func (s *Server) UploadImage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if !s.featureFlags.Enabled("uploads", userID) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Uploads are currently disabled"))
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	result, err := s.mediaService.Upload(service.UploadInput{
		UserID:      userID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
