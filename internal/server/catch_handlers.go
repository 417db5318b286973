// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"creel/internal/models"
	"creel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCatches handles GET /api/fish-catches
func (s *Server) GetCatches(c *fiber.Ctx) error {
	ctx := c.Context()
	page := s.parsePageQuery(c)
	viewerID, _ := s.optionalUserID(c)

	catches, err := s.catchService.ListPublicCatches(ctx, service.ListCatchesInput{
		Page:     page.Page,
		Limit:    page.Limit,
		ViewerID: viewerID,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(catches)
}

// GetCatch handles GET /api/fish-catches/:id
func (s *Server) GetCatch(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	catch, err := s.catchService.GetCatch(ctx, id, viewerID)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(catch)
}

// CreateCatch handles POST /api/fish-catches
func (s *Server) CreateCatch(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var req struct {
		FishType     string  `json:"fish_type"`
		Weight       float64 `json:"weight"`
		Description  string  `json:"description,omitempty"`
		Latitude     float64 `json:"latitude"`
		Longitude    float64 `json:"longitude"`
		LocationName string  `json:"location_name,omitempty"`
		ImageURL     string  `json:"image_url,omitempty"`
		IsPublic     *bool   `json:"is_public,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	catch, err := s.catchService.CreateCatch(ctx, service.CreateCatchInput{
		UserID:       userID,
		FishType:     req.FishType,
		Weight:       req.Weight,
		Description:  req.Description,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		LocationName: req.LocationName,
		ImageURL:     req.ImageURL,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(catch)
}

// DeleteCatch handles DELETE /api/fish-catches/:id
func (s *Server) DeleteCatch(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.catchService.DeleteCatch(ctx, userID, id); err != nil {
		return s.respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// LikeCatch handles POST /api/fish-catches/:id/like
func (s *Server) LikeCatch(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	applied, err := s.catchService.LikeCatch(ctx, userID, id)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"liked":   true,
		"applied": applied,
	})
}

// UnlikeCatch handles DELETE /api/fish-catches/:id/like
func (s *Server) UnlikeCatch(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	applied, err := s.catchService.UnlikeCatch(ctx, userID, id)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"liked":   false,
		"applied": applied,
	})
}

// GetUserCatches handles GET /api/users/:id/catches
func (s *Server) GetUserCatches(c *fiber.Ctx) error {
	ctx := c.Context()
	ownerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := s.parsePageQuery(c)
	viewerID, _ := s.optionalUserID(c)

	catches, err := s.catchService.ListUserCatches(ctx, ownerID, service.ListCatchesInput{
		Page:     page.Page,
		Limit:    page.Limit,
		ViewerID: viewerID,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(catches)
}

// GetLikedCatches handles GET /api/users/me/liked-catches
func (s *Server) GetLikedCatches(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	page := s.parsePageQuery(c)

	catches, err := s.catchService.ListLikedCatches(ctx, userID, page.Page, page.Limit)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(catches)
}
