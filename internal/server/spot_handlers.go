// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"strconv"

	"creel/internal/models"
	"creel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetNearbySpots handles GET /api/fishing-spots/nearby?lat=..&lon=..&radius_km=..
func (s *Server) GetNearbySpots(c *fiber.Ctx) error {
	ctx := c.Context()

	lat, err := parseFloatQuery(c, "lat")
	if err != nil {
		return nil
	}
	lon, err := parseFloatQuery(c, "lon")
	if err != nil {
		return nil
	}

	// radius_km is optional; zero means the service default.
	var radius float64
	if raw := c.Query("radius_km"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid radius_km parameter"))
		}
	}

	spots, err := s.spotService.ListNearbySpots(ctx, service.NearbySpotsInput{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  radius,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(spots)
}

// GetSpot handles GET /api/fishing-spots/:id
func (s *Server) GetSpot(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	spot, err := s.spotService.GetSpot(ctx, id, viewerID)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(spot)
}

// CreateSpot handles POST /api/fishing-spots
func (s *Server) CreateSpot(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		IsPublic    *bool   `json:"is_public,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	spot, err := s.spotService.CreateSpot(ctx, service.CreateSpotInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(spot)
}

// GetMySpots handles GET /api/fishing-spots/me
func (s *Server) GetMySpots(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	page := s.parsePageQuery(c)

	spots, err := s.spotService.ListUserSpots(ctx, userID, page.Page, page.Limit, userID)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(spots)
}

// GetUserSpots handles GET /api/users/:id/spots
func (s *Server) GetUserSpots(c *fiber.Ctx) error {
	ctx := c.Context()
	ownerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := s.parsePageQuery(c)
	viewerID, _ := s.optionalUserID(c)

	spots, err := s.spotService.ListUserSpots(ctx, ownerID, page.Page, page.Limit, viewerID)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(spots)
}

// DeleteSpot handles DELETE /api/fishing-spots/:id
func (s *Server) DeleteSpot(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.spotService.DeleteSpot(ctx, userID, id); err != nil {
		return s.respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseFloatQuery extracts a required float query parameter. On failure it
// writes a 400 JSON response and returns errResponseWritten.
func parseFloatQuery(c *fiber.Ctx, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing "+name+" parameter"))
		return 0, errResponseWritten
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+name+" parameter"))
		return 0, errResponseWritten
	}
	return v, nil
}
