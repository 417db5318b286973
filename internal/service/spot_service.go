package service

import (
	"context"

	"creel/internal/geo"
	"creel/internal/models"
	"creel/internal/observability"
	"creel/internal/repository"
)

const (
	maxSpotNameLen        = 200
	maxSpotDescriptionLen = 2000

	// DefaultNearbyRadiusKm is used when a nearby search omits the radius.
	DefaultNearbyRadiusKm = 10.0
	// DefaultCandidateLimit bounds how many recent public spots a nearby
	// search considers before distance filtering.
	DefaultCandidateLimit = 50
	// MaxNearbyRadiusKm caps the search radius.
	MaxNearbyRadiusKm = 500.0
)

type SpotService struct {
	spotRepo        repository.FishingSpotRepository
	candidateLimit  int
	defaultRadiusKm float64
}

type CreateSpotInput struct {
	UserID      uint
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	IsPublic    *bool
}

type NearbySpotsInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

func NewSpotService(spotRepo repository.FishingSpotRepository, candidateLimit int, defaultRadiusKm float64) *SpotService {
	if candidateLimit <= 0 {
		candidateLimit = DefaultCandidateLimit
	}
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = DefaultNearbyRadiusKm
	}
	return &SpotService{
		spotRepo:        spotRepo,
		candidateLimit:  candidateLimit,
		defaultRadiusKm: defaultRadiusKm,
	}
}

func (s *SpotService) CreateSpot(ctx context.Context, in CreateSpotInput) (*models.FishingSpot, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("name is required")
	}
	if len(in.Name) > maxSpotNameLen {
		return nil, models.NewValidationError("name too long (max 200 characters)")
	}
	if len(in.Description) > maxSpotDescriptionLen {
		return nil, models.NewValidationError("description too long (max 2000 characters)")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return nil, models.NewValidationError("latitude must be between -90 and 90")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return nil, models.NewValidationError("longitude must be between -180 and 180")
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	spot := &models.FishingSpot{
		Name:        in.Name,
		Description: in.Description,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		UserID:      in.UserID,
		IsPublic:    isPublic,
	}
	if err := s.spotRepo.Create(ctx, spot); err != nil {
		return nil, err
	}
	return s.spotRepo.GetByID(ctx, spot.ID)
}

// ListNearbySpots returns public spots within the radius of the given point,
// closest first. Only the most recent public spots, up to the candidate
// limit, are considered.
func (s *SpotService) ListNearbySpots(ctx context.Context, in NearbySpotsInput) ([]*models.FishingSpot, error) {
	if in.Latitude < -90 || in.Latitude > 90 {
		return nil, models.NewValidationError("latitude must be between -90 and 90")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return nil, models.NewValidationError("longitude must be between -180 and 180")
	}
	radius := in.RadiusKm
	if radius == 0 {
		radius = s.defaultRadiusKm
	}
	if radius < 0 || radius > MaxNearbyRadiusKm {
		return nil, models.NewValidationError("radius_km must be between 0 and 500")
	}

	candidates, err := s.spotRepo.ListRecentPublic(ctx, s.candidateLimit)
	if err != nil {
		return nil, err
	}
	observability.NearbyQueriesTotal.Inc()
	return geo.FindNearby(in.Latitude, in.Longitude, radius, candidates), nil
}

func (s *SpotService) ListUserSpots(ctx context.Context, userID uint, page, limit int, viewerID uint) ([]*models.FishingSpot, error) {
	lim, offset, err := normalizePagination(page, limit)
	if err != nil {
		return nil, err
	}
	return s.spotRepo.ListByUser(ctx, userID, lim, offset, viewerID)
}

// GetSpot returns a single spot. Private spots are reported as not found to
// anyone but their owner.
func (s *SpotService) GetSpot(ctx context.Context, id uint, viewerID uint) (*models.FishingSpot, error) {
	spot, err := s.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !spot.IsPublic && spot.UserID != viewerID {
		return nil, models.NewNotFoundError("Fishing spot", id)
	}
	return spot, nil
}

func (s *SpotService) DeleteSpot(ctx context.Context, userID, spotID uint) error {
	spot, err := s.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		return err
	}
	if spot.UserID != userID {
		return models.NewForbiddenError("Only the owner can delete a spot")
	}
	return s.spotRepo.Delete(ctx, spotID)
}
