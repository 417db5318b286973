// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"creel/internal/models"
	"creel/internal/observability"
	"creel/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	maxFishTypeLen    = 100
	maxDescriptionLen = 5000
	maxLocationLen    = 200
)

type CatchService struct {
	catchRepo repository.FishCatchRepository
	userRepo  repository.UserRepository
}

type CreateCatchInput struct {
	UserID       uint
	FishType     string
	Weight       float64
	Description  string
	Latitude     float64
	Longitude    float64
	LocationName string
	ImageURL     string
	IsPublic     *bool
}

type ListCatchesInput struct {
	Page     int
	Limit    int
	ViewerID uint
}

func NewCatchService(catchRepo repository.FishCatchRepository, userRepo repository.UserRepository) *CatchService {
	return &CatchService{catchRepo: catchRepo, userRepo: userRepo}
}

// normalizePagination applies defaults and bounds checks. Page numbering is
// one-based.
func normalizePagination(page, limit int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if page < 1 {
		return 0, 0, models.NewValidationError("page must be at least 1")
	}
	if limit < 1 || limit > maxPageSize {
		return 0, 0, models.NewValidationError("limit must be between 1 and 100")
	}
	return limit, (page - 1) * limit, nil
}

func (s *CatchService) ListPublicCatches(ctx context.Context, in ListCatchesInput) ([]*models.FishCatch, error) {
	limit, offset, err := normalizePagination(in.Page, in.Limit)
	if err != nil {
		return nil, err
	}
	return s.catchRepo.List(ctx, limit, offset, in.ViewerID)
}

// ListUserCatches lists the catches belonging to userID. The repository hides
// private catches unless the viewer is the owner.
func (s *CatchService) ListUserCatches(ctx context.Context, userID uint, in ListCatchesInput) ([]*models.FishCatch, error) {
	limit, offset, err := normalizePagination(in.Page, in.Limit)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.catchRepo.GetByUserID(ctx, userID, limit, offset, in.ViewerID)
}

// ListLikedCatches lists the catches the viewer liked, most recent like first.
func (s *CatchService) ListLikedCatches(ctx context.Context, viewerID uint, page, limit int) ([]*models.FishCatch, error) {
	lim, offset, err := normalizePagination(page, limit)
	if err != nil {
		return nil, err
	}
	return s.catchRepo.GetLiked(ctx, viewerID, lim, offset)
}

func (s *CatchService) GetCatch(ctx context.Context, id uint, viewerID uint) (*models.FishCatch, error) {
	catch, err := s.catchRepo.GetByID(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}
	if !catch.IsPublic && catch.UserID != viewerID {
		return nil, models.NewNotFoundError("Catch", id)
	}
	return catch, nil
}

func (s *CatchService) CreateCatch(ctx context.Context, in CreateCatchInput) (*models.FishCatch, error) {
	if in.FishType == "" {
		return nil, models.NewValidationError("fish_type is required")
	}
	if len(in.FishType) > maxFishTypeLen {
		return nil, models.NewValidationError("fish_type too long (max 100 characters)")
	}
	if in.Weight <= 0 {
		return nil, models.NewValidationError("weight must be positive")
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, models.NewValidationError("description too long (max 5000 characters)")
	}
	if in.LocationName == "" {
		return nil, models.NewValidationError("location_name is required")
	}
	if len(in.LocationName) > maxLocationLen {
		return nil, models.NewValidationError("location_name too long (max 200 characters)")
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

	catch := &models.FishCatch{
		FishType:     in.FishType,
		Weight:       in.Weight,
		Description:  in.Description,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		LocationName: in.LocationName,
		ImageURL:     in.ImageURL,
		UserID:       in.UserID,
		IsPublic:     isPublic,
	}
	if err := s.catchRepo.Create(ctx, catch); err != nil {
		return nil, err
	}
	observability.CatchesCreatedTotal.Inc()

	// re-read to pick up the computed owner name and zeroed counts
	return s.catchRepo.GetByID(ctx, catch.ID, in.UserID)
}

func (s *CatchService) DeleteCatch(ctx context.Context, userID, catchID uint) error {
	catch, err := s.catchRepo.GetByID(ctx, catchID, userID)
	if err != nil {
		return err
	}
	if catch.UserID != userID {
		return models.NewForbiddenError("Only the owner can delete a catch")
	}
	return s.catchRepo.Delete(ctx, catchID)
}

// LikeCatch records the viewer's like. Liking twice is a no-op; the returned
// flag reports whether this call changed anything.
func (s *CatchService) LikeCatch(ctx context.Context, userID, catchID uint) (bool, error) {
	if _, err := s.GetCatch(ctx, catchID, userID); err != nil {
		return false, err
	}
	applied, err := s.catchRepo.Like(ctx, userID, catchID)
	if err != nil {
		return false, err
	}
	observability.RecordLikeOperation("like", applied)
	return applied, nil
}

// UnlikeCatch removes the viewer's like if present.
func (s *CatchService) UnlikeCatch(ctx context.Context, userID, catchID uint) (bool, error) {
	if _, err := s.GetCatch(ctx, catchID, userID); err != nil {
		return false, err
	}
	applied, err := s.catchRepo.Unlike(ctx, userID, catchID)
	if err != nil {
		return false, err
	}
	observability.RecordLikeOperation("unlike", applied)
	return applied, nil
}
