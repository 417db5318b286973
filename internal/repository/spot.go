// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"creel/internal/cache"
	"creel/internal/models"
	"creel/internal/observability"

	"gorm.io/gorm"
)

// FishingSpotRepository defines persistence operations for fishing spots.
type FishingSpotRepository interface {
	Create(ctx context.Context, spot *models.FishingSpot) error
	GetByID(ctx context.Context, id uint) (*models.FishingSpot, error)
	ListRecentPublic(ctx context.Context, limit int) ([]*models.FishingSpot, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.FishingSpot, error)
	Delete(ctx context.Context, id uint) error
}

type fishingSpotRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewFishingSpotRepository returns a new FishingSpotRepository implementation.
func NewFishingSpotRepository(db *gorm.DB) FishingSpotRepository {
	return &fishingSpotRepository{db: db, log: observability.NewRepoLogger("fishing_spots")}
}

func (r *fishingSpotRepository) Create(ctx context.Context, spot *models.FishingSpot) error {
	if err := r.db.WithContext(ctx).Create(spot).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "create", map[string]interface{}{"spot_id": spot.ID, "user_id": spot.UserID})
	cache.InvalidateSpotCandidates(ctx)
	return nil
}

func (r *fishingSpotRepository) GetByID(ctx context.Context, id uint) (*models.FishingSpot, error) {
	var spot models.FishingSpot
	err := r.db.WithContext(ctx).
		Select("fishing_spots.*, users.nickname AS owner_name").
		Joins("JOIN users ON users.id = fishing_spots.user_id").
		First(&spot, "fishing_spots.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Spot", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &spot, nil
}

// ListRecentPublic returns the newest public spots up to limit. This is the
// candidate window that nearby searches filter by distance.
func (r *fishingSpotRepository) ListRecentPublic(ctx context.Context, limit int) ([]*models.FishingSpot, error) {
	var spots []*models.FishingSpot

	err := cache.Aside(ctx, cache.SpotCandidatesKey(limit), &spots, cache.SpotListTTL, func() error {
		if err := r.db.WithContext(ctx).
			Select("fishing_spots.*, users.nickname AS owner_name").
			Joins("JOIN users ON users.id = fishing_spots.user_id").
			Where("fishing_spots.is_public = ?", true).
			Order("fishing_spots.created_at DESC").
			Limit(limit).
			Find(&spots).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return spots, nil
}

// ListByUser lists a user's spots newest first. Private spots are included
// only when the viewer is the owner.
func (r *fishingSpotRepository) ListByUser(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.FishingSpot, error) {
	var spots []*models.FishingSpot
	err := r.db.WithContext(ctx).
		Select("fishing_spots.*, users.nickname AS owner_name").
		Joins("JOIN users ON users.id = fishing_spots.user_id").
		Where("fishing_spots.user_id = ?", userID).
		Where("fishing_spots.is_public = ? OR fishing_spots.user_id = ?", true, viewerID).
		Order("fishing_spots.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&spots).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return spots, nil
}

func (r *fishingSpotRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.FishingSpot{}, id).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "delete", map[string]interface{}{"spot_id": id})
	cache.InvalidateSpotCandidates(ctx)
	return nil
}
