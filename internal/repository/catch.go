// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"creel/internal/cache"
	"creel/internal/models"
	"creel/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FishCatchRepository defines persistence operations for catches.
type FishCatchRepository interface {
	Create(ctx context.Context, catch *models.FishCatch) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.FishCatch, error)
	List(ctx context.Context, limit, offset int, viewerID uint) ([]*models.FishCatch, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.FishCatch, error)
	GetLiked(ctx context.Context, userID uint, limit, offset int) ([]*models.FishCatch, error)
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, userID, catchID uint) (bool, error)
	Unlike(ctx context.Context, userID, catchID uint) (bool, error)
}

type fishCatchRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewFishCatchRepository returns a new FishCatchRepository implementation.
func NewFishCatchRepository(db *gorm.DB) FishCatchRepository {
	return &fishCatchRepository{db: db, log: observability.NewRepoLogger("fish_catches")}
}

// applyCatchDetails adds the owner nickname join plus subqueries that fetch
// engagement counts and the viewer's liked flag in a single query. A zero
// viewerID means anonymous and always reads as not liked.
func (r *fishCatchRepository) applyCatchDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "fish_catches.*, users.nickname AS owner_name, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.fish_catch_id = fish_catches.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.fish_catch_id = fish_catches.id) as likes_count"

	joined := db.Joins("JOIN users ON users.id = fish_catches.user_id")

	if viewerID != 0 {
		return joined.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.fish_catch_id = fish_catches.id AND likes.user_id = ?) as liked", viewerID)
	}

	return joined.Select(selectQuery + ", false as liked")
}

func (r *fishCatchRepository) Create(ctx context.Context, catch *models.FishCatch) error {
	if err := r.db.WithContext(ctx).Create(catch).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "create", map[string]interface{}{"catch_id": catch.ID, "user_id": catch.UserID})
	cache.InvalidateCatchList(ctx)
	return nil
}

func (r *fishCatchRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.FishCatch, error) {
	var catch models.FishCatch

	fetch := func() error {
		if err := r.applyCatchDetails(r.db.WithContext(ctx), viewerID).
			First(&catch, "fish_catches.id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Catch", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	// Only the anonymous view is cacheable, the liked flag is per viewer.
	var err error
	if viewerID == 0 {
		err = cache.Aside(ctx, cache.CatchKey(id), &catch, cache.CatchTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return &catch, nil
}

func (r *fishCatchRepository) List(ctx context.Context, limit, offset int, viewerID uint) ([]*models.FishCatch, error) {
	var catches []*models.FishCatch

	fetch := func() error {
		err := r.applyCatchDetails(r.db.WithContext(ctx), viewerID).
			Where("fish_catches.is_public = ?", true).
			Order("fish_catches.created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&catches).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	// Only the anonymous feed is cacheable, the liked flag is per viewer.
	var err error
	if viewerID == 0 {
		err = cache.Aside(ctx, cache.CatchListKey(limit, offset), &catches, cache.CatchListTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return catches, nil
}

// GetByUserID lists a user's catches newest first. Private catches are
// included only when the viewer is the owner.
func (r *fishCatchRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.FishCatch, error) {
	var catches []*models.FishCatch
	q := r.applyCatchDetails(r.db.WithContext(ctx), viewerID).
		Where("fish_catches.user_id = ?", userID)
	if viewerID != userID {
		q = q.Where("fish_catches.is_public = ?", true)
	}
	err := q.Order("fish_catches.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&catches).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return catches, nil
}

// GetLiked lists the catches a user has liked, most recently liked first.
func (r *fishCatchRepository) GetLiked(ctx context.Context, userID uint, limit, offset int) ([]*models.FishCatch, error) {
	var catches []*models.FishCatch
	err := r.applyCatchDetails(r.db.WithContext(ctx), userID).
		Joins("JOIN likes user_likes ON user_likes.fish_catch_id = fish_catches.id AND user_likes.user_id = ?", userID).
		Where("fish_catches.is_public = ? OR fish_catches.user_id = ?", true, userID).
		Order("user_likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&catches).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return catches, nil
}

func (r *fishCatchRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.FishCatch{}, id).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "delete", map[string]interface{}{"catch_id": id})
	cache.InvalidateCatch(ctx, id)
	cache.InvalidateCatchList(ctx)
	return nil
}

// Like inserts the like row if absent. Returns true when the row was
// created, false when the user already liked the catch. The insert relies on
// the unique index, so concurrent likes cannot double count.
func (r *fishCatchRepository) Like(ctx context.Context, userID, catchID uint) (bool, error) {
	like := models.Like{UserID: userID, FishCatchID: catchID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "fish_catch_id"}},
			DoNothing: true,
		}).
		Create(&like)
	if result.Error != nil {
		r.log.LogError(ctx, result.Error, "like")
		return false, models.NewInternalError(result.Error)
	}
	applied := result.RowsAffected > 0
	if applied {
		r.log.LogWrite(ctx, "like", map[string]interface{}{"catch_id": catchID, "user_id": userID})
		cache.InvalidateCatch(ctx, catchID)
		cache.InvalidateCatchList(ctx)
	}
	return applied, nil
}

// Unlike removes the like row if present. Returns true when a row was
// removed, false when the user had not liked the catch.
func (r *fishCatchRepository) Unlike(ctx context.Context, userID, catchID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND fish_catch_id = ?", userID, catchID).
		Delete(&models.Like{})
	if result.Error != nil {
		r.log.LogError(ctx, result.Error, "unlike")
		return false, models.NewInternalError(result.Error)
	}
	applied := result.RowsAffected > 0
	if applied {
		r.log.LogWrite(ctx, "unlike", map[string]interface{}{"catch_id": catchID, "user_id": userID})
		cache.InvalidateCatch(ctx, catchID)
		cache.InvalidateCatchList(ctx)
	}
	return applied, nil
}
