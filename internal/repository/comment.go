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

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByCatch(ctx context.Context, catchID uint) ([]*models.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db, log: observability.NewRepoLogger("comments")}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "create", map[string]interface{}{"comment_id": comment.ID, "catch_id": comment.FishCatchID})
	cache.InvalidateCatch(ctx, comment.FishCatchID)
	cache.InvalidateCatchList(ctx)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Select("comments.*, users.nickname AS author_name").
		Joins("JOIN users ON users.id = comments.user_id").
		First(&comment, "comments.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

// ListByCatch returns all comments on a catch oldest first so threads read
// top down.
func (r *commentRepository) ListByCatch(ctx context.Context, catchID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Select("comments.*, users.nickname AS author_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.fish_catch_id = ?", catchID).
		Order("comments.created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	comment, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "delete", map[string]interface{}{"comment_id": id, "catch_id": comment.FishCatchID})
	cache.InvalidateCatch(ctx, comment.FishCatchID)
	cache.InvalidateCatchList(ctx)
	return nil
}
