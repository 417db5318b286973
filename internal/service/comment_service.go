package service

import (
	"context"

	"creel/internal/models"
	"creel/internal/repository"
)

const maxCommentLen = 2000

type CommentService struct {
	commentRepo repository.CommentRepository
	catchRepo   repository.FishCatchRepository
}

type CreateCommentInput struct {
	UserID      uint
	FishCatchID uint
	Content     string
	ParentID    *uint
}

func NewCommentService(commentRepo repository.CommentRepository, catchRepo repository.FishCatchRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, catchRepo: catchRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("comment too long (max 2000 characters)")
	}

	catch, err := s.catchRepo.GetByID(ctx, in.FishCatchID, in.UserID)
	if err != nil {
		return nil, err
	}
	if !catch.IsPublic && catch.UserID != in.UserID {
		return nil, models.NewNotFoundError("Catch", in.FishCatchID)
	}

	// A reply must target a comment on the same catch.
	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.FishCatchID != in.FishCatchID {
			return nil, models.NewValidationError("parent comment belongs to a different catch")
		}
	}

	comment := &models.Comment{
		Content:     in.Content,
		UserID:      in.UserID,
		FishCatchID: in.FishCatchID,
		ParentID:    in.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns every comment on the catch, oldest first.
func (s *CommentService) ListComments(ctx context.Context, catchID uint, viewerID uint) ([]*models.Comment, error) {
	catch, err := s.catchRepo.GetByID(ctx, catchID, viewerID)
	if err != nil {
		return nil, err
	}
	if !catch.IsPublic && catch.UserID != viewerID {
		return nil, models.NewNotFoundError("Catch", catchID)
	}
	return s.commentRepo.ListByCatch(ctx, catchID)
}

func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return models.NewForbiddenError("Only the author can delete a comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
