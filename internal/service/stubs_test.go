package service

import (
	"context"

	"creel/internal/models"
)

// catchRepoStub is a stub for repository.FishCatchRepository.
type catchRepoStub struct {
	createFn      func(context.Context, *models.FishCatch) error
	getByIDFn     func(context.Context, uint, uint) (*models.FishCatch, error)
	listFn        func(context.Context, int, int, uint) ([]*models.FishCatch, error)
	getByUserIDFn func(context.Context, uint, int, int, uint) ([]*models.FishCatch, error)
	getLikedFn    func(context.Context, uint, int, int) ([]*models.FishCatch, error)
	deleteFn      func(context.Context, uint) error
	likeFn        func(context.Context, uint, uint) (bool, error)
	unlikeFn      func(context.Context, uint, uint) (bool, error)
}

func (s *catchRepoStub) Create(ctx context.Context, catch *models.FishCatch) error {
	return s.createFn(ctx, catch)
}
func (s *catchRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.FishCatch, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *catchRepoStub) List(ctx context.Context, limit, offset int, viewerID uint) ([]*models.FishCatch, error) {
	return s.listFn(ctx, limit, offset, viewerID)
}
func (s *catchRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.FishCatch, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, viewerID)
}
func (s *catchRepoStub) GetLiked(ctx context.Context, userID uint, limit, offset int) ([]*models.FishCatch, error) {
	return s.getLikedFn(ctx, userID, limit, offset)
}
func (s *catchRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *catchRepoStub) Like(ctx context.Context, userID, catchID uint) (bool, error) {
	return s.likeFn(ctx, userID, catchID)
}
func (s *catchRepoStub) Unlike(ctx context.Context, userID, catchID uint) (bool, error) {
	return s.unlikeFn(ctx, userID, catchID)
}

func noopCatchRepo() *catchRepoStub {
	return &catchRepoStub{
		createFn: func(_ context.Context, _ *models.FishCatch) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.FishCatch, error) {
			return &models.FishCatch{ID: id, IsPublic: true}, nil
		},
		listFn: func(_ context.Context, _, _ int, _ uint) ([]*models.FishCatch, error) { return nil, nil },
		getByUserIDFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.FishCatch, error) {
			return nil, nil
		},
		getLikedFn: func(_ context.Context, _ uint, _, _ int) ([]*models.FishCatch, error) { return nil, nil },
		deleteFn:   func(_ context.Context, _ uint) error { return nil },
		likeFn:     func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		unlikeFn:   func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByNicknameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	return s.getByNicknameFn(ctx, nickname)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByNicknameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// spotRepoStub is a stub for repository.FishingSpotRepository.
type spotRepoStub struct {
	createFn           func(context.Context, *models.FishingSpot) error
	getByIDFn          func(context.Context, uint) (*models.FishingSpot, error)
	listRecentPublicFn func(context.Context, int) ([]*models.FishingSpot, error)
	listByUserFn       func(context.Context, uint, int, int) ([]*models.FishingSpot, error)
	deleteFn           func(context.Context, uint) error
}

func (s *spotRepoStub) Create(ctx context.Context, spot *models.FishingSpot) error {
	return s.createFn(ctx, spot)
}
func (s *spotRepoStub) GetByID(ctx context.Context, id uint) (*models.FishingSpot, error) {
	return s.getByIDFn(ctx, id)
}
func (s *spotRepoStub) ListRecentPublic(ctx context.Context, limit int) ([]*models.FishingSpot, error) {
	return s.listRecentPublicFn(ctx, limit)
}
func (s *spotRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.FishingSpot, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *spotRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopSpotRepo() *spotRepoStub {
	return &spotRepoStub{
		createFn:           func(_ context.Context, _ *models.FishingSpot) error { return nil },
		getByIDFn:          func(_ context.Context, id uint) (*models.FishingSpot, error) { return &models.FishingSpot{ID: id}, nil },
		listRecentPublicFn: func(_ context.Context, _ int) ([]*models.FishingSpot, error) { return nil, nil },
		listByUserFn:       func(_ context.Context, _ uint, _, _ int) ([]*models.FishingSpot, error) { return nil, nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByCatchFn func(context.Context, uint) ([]*models.Comment, error)
	deleteFn      func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByCatch(ctx context.Context, catchID uint) ([]*models.Comment, error) {
	return s.listByCatchFn(ctx, catchID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:     func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByCatchFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}
