package server

import (
	"context"
	"time"

	"creel/internal/auth"
	"creel/internal/config"
	"creel/internal/featureflags"
	"creel/internal/models"
	"creel/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	args := m.Called(ctx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFishCatchRepository is a mock of the FishCatchRepository interface
type MockFishCatchRepository struct {
	mock.Mock
}

func (m *MockFishCatchRepository) Create(ctx context.Context, catch *models.FishCatch) error {
	args := m.Called(ctx, catch)
	return args.Error(0)
}

func (m *MockFishCatchRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.FishCatch, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FishCatch), args.Error(1)
}

func (m *MockFishCatchRepository) List(ctx context.Context, limit, offset int, viewerID uint) ([]*models.FishCatch, error) {
	args := m.Called(ctx, limit, offset, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FishCatch), args.Error(1)
}

func (m *MockFishCatchRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.FishCatch, error) {
	args := m.Called(ctx, userID, limit, offset, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FishCatch), args.Error(1)
}

func (m *MockFishCatchRepository) GetLiked(ctx context.Context, userID uint, limit, offset int) ([]*models.FishCatch, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FishCatch), args.Error(1)
}

func (m *MockFishCatchRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFishCatchRepository) Like(ctx context.Context, userID, catchID uint) (bool, error) {
	args := m.Called(ctx, userID, catchID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFishCatchRepository) Unlike(ctx context.Context, userID, catchID uint) (bool, error) {
	args := m.Called(ctx, userID, catchID)
	return args.Bool(0), args.Error(1)
}

// MockFishingSpotRepository is a mock of the FishingSpotRepository interface
type MockFishingSpotRepository struct {
	mock.Mock
}

func (m *MockFishingSpotRepository) Create(ctx context.Context, spot *models.FishingSpot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockFishingSpotRepository) GetByID(ctx context.Context, id uint) (*models.FishingSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FishingSpot), args.Error(1)
}

func (m *MockFishingSpotRepository) ListRecentPublic(ctx context.Context, limit int) ([]*models.FishingSpot, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FishingSpot), args.Error(1)
}

func (m *MockFishingSpotRepository) ListByUser(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.FishingSpot, error) {
	args := m.Called(ctx, userID, limit, offset, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FishingSpot), args.Error(1)
}

func (m *MockFishingSpotRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByCatch(ctx context.Context, catchID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, catchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// testDeps bundles the mocks behind a Server wired for handler tests.
type testDeps struct {
	userRepo    *MockUserRepository
	catchRepo   *MockFishCatchRepository
	spotRepo    *MockFishingSpotRepository
	commentRepo *MockCommentRepository
}

// newTestServer builds a Server around fresh mocks, with token issuance
// enabled so auth flows can be exercised end to end.
func newTestServer() (*Server, *testDeps) {
	deps := &testDeps{
		userRepo:    new(MockUserRepository),
		catchRepo:   new(MockFishCatchRepository),
		spotRepo:    new(MockFishingSpotRepository),
		commentRepo: new(MockCommentRepository),
	}

	cfg := &config.Config{
		JWTSecret:        "test_secret_test_secret_test_secret",
		JWTExpiryMinutes: 60,
		DefaultPageSize:  20,
		FeatureFlags:     "uploads=on",
	}

	s := &Server{
		config:       cfg,
		tokens:       auth.NewTokenService(cfg.JWTSecret, time.Hour),
		userRepo:     deps.userRepo,
		catchRepo:    deps.catchRepo,
		spotRepo:     deps.spotRepo,
		commentRepo:  deps.commentRepo,
		featureFlags: featureflags.NewManager(cfg.FeatureFlags),
	}
	s.catchService = service.NewCatchService(deps.catchRepo, deps.userRepo)
	s.spotService = service.NewSpotService(deps.spotRepo, 0, 0)
	s.commentService = service.NewCommentService(deps.commentRepo, deps.catchRepo)
	s.userService = service.NewUserService(deps.userRepo)

	return s, deps
}
