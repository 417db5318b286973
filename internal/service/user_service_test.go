package service

import (
	"context"
	"testing"

	"creel/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("nickname conflict", func(t *testing.T) {
		users := noopUserRepo()
		users.getByNicknameFn = func(_ context.Context, nickname string) (*models.User, error) {
			return &models.User{ID: 99, Nickname: nickname}, nil
		}
		svc := NewUserService(users)
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Nickname: "taken_name"})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("invalid nickname", func(t *testing.T) {
		svc := NewUserService(noopUserRepo())
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Nickname: "x"})
		assert.Error(t, err)
	})

	t.Run("updates fields", func(t *testing.T) {
		users := noopUserRepo()
		var saved *models.User
		users.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(users)
		got, err := svc.UpdateProfile(ctx, UpdateProfileInput{
			UserID: 1, Nickname: "new_name", Bio: "fly fisher", AvatarURL: "/uploads/a.jpg",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "new_name", got.Nickname)
		assert.Equal(t, "fly fisher", got.Bio)
		assert.Equal(t, "/uploads/a.jpg", got.AvatarURL)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	const current = "CurrentPass12!"

	newRepo := func() *userRepoStub {
		users := noopUserRepo()
		hash := bcryptHash(t, current)
		users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Password: hash}, nil
		}
		return users
	}

	t.Run("wrong current password", func(t *testing.T) {
		svc := NewUserService(newRepo())
		err := svc.ChangePassword(ctx, ChangePasswordInput{
			UserID: 1, OldPassword: "WrongPass12!", NewPassword: "FreshPass34$x",
		})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})

	t.Run("weak new password", func(t *testing.T) {
		svc := NewUserService(newRepo())
		err := svc.ChangePassword(ctx, ChangePasswordInput{
			UserID: 1, OldPassword: current, NewPassword: "short",
		})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("success rehashes", func(t *testing.T) {
		users := newRepo()
		var saved *models.User
		users.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(users)
		err := svc.ChangePassword(ctx, ChangePasswordInput{
			UserID: 1, OldPassword: current, NewPassword: "FreshPass34$x",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("FreshPass34$x")))
	})
}
