package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creel/internal/auth"
	"creel/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authTestApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": currentUserID(c)})
	})
	return app
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	s, _ := newTestServer()
	app := authTestApp(s)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	s, _ := newTestServer()
	app := authTestApp(s)

	for _, header := range []string{"Bearer", "Basic abc123", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	s, _ := newTestServer()
	app := authTestApp(s)

	token, err := s.tokens.Issue("angler@example.com", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredWrongSigningKey(t *testing.T) {
	s, _ := newTestServer()
	app := authTestApp(s)

	other := auth.NewTokenService("another_secret_another_secret_abc", time.Hour)
	token, err := other.Issue("angler@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredDeactivatedAccount(t *testing.T) {
	s, deps := newTestServer()
	app := authTestApp(s)

	token, err := s.tokens.Issue("gone@example.com", time.Hour)
	require.NoError(t, err)
	deps.userRepo.On("GetByEmail", mock.Anything, "gone@example.com").
		Return(&models.User{ID: 3, Email: "gone@example.com", IsActive: false}, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalUserID(t *testing.T) {
	s, deps := newTestServer()

	app := fiber.New()
	app.Get("/maybe", func(c *fiber.Ctx) error {
		id, ok := s.optionalUserID(c)
		return c.JSON(fiber.Map{"id": id, "ok": ok})
	})

	// Anonymous request passes through with the zero ID.
	req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A garbage token is treated the same as no token.
	req = httptest.NewRequest(http.MethodGet, "/maybe", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A valid token resolves to the user.
	token, err := s.tokens.Issue("angler@example.com", time.Hour)
	require.NoError(t, err)
	deps.userRepo.On("GetByEmail", mock.Anything, "angler@example.com").
		Return(&models.User{ID: 9, Email: "angler@example.com", IsActive: true}, nil)

	req = httptest.NewRequest(http.MethodGet, "/maybe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
