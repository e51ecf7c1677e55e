package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agencybot/internal/auth"
	"agencybot/internal/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(t *testing.T, tokens *auth.TokenManager, revoked *cache.RevocationStore) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/protected", AuthRequired(tokens, revoked), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": c.Locals("username")})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	app := setupAuthApp(t, tokens, cache.NewRevocationStore(nil))

	validToken, _, err := tokens.Issue("alice")
	require.NoError(t, err)

	foreignToken, _, err := auth.NewTokenManager("other-secret", time.Hour).Issue("alice")
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"Missing header", "", http.StatusUnauthorized},
		{"Malformed header", "Token abc", http.StatusUnauthorized},
		{"Invalid token", "Bearer garbage", http.StatusUnauthorized},
		{"Wrong secret", "Bearer " + foreignToken, http.StatusUnauthorized},
		{"Valid token", "Bearer " + validToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAuthRequiredRejectsRevokedToken(t *testing.T) {
	mr := miniredis.RunT(t)
	revoked := cache.NewRevocationStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	app := setupAuthApp(t, tokens, revoked)

	token, claims, err := tokens.Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// after logout the same token stops working
	require.NoError(t, revoked.Revoke(context.Background(), claims.ID, time.Hour))

	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
