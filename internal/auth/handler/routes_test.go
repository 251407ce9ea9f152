package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Induma-Magammana/FitLife-Tracker/config"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/handler"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/repository/memory"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/service"
)

// newTestApp wires the real service stack on the in-memory store.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	tokens := service.NewTokenService("test-secret", time.Hour)
	cfg := &config.Config{BcryptCost: bcrypt.MinCost}
	userService := service.NewUserService(memory.NewUserStore(), tokens, cfg)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, handler.RequireAuth(tokens))
	return app
}

// TestRegisterRoutes verifies that all endpoints are mounted.
func TestRegisterRoutes(t *testing.T) {
	app := newTestApp(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/forgot-password"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/auth/verify"},
		{http.MethodPost, "/api/auth/change-password"},
		{http.MethodGet, "/api/users/profile"},
		{http.MethodPut, "/api/users/profile"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. The handlers themselves
			// will return 400/401 for the empty unauthenticated request.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

// TestSessionFlow walks the full contract: register, case-insensitive login,
// authenticated me/verify, profile update.
func TestSessionFlow(t *testing.T) {
	app := newTestApp(t)

	post := func(path, token string, payload any) *http.Response {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	decode := func(resp *http.Response) map[string]any {
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	// Register.
	resp := post("/api/auth/register", "", map[string]string{
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
		"password":  "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.False(t, strings.Contains(strings.ToLower(string(raw)), "password"),
		"register response must not leak any password material")

	var registered map[string]any
	require.NoError(t, json.Unmarshal(raw, &registered))
	data := registered["data"].(map[string]any)
	user := data["user"].(map[string]any)
	token := data["token"].(string)
	userID := user["id"].(string)

	assert.Equal(t, "a@b.com", user["email"])
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, userID)

	// Login with a different-cased email resolves to the same user.
	resp = post("/api/auth/login", "", map[string]string{
		"email":    "A@B.COM",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loginData := decode(resp)["data"].(map[string]any)
	assert.Equal(t, userID, loginData["user"].(map[string]any)["id"])

	// Authenticated identity endpoints.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	resp = post("/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	verifyData := decode(resp)["data"].(map[string]any)
	assert.Equal(t, userID, verifyData["userId"])

	// Profile update through the users group.
	body, err := json.Marshal(map[string]string{"firstName": "Anna"})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPut, "/api/users/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	updateResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, updateResp.StatusCode)
	updated := decode(updateResp)["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "Anna", updated["firstName"])

	// An expired token is rejected on every protected call.
	expiredTokens := service.NewTokenService("test-secret", -time.Minute)
	expired, err := expiredTokens.Generate(userID)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	expiredResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, expiredResp.StatusCode)
}
