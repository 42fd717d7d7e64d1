package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NUTRIPLAN_BACK-END/internal/config"
)

var testCfg = &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "bob", "bob@example.com", testCfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testCfg)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, "bob@example.com", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "bob", "bob@example.com", testCfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, &config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Hour})
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	expired := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute}
	token, err := GenerateToken(42, "bob", "bob@example.com", expired)
	require.NoError(t, err)

	_, err = ValidateToken(token, testCfg)
	require.Error(t, err)
}

func authTestRequest(authHeader string) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return httptest.NewRecorder(), req
}

func TestAuthMiddlewarePassesUserID(t *testing.T) {
	token, err := GenerateToken(42, "bob", "bob@example.com", testCfg)
	require.NoError(t, err)

	var gotID int64
	var ok bool
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotID, ok = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}, testCfg)

	res, req := authTestRequest("Bearer " + token)
	handler(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.True(t, ok)
	assert.Equal(t, int64(42), gotID)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}, testCfg)

	res, req := authTestRequest("")
	handler(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), "Authorization header required")
}

func TestAuthMiddlewareBadHeaderFormat(t *testing.T) {
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a malformed header")
	}, testCfg)

	res, req := authTestRequest("Token abc")
	handler(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), "Invalid authorization header format")
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}, testCfg)

	res, req := authTestRequest("Bearer not-a-token")
	handler(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), "Invalid token")
}
