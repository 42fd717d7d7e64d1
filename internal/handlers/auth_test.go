package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"NUTRIPLAN_BACK-END/internal/middleware"
	"NUTRIPLAN_BACK-END/internal/models"
	"NUTRIPLAN_BACK-END/internal/store"
)

func TestRegisterSuccess(t *testing.T) {
	st := &fakeStore{
		createUser: func(username, email, hash string) (models.User, error) {
			return models.User{ID: 7, Username: username, Email: email, PasswordHash: hash}, nil
		},
	}
	h := NewAuthHandler(st, testJWTCfg)

	res := doJSON(t, h.Register, http.MethodPost, "/register",
		`{"username":"bob","email":"bob@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, res.Code)
	body := decodeBody(t, res)
	assert.Equal(t, "User registered successfully", body["message"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), user["id"])
	assert.Equal(t, "bob", user["username"])
	assert.NotContains(t, res.Body.String(), "password")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	st := &fakeStore{
		getByUsername: func(username string) (models.User, error) {
			return models.User{ID: 1, Username: username}, nil
		},
	}
	h := NewAuthHandler(st, testJWTCfg)

	res := doJSON(t, h.Register, http.MethodPost, "/register",
		`{"username":"bob","email":"bob@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "User already exists", decodeBody(t, res)["message"])
}

func TestRegisterMissingFields(t *testing.T) {
	h := NewAuthHandler(&fakeStore{}, testJWTCfg)

	res := doJSON(t, h.Register, http.MethodPost, "/register", `{"username":"bob"}`)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestRegisterMethodNotAllowed(t *testing.T) {
	h := NewAuthHandler(&fakeStore{}, testJWTCfg)

	res := doJSON(t, h.Register, http.MethodGet, "/register", "")

	require.Equal(t, http.StatusMethodNotAllowed, res.Code)
}

func testUserWithPassword(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{ID: 3, Username: "bob", Email: "bob@example.com", PasswordHash: string(hash)}
}

func TestLoginSuccess(t *testing.T) {
	user := testUserWithPassword(t, "secret1")
	st := &fakeStore{
		getByLogin: func(login string) (models.User, error) { return user, nil },
	}
	h := NewAuthHandler(st, testJWTCfg)

	res := doJSON(t, h.Login, http.MethodPost, "/login",
		`{"username":"bob","password":"secret1"}`)

	require.Equal(t, http.StatusOK, res.Code)
	body := decodeBody(t, res)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])
	assert.NotContains(t, res.Body.String(), "password")
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUserWithPassword(t, "secret1")
	st := &fakeStore{
		getByLogin: func(login string) (models.User, error) { return user, nil },
	}
	h := NewAuthHandler(st, testJWTCfg)

	res := doJSON(t, h.Login, http.MethodPost, "/login",
		`{"username":"bob","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, res)["message"])
}

func TestLoginUnknownUser(t *testing.T) {
	h := NewAuthHandler(&fakeStore{}, testJWTCfg)

	res := doJSON(t, h.Login, http.MethodPost, "/login",
		`{"username":"nobody","password":"secret1"}`)

	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestMeWithValidToken(t *testing.T) {
	user := testUserWithPassword(t, "secret1")
	st := &fakeStore{
		getByID: func(id int64) (models.User, error) {
			require.Equal(t, user.ID, id)
			return user, nil
		},
	}
	h := NewAuthHandler(st, testJWTCfg)

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Email, testJWTCfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	middleware.AuthMiddleware(h.Me, testJWTCfg)(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	body := decodeBody(t, res)
	userBody, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bob", userBody["username"])
}

func TestMeWithoutToken(t *testing.T) {
	h := NewAuthHandler(&fakeStore{}, testJWTCfg)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	res := httptest.NewRecorder()
	middleware.AuthMiddleware(h.Me, testJWTCfg)(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestMeUnknownUser(t *testing.T) {
	st := &fakeStore{
		getByID: func(id int64) (models.User, error) { return models.User{}, store.ErrNotFound },
	}
	h := NewAuthHandler(st, testJWTCfg)

	token, err := middleware.GenerateToken(99, "ghost", "ghost@example.com", testJWTCfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	middleware.AuthMiddleware(h.Me, testJWTCfg)(res, req)

	require.Equal(t, http.StatusNotFound, res.Code)
}
