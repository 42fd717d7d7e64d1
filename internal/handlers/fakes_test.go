package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"NUTRIPLAN_BACK-END/internal/config"
	"NUTRIPLAN_BACK-END/internal/models"
	"NUTRIPLAN_BACK-END/internal/store"
)

var testJWTCfg = &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}

// fakeStore implements Store with pluggable behavior per method. Methods
// without an override behave like an empty database.
type fakeStore struct {
	createUser     func(username, email, hash string) (models.User, error)
	getByUsername  func(username string) (models.User, error)
	getByLogin     func(login string) (models.User, error)
	getByID        func(id int64) (models.User, error)
	emailInUse     func(email string) (bool, error)
	updateEmail    func(id int64, email string) error
	updatePassword func(id int64, hash string) error
	insertPlan     func(userID int64, title, plan string) error
	listPlans      func(userID int64) ([]models.MealPlanSummary, error)
	getPlan        func(mealID, userID int64) (string, error)
}

func (f *fakeStore) CreateUser(_ context.Context, username, email, hash string) (models.User, error) {
	if f.createUser != nil {
		return f.createUser(username, email, hash)
	}
	return models.User{ID: 1, Username: username, Email: email, PasswordHash: hash}, nil
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	if f.getByUsername != nil {
		return f.getByUsername(username)
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeStore) GetUserByLogin(_ context.Context, login string) (models.User, error) {
	if f.getByLogin != nil {
		return f.getByLogin(login)
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeStore) GetUserByID(_ context.Context, id int64) (models.User, error) {
	if f.getByID != nil {
		return f.getByID(id)
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeStore) EmailInUse(_ context.Context, email string) (bool, error) {
	if f.emailInUse != nil {
		return f.emailInUse(email)
	}
	return false, nil
}

func (f *fakeStore) UpdateEmail(_ context.Context, id int64, email string) error {
	if f.updateEmail != nil {
		return f.updateEmail(id, email)
	}
	return nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, id int64, hash string) error {
	if f.updatePassword != nil {
		return f.updatePassword(id, hash)
	}
	return nil
}

func (f *fakeStore) InsertMealPlan(_ context.Context, userID int64, title, plan string) error {
	if f.insertPlan != nil {
		return f.insertPlan(userID, title, plan)
	}
	return nil
}

func (f *fakeStore) ListMealPlans(_ context.Context, userID int64) ([]models.MealPlanSummary, error) {
	if f.listPlans != nil {
		return f.listPlans(userID)
	}
	return []models.MealPlanSummary{}, nil
}

func (f *fakeStore) GetMealPlan(_ context.Context, mealID, userID int64) (string, error) {
	if f.getPlan != nil {
		return f.getPlan(mealID, userID)
	}
	return "", store.ErrNotFound
}

// fakeGenerator implements Generator with pluggable behavior per method
type fakeGenerator struct {
	generatePlan  func(prompt, role string) (string, error)
	analyze       func(image []byte) (string, error)
	generateImage func(prompt string) ([]byte, error)
}

func (f *fakeGenerator) GenerateMealPlan(_ context.Context, prompt, role string) (string, error) {
	if f.generatePlan != nil {
		return f.generatePlan(prompt, role)
	}
	return "generated plan", nil
}

func (f *fakeGenerator) AnalyzeFoodImage(_ context.Context, image []byte) (string, error) {
	if f.analyze != nil {
		return f.analyze(image)
	}
	return "breakdown", nil
}

func (f *fakeGenerator) GenerateImage(_ context.Context, prompt string) ([]byte, error) {
	if f.generateImage != nil {
		return f.generateImage(prompt)
	}
	return []byte{1, 2, 3}, nil
}

// doJSON runs a handler against a JSON request body and returns the recorder
func doJSON(t *testing.T, handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	handler(res, req)
	return res
}

// decodeBody unmarshals a response envelope into a generic map
func decodeBody(t *testing.T, res *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	return body
}
