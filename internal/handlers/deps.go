package handlers

import (
	"context"

	"NUTRIPLAN_BACK-END/internal/models"
)

// Store is the slice of the relational store gateway the handlers use.
// Satisfied by *store.Store; faked in tests.
type Store interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByLogin(ctx context.Context, login string) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
	UpdateEmail(ctx context.Context, userID int64, email string) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	InsertMealPlan(ctx context.Context, userID int64, title, plan string) error
	ListMealPlans(ctx context.Context, userID int64) ([]models.MealPlanSummary, error)
	GetMealPlan(ctx context.Context, mealID, userID int64) (string, error)
}

// Generator is the slice of the AI gateway the handlers use.
// Satisfied by *ai.Client; faked in tests.
type Generator interface {
	GenerateMealPlan(ctx context.Context, prompt, role string) (string, error)
	AnalyzeFoodImage(ctx context.Context, image []byte) (string, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}
