package models

// MealPlan is a stored block of AI-generated meal plan text. Rows are
// immutable once written; only the owning user can read them back.
type MealPlan struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"user_id" db:"user_id"`
	Title  string `json:"title" db:"title"`
	Plan   string `json:"mealplan" db:"mealplan"`
}

// MealPlanSummary is the listing projection (id and title only).
type MealPlanSummary struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}
