package dto

// MealPlanRequest represents the request payload for meal plan generation.
// All preference fields are optional; absent fields are left out of the prompt.
type MealPlanRequest struct {
	Ingredients          *string `json:"ingredients,omitempty"`
	Calories             *int    `json:"calories,omitempty"`
	MealType             *string `json:"meal_type,omitempty"`
	MealsPerDay          *int    `json:"meals_per_day,omitempty"`
	Cuisine              *string `json:"cuisine,omitempty"`
	DietaryRestriction   *string `json:"dietary_restriction,omitempty"`
	DislikedIngredients  *string `json:"disliked_ingredients,omitempty"`
	CookingSkill         *string `json:"cooking_skill,omitempty"`
	CookingTime          *string `json:"cooking_time,omitempty"`
	AvailableIngredients *string `json:"available_ingredients,omitempty"`
	DietaryGoals         *string `json:"dietary_goals,omitempty"`
	BudgetConstraints    *string `json:"budget_constraints,omitempty"`
	UserID               int64   `json:"id"`
}

// MealPlanResponse is the envelope returned by meal plan generation
type MealPlanResponse struct {
	Status   int    `json:"status"`
	Message  string `json:"message"`
	Response string `json:"response,omitempty"`
}

// MealPlanListRequest selects the user whose plans are listed
type MealPlanListRequest struct {
	UserID int64 `json:"id"`
}

// MealPlanSummary is one entry in a user's meal plan listing
type MealPlanSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// MealPlanListResponse is the envelope for the meal plan listing
type MealPlanListResponse struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	MealPlans []MealPlanSummary `json:"mealPlans"`
}

// MealPlanGetRequest selects a single plan by (meal id, user id)
type MealPlanGetRequest struct {
	UserID int64 `json:"id"`
	MealID int64 `json:"meal_id"`
}

// MealPlanDetailResponse carries one plan's full formatted text
type MealPlanDetailResponse struct {
	Status   int    `json:"status"`
	Message  string `json:"message"`
	MealPlan string `json:"mealPlan"`
}
