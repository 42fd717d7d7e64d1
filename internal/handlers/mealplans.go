package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"NUTRIPLAN_BACK-END/internal/common"
	"NUTRIPLAN_BACK-END/internal/dto"
	"NUTRIPLAN_BACK-END/internal/logger"
	"NUTRIPLAN_BACK-END/internal/planner"
	"NUTRIPLAN_BACK-END/internal/store"
	"NUTRIPLAN_BACK-END/internal/utils"
)

// mealPlannerRole is the role the generation template addresses the model as
const mealPlannerRole = "meal planner"

// MealPlanHandler handles meal plan generation and retrieval
type MealPlanHandler struct {
	store Store
	ai    Generator
}

// NewMealPlanHandler creates a new MealPlanHandler instance
func NewMealPlanHandler(s Store, g Generator) *MealPlanHandler {
	return &MealPlanHandler{store: s, ai: g}
}

// Generate handles meal plan generation
// @Summary Generate a meal plan
// @Description Generate a meal plan from the supplied preferences and save it for the user
// @Tags mealplans
// @Accept json
// @Produce json
// @Param request body dto.MealPlanRequest true "Meal plan preferences"
// @Success 200 {object} dto.MealPlanResponse "Meal plan generated"
// @Failure 500 {object} dto.ErrorResponse "Generation failed"
// @Router /generate-meal-plan [post]
func (h *MealPlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.MealPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Invalid request body"})
		return
	}

	prompt := planner.BuildMealPlanPrompt(&req)

	response, err := h.ai.GenerateMealPlan(r.Context(), prompt, mealPlannerRole)
	if err != nil {
		logger.Error("meal plan generation failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "An error occurred while generating the meal plan.")
		return
	}

	title := planner.BuildTitle(&req, time.Now())

	// The generated text is expensive; a failed save must not discard it.
	if err := h.store.InsertMealPlan(r.Context(), req.UserID, title, response); err != nil {
		logger.Error("meal plan save failed", "error", err, "user_id", req.UserID)
		utils.WriteJSONResponse(w, http.StatusOK, dto.MealPlanResponse{
			Status:   http.StatusOK,
			Message:  "Meal plan generated successfully, but an error occurred while saving it to the database.",
			Response: response,
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MealPlanResponse{
		Status:   http.StatusOK,
		Message:  "Meal plan generated and successfully saved into database",
		Response: response,
	})
}

// List handles meal plan listing
// @Summary List a user's meal plans
// @Description Return the id and title of every plan saved for the user
// @Tags mealplans
// @Accept json
// @Produce json
// @Param request body dto.MealPlanListRequest true "User selector"
// @Success 200 {object} dto.MealPlanListResponse "Meal plans retrieved"
// @Failure 500 {object} dto.MealPlanListResponse "Retrieval failed"
// @Router /get-mealplans [post]
func (h *MealPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.MealPlanListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Invalid request body"})
		return
	}

	rows, err := h.store.ListMealPlans(r.Context(), req.UserID)
	if err != nil {
		logger.Error("meal plan listing failed", "error", err, "user_id", req.UserID)
		utils.WriteJSONResponse(w, http.StatusInternalServerError, dto.MealPlanListResponse{
			Status:    http.StatusInternalServerError,
			Message:   "Error retrieving meal plan",
			MealPlans: []dto.MealPlanSummary{},
		})
		return
	}

	if len(rows) == 0 {
		utils.WriteJSONResponse(w, http.StatusOK, dto.MealPlanListResponse{
			Status:    http.StatusOK,
			Message:   "User does not have any saved meal plans",
			MealPlans: []dto.MealPlanSummary{},
		})
		return
	}

	plans := make([]dto.MealPlanSummary, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, dto.MealPlanSummary{ID: row.ID, Title: row.Title})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MealPlanListResponse{
		Status:    http.StatusOK,
		Message:   "Meal plans retrieved successfully",
		MealPlans: plans,
	})
}

// Get handles single meal plan retrieval
// @Summary Get one meal plan
// @Description Return one plan's full text by (meal id, user id)
// @Tags mealplans
// @Accept json
// @Produce json
// @Param request body dto.MealPlanGetRequest true "Plan selector"
// @Success 200 {object} dto.MealPlanDetailResponse "Meal plan retrieved"
// @Failure 404 {object} dto.ErrorResponse "Meal plan not found"
// @Failure 500 {object} dto.ErrorResponse "Retrieval failed"
// @Router /get-mealplan [post]
func (h *MealPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.MealPlanGetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Invalid request body"})
		return
	}

	plan, err := h.store.GetMealPlan(r.Context(), req.MealID, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteError(w, &common.NotFoundError{Message: "Meal plan not found"})
			return
		}
		logger.Error("meal plan retrieval failed", "error", err, "meal_id", req.MealID)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Error retrieving meal plan")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MealPlanDetailResponse{
		Status:   http.StatusOK,
		Message:  "Meal plan retrieved successfully",
		MealPlan: plan,
	})
}
