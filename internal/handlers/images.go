package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"NUTRIPLAN_BACK-END/internal/common"
	"NUTRIPLAN_BACK-END/internal/dto"
	"NUTRIPLAN_BACK-END/internal/logger"
	"NUTRIPLAN_BACK-END/internal/planner"
	"NUTRIPLAN_BACK-END/internal/utils"
)

// maxUploadSize bounds the multipart form held in memory (32 MiB)
const maxUploadSize = 32 << 20

// VisionHandler handles image generation and food image analysis
type VisionHandler struct {
	ai Generator
}

// NewVisionHandler creates a new VisionHandler instance
func NewVisionHandler(g Generator) *VisionHandler {
	return &VisionHandler{ai: g}
}

// GenerateMealImage handles meal image generation
// @Summary Generate an image for a day's meals
// @Description Extract recipe names from the plan text and generate a plated-meal image
// @Tags images
// @Accept json
// @Produce json
// @Param day path int true "Day number"
// @Param request body dto.MealImageRequest true "Plan text for the day"
// @Success 200 {object} dto.MealImageResponse "Image generated (null when the provider yielded nothing)"
// @Failure 500 {object} dto.ErrorResponse "Generation failed"
// @Router /generate-meal-image/{day} [post]
func (h *VisionHandler) GenerateMealImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// The day is accepted but not checked against the plan's day count; the
	// prompt is built from string markers alone.
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Day must be a number"})
		return
	}

	var req dto.MealImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Invalid request body"})
		return
	}

	prompt := planner.BuildMealImagePrompt(req.Recipe)

	image, err := h.ai.GenerateImage(r.Context(), prompt)
	if err != nil {
		logger.Error("meal image generation failed", "error", err, "day", day)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Error generating meal image")
		return
	}

	resp := dto.MealImageResponse{Status: http.StatusOK}
	if len(image) > 0 {
		encoded := base64.StdEncoding.EncodeToString(image)
		resp.Image = &encoded
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// CalculateCalories handles food image analysis
// @Summary Calculate calories from a food photo
// @Description Analyze an uploaded food image and return a per-ingredient nutrition breakdown
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Food image"
// @Success 200 {object} dto.CaloriesResponse "Breakdown calculated"
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 500 {object} dto.ErrorResponse "Analysis failed"
// @Router /calculate-calories [post]
func (h *VisionHandler) CalculateCalories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "A file upload is required"})
		return
	}
	defer file.Close()

	// The whole image is read into memory before processing; no streaming.
	image, err := io.ReadAll(file)
	if err != nil {
		utils.WriteError(w, &common.ValidationError{Message: "Could not read uploaded file"})
		return
	}
	logger.Info("received food image", "filename", header.Filename, "bytes", len(image))

	calories, err := h.ai.AnalyzeFoodImage(r.Context(), image)
	if err != nil {
		logger.Error("calorie calculation failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CaloriesResponse{
		Status:   http.StatusOK,
		Calories: calories,
	})
}
