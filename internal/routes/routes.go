package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"NUTRIPLAN_BACK-END/internal/config"
	"NUTRIPLAN_BACK-END/internal/handlers"
	"NUTRIPLAN_BACK-END/internal/middleware"
	"NUTRIPLAN_BACK-END/internal/utils"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	mealPlanHandler *handlers.MealPlanHandler,
	visionHandler *handlers.VisionHandler,
	healthHandler *handlers.HealthHandler,
	jwtCfg *config.JWTConfig,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Account routes
	http.HandleFunc("/register", authHandler.Register)
	http.HandleFunc("/login", authHandler.Login)
	http.HandleFunc("/me", middleware.AuthMiddleware(authHandler.Me, jwtCfg))
	http.HandleFunc("/update-email", accountHandler.UpdateEmail)
	http.HandleFunc("/update-password", accountHandler.UpdatePassword)

	// Meal plan routes
	http.HandleFunc("/generate-meal-plan", mealPlanHandler.Generate)
	http.HandleFunc("/get-mealplans", mealPlanHandler.List)
	http.HandleFunc("/get-mealplan", mealPlanHandler.Get)

	// Image routes
	http.HandleFunc("/generate-meal-image/{day}", visionHandler.GenerateMealImage)
	http.HandleFunc("/calculate-calories", visionHandler.CalculateCalories)

	// API documentation
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root routes
	http.HandleFunc("/about", aboutHandler)
	http.HandleFunc("/", rootHandler)
}

func aboutHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "This is the about page."})
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("NutriPlan backend is running."))
}
