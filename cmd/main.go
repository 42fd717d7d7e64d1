// @title NutriPlan Backend API
// @version 1.0
// @description NutriPlan Backend API for user accounts and AI-generated meal planning

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "NUTRIPLAN_BACK-END/docs" // This is required for swagger
	"NUTRIPLAN_BACK-END/internal/ai"
	"NUTRIPLAN_BACK-END/internal/config"
	"NUTRIPLAN_BACK-END/internal/handlers"
	"NUTRIPLAN_BACK-END/internal/logger"
	"NUTRIPLAN_BACK-END/internal/middleware"
	"NUTRIPLAN_BACK-END/internal/routes"
	"NUTRIPLAN_BACK-END/internal/store"
)

func main() {
	logger.Init()

	// Missing GOOGLE_API_KEY or DB_PASSWORD fails here, before anything binds
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	st, err := store.New(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer st.Close()

	aiClient, err := ai.NewClient(&cfg.AI)
	if err != nil {
		log.Fatalf("ai client: %v", err)
	}

	// --- HTTP Handlers ---

	authHandler := handlers.NewAuthHandler(st, &cfg.JWT)
	accountHandler := handlers.NewAccountHandler(st)
	mealPlanHandler := handlers.NewMealPlanHandler(st, aiClient)
	visionHandler := handlers.NewVisionHandler(aiClient)
	healthHandler := handlers.NewHealthHandler(st)

	// Setup all routes
	routes.SetupRoutes(authHandler, accountHandler, mealPlanHandler, visionHandler, healthHandler, &cfg.JWT)

	// --- HTTP Server + Graceful Shutdown ---

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS and request tagging
	handler := middleware.RequestID(c.Handler(http.DefaultServeMux))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		// Meal plan and image generation are slow upstream calls; the write
		// timeout has to cover them.
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
