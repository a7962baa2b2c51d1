package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"shifa-backend/internal/config"
	"shifa-backend/internal/database"
	"shifa-backend/internal/handlers"
	"shifa-backend/internal/metrics"
	"shifa-backend/internal/repository"
	"shifa-backend/internal/router"
	"shifa-backend/internal/services"
)

func main() {
	log.Println("Starting Shifa Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	chatRepo := repository.NewChatRepo(pool)

	// ──── Step 4: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Println("✓ Gemini client initialized")

	// ──── Initialize Metrics ────
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// ──── Initialize Services ────
	userService := services.NewUserService(userRepo)
	chatService := services.NewChatService(userRepo, chatRepo, geminiService, collector, cfg.MaxQuestions)
	adminService := services.NewAdminService(userRepo)

	// ──── Initialize Handlers ────
	healthHandler := handlers.NewHealthHandler(cfg.AppName)
	userHandler := handlers.NewUserHandler(userService)
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		healthHandler,
		userHandler,
		chatHandler,
		adminHandler,
		collector,
		registry,
		cfg.FrontendDir,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ %s backend ready on http://localhost:%s", cfg.AppName, cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
