package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/daybook-app/daybook-backend/internal/config"
	"github.com/daybook-app/daybook-backend/internal/database"
	"github.com/daybook-app/daybook-backend/internal/handlers"
	"github.com/daybook-app/daybook-backend/internal/middleware"
	"github.com/daybook-app/daybook-backend/internal/repository"
	"github.com/daybook-app/daybook-backend/internal/routes"
	"github.com/daybook-app/daybook-backend/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Username uniqueness lives in the store, not in application checks
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCancel()
	if err := database.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to ensure MongoDB indexes:", err)
	}
	log.Println("✅ MongoDB indexes ensured")

	// Wire repositories, services, handlers
	userRepo := repository.NewMongoUserRepository(database.DB)
	journalRepo := repository.NewMongoJournalRepository(database.DB)

	userService := services.NewUserService(userRepo)
	journalService := services.NewJournalService(journalRepo, userRepo)

	publicHandler := handlers.NewPublicHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	journalHandler := handlers.NewJournalHandler(journalService)

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
		log.Println("✅ Production security headers enabled")
	}

	// HTTP Basic authentication for /user/** and /journal/**; everything
	// else stays open
	r.Use(middleware.BasicAuth(userService))

	routes.SetupRoutes(r, publicHandler, userHandler, journalHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("🚀 Daybook backend running on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server shutdown failed:", err)
	}
	log.Println("Server stopped gracefully")
}
