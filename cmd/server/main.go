// @title Tastebud Backend API
// @version 1.0
// @description Recipe and cocktail discovery backend with email/password authentication

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "github.com/tastebud-app/tastebud-backend/docs" // swagger registration
	"github.com/tastebud-app/tastebud-backend/internal/auth"
	"github.com/tastebud-app/tastebud-backend/internal/config"
	"github.com/tastebud-app/tastebud-backend/internal/handlers"
	"github.com/tastebud-app/tastebud-backend/internal/providers"
	"github.com/tastebud-app/tastebud-backend/internal/routes"
	"github.com/tastebud-app/tastebud-backend/internal/storage/postgres"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		// A missing JWT_SECRET lands here: refuse to start rather than
		// sign tokens with a known default.
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := postgres.NewStore(ctx, &cfg.Database)
	if err != nil {
		logger.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	service := auth.NewService(store, tokens, 0, cfg.Database.ConnTimeout)

	authHandler := handlers.NewAuthHandler(service, logger)
	healthHandler := handlers.NewHealthHandler(store)
	recipeHandler := handlers.NewRecipeHandler(providers.NewSpoonacular(&cfg.Providers), logger)
	cocktailHandler := handlers.NewCocktailHandler(providers.NewCocktailDB(&cfg.Providers), logger)

	router := routes.New(authHandler, healthHandler, recipeHandler, cocktailHandler, tokens)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
