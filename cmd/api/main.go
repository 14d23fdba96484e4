package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tilak630Devi/shop-webpage/internal/auth"
	"github.com/Tilak630Devi/shop-webpage/internal/config"
	"github.com/Tilak630Devi/shop-webpage/internal/database"
	"github.com/Tilak630Devi/shop-webpage/internal/handler"
	"github.com/Tilak630Devi/shop-webpage/internal/repository"
	"github.com/Tilak630Devi/shop-webpage/internal/router"
	"github.com/Tilak630Devi/shop-webpage/internal/service"
	"github.com/Tilak630Devi/shop-webpage/internal/slug"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Repositories
	productRepo := repository.NewProductRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	commentRepo := repository.NewCommentRepository(pool, logger)
	adminRepo := repository.NewAdminRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Token schemes and slug allocation
	tokens := auth.NewTokenManager(cfg.Auth.UserJWTSecret, cfg.Auth.AdminJWTSecret)
	slugs := slug.NewAllocator(productRepo, logger)

	// Services
	productService := service.NewProductService(productRepo, slugs, logger)
	authService := service.NewAuthService(userRepo, adminRepo, tokens, logger)
	cartService := service.NewCartService(userRepo, productRepo, logger)
	checkoutService := service.NewCheckoutService(userRepo, productRepo, orderRepo, cfg.Shop.WhatsAppNumber, logger)
	commentService := service.NewCommentService(commentRepo, productRepo, logger)

	// Bootstrap admin account when configured
	if cfg.Auth.AdminUsername != "" && cfg.Auth.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			return fmt.Errorf("failed to ensure bootstrap admin: %w", err)
		}
	}

	// HTTP handlers and router
	handlers := router.Handlers{
		Products: handler.NewProductHandler(productService, logger),
		Comments: handler.NewCommentHandler(commentService, logger),
		Auth:     handler.NewAuthHandler(authService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Admin:    handler.NewAdminHandler(productService, commentService, logger),
	}
	mux := router.New(handlers, tokens, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
