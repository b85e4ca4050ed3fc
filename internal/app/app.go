// Package app wires configuration, storage, services, and the HTTP
// transport into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sweetlab/sweetshop-backend/internal/adapter/postgres"
	sweetrepo "github.com/sweetlab/sweetshop-backend/internal/adapter/postgres/sweet"
	userrepo "github.com/sweetlab/sweetshop-backend/internal/adapter/postgres/user"
	"github.com/sweetlab/sweetshop-backend/internal/auth"
	"github.com/sweetlab/sweetshop-backend/internal/config"
	authsvc "github.com/sweetlab/sweetshop-backend/internal/service/auth"
	"github.com/sweetlab/sweetshop-backend/internal/service/catalog"
	"github.com/sweetlab/sweetshop-backend/internal/service/inventory"
	"github.com/sweetlab/sweetshop-backend/internal/transport/middleware"
	"github.com/sweetlab/sweetshop-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, builds the service graph, and serves
// HTTP until the context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	users := userrepo.New(pool)
	sweets := sweetrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewHasher(cfg.Auth.PasswordHashCost)

	authService := authsvc.NewService(logger, users, jwtManager, hasher)
	catalogService := catalog.NewService(logger, sweets, txm)
	inventoryService := inventory.NewService(logger, sweets, cfg.Inventory)

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Sweets:    rest.NewSweetHandler(catalogService, logger),
		Inventory: rest.NewInventoryHandler(inventoryService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	}

	global := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		global = append(global, limiter.Limit(cfg.RateLimit.RequestsPerMin))
	}
	global = append(global, middleware.Auth(authService))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(handlers, global...),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
