package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"minhasfinancas/internal/config"
	apphttp "minhasfinancas/internal/http"
	"minhasfinancas/internal/log"
	"minhasfinancas/internal/services"
	"minhasfinancas/internal/storage"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger := log.New(log.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.SetDefault(logger)
	appLogger := logger.WithComponent(log.ComponentApp)

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		appLogger.Error("Failed to open database", log.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	userService := services.NewUserService(repo.Users)
	entryService := services.NewEntryService(repo.Entries)

	srv := apphttp.NewServer(cfg, userService, entryService, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", "port", cfg.Port, "db", cfg.SQLiteDBPath)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		appLogger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server error", log.FieldError, err)
		os.Exit(1)
	}
	appLogger.Info("Server stopped gracefully")
}
