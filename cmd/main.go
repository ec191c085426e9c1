/*
Package main is the entry point for the Brana book catalog server.

It loads configuration, initializes the global logging system, connects the
database pool (running migrations), wires the auth service and stores into the
HTTP router, and handles operating system interrupt signals (SIGINT, SIGTERM)
for a graceful shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appauth "brana/internal/app/auth"
	"brana/internal/app/book"
	"brana/internal/app/db"
	"brana/internal/app/storage"
	"brana/internal/app/user"
	"brana/internal/configs"
	"brana/internal/handler"
	"brana/internal/pkg/logx"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Dur("token_ttl", cfg.TokenTTL).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to connect to database")
	}
	defer pool.Close()

	hasher, err := appauth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		logx.Fatal(err, "Invalid password hasher configuration")
	}

	deps := &handler.AppDeps{
		Config: cfg,
		Auth:   appauth.NewService(user.NewPostgresStore(pool), hasher, cfg.JWTSecret, cfg.TokenTTL),
		Books:  book.NewPostgresStore(pool),
	}

	if cfg.S3Endpoint != "" {
		storageService, err := storage.NewStorageService(storage.ServiceConfig{
			S3BucketName:      cfg.S3BucketName,
			S3Endpoint:        cfg.S3Endpoint,
			S3AccessKeyID:     cfg.S3AccessKeyID,
			S3SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			logx.Fatal(err, "Failed to initialize cover image storage")
		}
		deps.Storage = storageService
	} else {
		logx.Warn("No S3 endpoint configured; cover image endpoints disabled")
	}

	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Brana server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
