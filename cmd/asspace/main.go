package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/akramas2005/backend-as-space/internal/api"
	"github.com/akramas2005/backend-as-space/internal/config"
	"github.com/akramas2005/backend-as-space/internal/database"
	redisclient "github.com/akramas2005/backend-as-space/internal/redis"
	"github.com/akramas2005/backend-as-space/internal/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	logger := zerolog.New(os.Stdout).Level(cfg.LogLevel).With().Timestamp().Logger()

	// --- Infrastructure ---

	textPool, err := database.NewPostgresPool(ctx, cfg.TextDatabaseURL, cfg.DBMaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("text store")
	}
	defer textPool.Close()

	filesPool, err := database.NewPostgresPool(ctx, cfg.FilesDatabaseURL, cfg.DBMaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("files store")
	}
	defer filesPool.Close()

	if err := database.EnsureTextSchema(ctx, textPool); err != nil {
		logger.Fatal().Err(err).Msg("text schema")
	}
	if err := database.EnsureFilesSchema(ctx, filesPool); err != nil {
		logger.Fatal().Err(err).Msg("files schema")
	}

	rdb, err := redisclient.NewClient(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer rdb.Close()

	// --- Repositories ---

	messages := database.NewMessageRepository(textPool)
	files := database.NewFileRepository(filesPool)

	// --- Services ---

	messageSvc := service.NewMessageService(messages, logger)
	attachmentSvc := service.NewAttachmentService(files, messages, cfg.PublicBaseURL, logger)
	deletionSvc := service.NewDeletionService(messages, files, logger)
	retentionSvc := service.NewRetentionService(messages, files, logger)

	deps := &api.Dependencies{
		Messages: api.NewMessageHandler(messageSvc),
		Files:    api.NewFileHandler(attachmentSvc),
		Deletes:  api.NewDeleteHandler(deletionSvc, retentionSvc),
		Redis:    rdb,
	}

	// --- Echo ---

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(api.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	api.SetupRouter(e, deps)

	// --- Start ---

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	retentionSvc.Start(sigCtx, cfg.CleanupInterval)

	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("server starting")
		if err := e.Start(cfg.ServerAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-sigCtx.Done()
	logger.Info().Msg("shutting down")
	if err := e.Shutdown(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("shutdown error")
	}
}
