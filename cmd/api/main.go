package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"imagerelay/internal/config"
	"imagerelay/internal/handlers"
	"imagerelay/internal/log"
	"imagerelay/internal/media/transcoder"
	"imagerelay/internal/server"
	"imagerelay/internal/service"
	"imagerelay/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	storeClient, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init storage client")
	}
	if !storeClient.Configured() {
		// Missing credentials do not stop the server; every store and
		// delete call will fail until they are provided.
		logger.Warn().Msg("storage credentials not configured")
	}

	tc := transcoder.New(cfg.Transcode.MaxWidth, cfg.Transcode.MaxHeight, cfg.Transcode.Quality)
	uploads := service.NewUploadService(tc, storeClient, cfg, logger)

	handlerSet := handlers.NewHandlerSet(logger, uploads, storeClient, cfg)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("forced shutdown failed")
		}
	}

	logger.Info().Msg("server exited cleanly")
}
