package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"imagerelay/internal/config"
	"imagerelay/internal/models"
	"imagerelay/internal/storage"
)

// BatchProcessor runs the upload pipeline for one request's files.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, files []models.UploadedFile) models.BatchResult
}

// StorageClient is the slice of the provider client the HTTP surface needs.
type StorageClient interface {
	Delete(ctx context.Context, publicID string) (storage.DeleteResult, error)
	Configured() bool
}

type HandlerSet struct {
	log     zerolog.Logger
	cfg     *config.AppConfig
	uploads BatchProcessor
	store   StorageClient
}

func NewHandlerSet(log zerolog.Logger, uploads BatchProcessor, store StorageClient, cfg *config.AppConfig) HandlerSet {
	return HandlerSet{
		log:     log,
		cfg:     cfg,
		uploads: uploads,
		store:   store,
	}
}

func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/", h.Root)

	api := engine.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/upload", h.Upload)
		api.DELETE("/delete/:publicId", h.Delete)
	}
}
