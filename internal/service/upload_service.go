package service

import (
	"context"

	"github.com/rs/zerolog"

	"imagerelay/internal/config"
	"imagerelay/internal/media/transcoder"
	"imagerelay/internal/models"
	"imagerelay/internal/storage"
)

// Transcoder re-encodes raw image bytes into the bounded JPEG form.
type Transcoder interface {
	Transcode(data []byte) (transcoder.Result, error)
}

// ObjectStorer places a finished buffer with the storage provider.
type ObjectStorer interface {
	Store(ctx context.Context, data []byte, opts storage.StoreOptions) (storage.StoredObject, error)
}

// UploadService runs the per-request upload pipeline: for each file in
// order, transcode then store, converting per-file failures into data. A
// failing file never aborts its batch.
type UploadService struct {
	transcoder Transcoder
	store      ObjectStorer
	cfg        *config.AppConfig
	log        zerolog.Logger
}

func NewUploadService(tc Transcoder, store ObjectStorer, cfg *config.AppConfig, log zerolog.Logger) *UploadService {
	return &UploadService{
		transcoder: tc,
		store:      store,
		cfg:        cfg,
		log:        log,
	}
}

// ProcessBatch handles files strictly sequentially in received order: file
// i+1 does not begin transcoding until file i's upload completed or failed.
// Every input file yields exactly one outcome, success or error.
func (s *UploadService) ProcessBatch(ctx context.Context, files []models.UploadedFile) models.BatchResult {
	if s.cfg.Upload.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Upload.Timeout)
		defer cancel()
	}

	result := models.BatchResult{
		Images: make([]models.StoredImage, 0, len(files)),
		Errors: make([]models.UploadError, 0),
	}

	for _, file := range files {
		image, err := s.processOne(ctx, file)
		if err != nil {
			s.log.Warn().
				Err(err).
				Str("original_name", file.OriginalName).
				Msg("file processing failed")
			result.Errors = append(result.Errors, models.UploadError{
				Error:        err.Error(),
				OriginalName: file.OriginalName,
			})
			continue
		}
		result.Images = append(result.Images, image)
	}

	result.Total = len(result.Images) + len(result.Errors)
	return result
}

func (s *UploadService) processOne(ctx context.Context, file models.UploadedFile) (models.StoredImage, error) {
	transcoded, err := s.transcoder.Transcode(file.Data)
	if err != nil {
		return models.StoredImage{}, err
	}

	stored, err := s.store.Store(ctx, transcoded.Data, storage.StoreOptions{
		ContentType:  "image/jpeg",
		OriginalName: file.OriginalName,
	})
	if err != nil {
		return models.StoredImage{}, err
	}

	s.log.Debug().
		Str("public_id", stored.Key).
		Int64("size", stored.Size).
		Int("width", transcoded.Width).
		Int("height", transcoded.Height).
		Msg("image stored")

	return models.StoredImage{
		URL:          stored.URL,
		PublicID:     stored.Key,
		SizeBytes:    stored.Size,
		Width:        transcoded.Width,
		Height:       transcoded.Height,
		Format:       transcoded.Format,
		OriginalName: file.OriginalName,
	}, nil
}
