package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"imagerelay/internal/media/sniffer"
	"imagerelay/internal/models"
)

// Upload accepts up to the configured number of multipart files under the
// "images" field, runs them through the pipeline and returns the batch
// result. Intake violations are client errors; once validation passes the
// response is 200 regardless of individual file outcomes.
func (h HandlerSet) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.serverError(c, fmt.Errorf("lecture du corps multipart: %w", err))
		return
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		h.clientError(c, "Aucune image fournie")
		return
	}
	if len(headers) > h.cfg.Upload.MaxFiles {
		h.clientError(c, fmt.Sprintf("Trop de fichiers envoyés (maximum %d)", h.cfg.Upload.MaxFiles))
		return
	}

	files := make([]models.UploadedFile, 0, len(headers))
	for _, header := range headers {
		if header.Size > h.cfg.Upload.MaxFileSize {
			h.clientError(c, fmt.Sprintf("Fichier trop volumineux: %s (maximum %d Mo)", header.Filename, h.cfg.Upload.MaxFileSize>>20))
			return
		}

		contentType := sniffer.MimeTypeFromHTTP(textprotoToHTTP(header))
		if !sniffer.Allowed(contentType) {
			h.clientError(c, fmt.Sprintf("Type de fichier non autorisé: %s", contentType))
			return
		}

		data, err := readAll(header)
		if err != nil {
			h.serverError(c, fmt.Errorf("lecture du fichier %s: %w", header.Filename, err))
			return
		}

		// Cross-check the leading bytes against the declared type so
		// disguised content never reaches transcoding. Unrecognized bytes
		// fall through: the transcoder turns those into per-file errors.
		if detected, err := sniffer.DetectHead(headBytes(data)); err == nil {
			if !sniffer.Allowed(detected.MIME) {
				h.clientError(c, fmt.Sprintf("Type de fichier non autorisé: %s (contenu de %s)", detected.MIME, header.Filename))
				return
			}
			if detected.MIME != sniffer.Normalize(contentType) {
				h.clientError(c, fmt.Sprintf("Le contenu de %s (%s) ne correspond pas au type déclaré %s", header.Filename, detected.MIME, contentType))
				return
			}
		}

		files = append(files, models.UploadedFile{
			Data:         data,
			ContentType:  contentType,
			OriginalName: header.Filename,
			SizeBytes:    header.Size,
		})
	}

	result := h.uploads.ProcessBatch(c.Request.Context(), files)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"images":  result.Images,
		"errors":  result.Errors,
		"total":   result.Total,
	})
}

func (h HandlerSet) clientError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   message,
	})
}

func (h HandlerSet) serverError(c *gin.Context, err error) {
	h.log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	body := gin.H{
		"success": false,
		"error":   err.Error(),
	}
	if h.cfg.Development() {
		body["details"] = fmt.Sprintf("%+v", err)
	}
	c.JSON(http.StatusInternalServerError, body)
}

func readAll(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func textprotoToHTTP(header *multipart.FileHeader) http.Header {
	return http.Header(header.Header)
}

// headBytes bounds the sniffing window the same way http.DetectContentType
// does.
func headBytes(data []byte) []byte {
	const sniffLen = 512
	if len(data) > sniffLen {
		return data[:sniffLen]
	}
	return data
}
