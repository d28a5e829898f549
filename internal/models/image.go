package models

// UploadedFile is one file pulled out of an incoming multipart request.
// It lives for the duration of a single batch.
type UploadedFile struct {
	Data         []byte
	ContentType  string
	OriginalName string
	SizeBytes    int64
}

// StoredImage describes an image successfully placed with the storage
// provider. PublicID is the deletion key.
type StoredImage struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	SizeBytes    int64  `json:"size"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Format       string `json:"format"`
	OriginalName string `json:"originalName"`
}

// UploadError records one file that failed transcoding or upload. It never
// aborts the batch it belongs to.
type UploadError struct {
	Error        string `json:"error"`
	OriginalName string `json:"originalName"`
}

// BatchResult aggregates the outcomes of one upload request. Every input
// file lands in exactly one of Images or Errors, in received order, and
// Total == len(Images) + len(Errors).
type BatchResult struct {
	Images []StoredImage `json:"images"`
	Errors []UploadError `json:"errors"`
	Total  int           `json:"total"`
}
