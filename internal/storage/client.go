package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"imagerelay/internal/config"
	"imagerelay/internal/ids"
)

// ErrNotConfigured is returned on first use when provider credentials were
// absent at startup. Construction itself never fails for missing credentials.
var ErrNotConfigured = errors.New("storage provider not configured")

// DeleteResult is the provider's raw outcome of a delete call.
type DeleteResult string

const (
	DeleteOK       DeleteResult = "ok"
	DeleteNotFound DeleteResult = "not found"
)

// StoreOptions name the object being stored.
type StoreOptions struct {
	// PublicID overrides the generated identifier when set. Normally left
	// empty; the generated key is a nanosecond timestamp plus random suffix.
	PublicID     string
	Folder       string
	ContentType  string
	OriginalName string
}

// StoredObject is the provider's record of a successful put.
type StoredObject struct {
	URL  string
	Key  string
	Size int64
}

// Client talks to an S3-compatible hosted image-storage provider. It holds
// no mutable state beyond the immutable credentials it was built with.
type Client struct {
	client *minio.Client
	cfg    config.StorageConfig
}

func NewClient(cfg config.StorageConfig) (*Client, error) {
	c := &Client{cfg: cfg}
	if !cfg.Configured() {
		return c, nil
	}

	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL

	if strings.HasPrefix(endpoint, "http") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse endpoint: %w", err)
		}
		endpoint = u.Host
		useSSL = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}

	c.client = client
	return c, nil
}

// Configured reports whether provider credentials were present at startup.
func (c *Client) Configured() bool {
	return c.client != nil
}

// Store uploads data and returns the provider's descriptor. The provider's
// echoed key is authoritative; the generated key is only the requested name.
func (c *Client) Store(ctx context.Context, data []byte, opts StoreOptions) (StoredObject, error) {
	if c.client == nil {
		return StoredObject{}, ErrNotConfigured
	}

	objectKey := opts.PublicID
	if objectKey == "" {
		objectKey = ids.NewObjectID() + ".jpg"
	}
	folder := opts.Folder
	if folder == "" {
		folder = c.cfg.Folder
	}
	if folder != "" {
		objectKey = path.Join(folder, objectKey)
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	putOpts := minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"quality":       "auto",
			"delivery":      "progressive",
			"original-name": opts.OriginalName,
		},
	}

	info, err := c.client.PutObject(ctx, c.cfg.Bucket, objectKey, bytes.NewReader(data), int64(len(data)), putOpts)
	if err != nil {
		return StoredObject{}, fmt.Errorf("put object: %w", err)
	}

	key := info.Key
	if key == "" {
		key = objectKey
	}

	return StoredObject{
		URL:  c.buildPublicURL(key),
		Key:  key,
		Size: info.Size,
	}, nil
}

// Delete removes an object by its public identifier. Deleting an identifier
// that does not exist is not an error; the result value says "not found".
func (c *Client) Delete(ctx context.Context, publicID string) (DeleteResult, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	_, err := c.client.StatObject(ctx, c.cfg.Bucket, publicID, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return DeleteNotFound, nil
		}
		return "", fmt.Errorf("stat object: %w", err)
	}

	if err := c.client.RemoveObject(ctx, c.cfg.Bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return "", fmt.Errorf("remove object: %w", err)
	}

	return DeleteOK, nil
}

func (c *Client) buildPublicURL(objectKey string) string {
	base := strings.TrimSuffix(c.cfg.Endpoint, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return fmt.Sprintf("%s/%s/%s", base, c.cfg.Bucket, objectKey)
}
