package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"svg-vault/internal/config"
)

var (
	ErrNotFound    = errors.New("object not found")
	ErrInvalidPath = errors.New("invalid object path")
)

// Bucket stores objects under slash separated relative paths.
type Bucket interface {
	Save(ctx context.Context, objectPath string, data io.Reader, size int64, contentType string) error
	Get(ctx context.Context, objectPath string) (io.ReadCloser, error)
	Delete(ctx context.Context, objectPath string) error
	PublicURL(objectPath string) string
}

// Buckets are the two object stores the service uses: public avatars and
// private SVG files that are only streamed through the API.
type Buckets struct {
	Avatars Bucket
	SVGs    Bucket
}

// Open builds the buckets for storage.type.
func Open(ctx context.Context, cfg config.StorageConfig) (*Buckets, error) {
	switch cfg.Type {
	case "local":
		avatars, err := NewLocalStorage(cfg.Path, cfg.Buckets.Avatars, cfg.PublicBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open avatars bucket: %w", err)
		}
		svgs, err := NewLocalStorage(cfg.Path, cfg.Buckets.SVGs, cfg.PublicBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open svg bucket: %w", err)
		}
		return &Buckets{Avatars: avatars, SVGs: svgs}, nil
	case "s3":
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return &Buckets{
			Avatars: NewS3Storage(client, cfg.Buckets.Avatars, cfg.S3.Region, cfg.PublicBaseURL),
			SVGs:    NewS3Storage(client, cfg.Buckets.SVGs, cfg.S3.Region, cfg.PublicBaseURL),
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

// cleanObjectPath rejects absolute paths and anything escaping the bucket.
func cleanObjectPath(p string) (string, error) {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

// ObjectPathOf maps a URL produced by b.PublicURL back to its object path.
func ObjectPathOf(b Bucket, publicURL string) (string, bool) {
	objectPath, ok := strings.CutPrefix(publicURL, b.PublicURL(""))
	if !ok || objectPath == "" {
		return "", false
	}
	return objectPath, true
}

func joinURL(base, bucket, objectPath string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + objectPath
}
