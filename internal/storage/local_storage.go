package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LocalStorage struct {
	basePath      string
	bucket        string
	publicBaseURL string
}

// NewLocalStorage keeps the bucket's objects under root/bucket.
func NewLocalStorage(root, bucket, publicBaseURL string) (*LocalStorage, error) {
	basePath := filepath.Join(root, bucket)
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{basePath: basePath, bucket: bucket, publicBaseURL: publicBaseURL}, nil
}

func (ls *LocalStorage) getPath(objectPath string) (string, error) {
	cleaned, err := cleanObjectPath(objectPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(cleaned)), nil
}

// Save writes to a temporary file first so readers never see a partial object.
func (ls *LocalStorage) Save(ctx context.Context, objectPath string, data io.Reader, size int64, contentType string) error {
	filePath, err := ls.getPath(objectPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	if size >= 0 && written != size {
		return fmt.Errorf("short write for %s: wrote %d of %d bytes", objectPath, written, size)
	}

	return os.Rename(tmp.Name(), filePath)
}

func (ls *LocalStorage) Get(ctx context.Context, objectPath string) (io.ReadCloser, error) {
	filePath, err := ls.getPath(objectPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object %s: %w", objectPath, ErrNotFound)
		}
		return nil, err
	}

	return file, nil
}

func (ls *LocalStorage) Delete(ctx context.Context, objectPath string) error {
	filePath, err := ls.getPath(objectPath)
	if err != nil {
		return err
	}

	err = os.Remove(filePath)
	if os.IsNotExist(err) {
		return nil
	}

	return err
}

func (ls *LocalStorage) PublicURL(objectPath string) string {
	return joinURL(ls.publicBaseURL, ls.bucket, objectPath)
}
