package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"svg-vault/internal/database"
	"svg-vault/internal/models"
	"svg-vault/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoSVGFiles = errors.New("Please upload only SVG files.")
	ErrNoFiles    = errors.New("no files uploaded")
)

// Result is the outcome for one submitted file. Exactly one of SVG and
// Error is set.
type Result struct {
	FileName string      `json:"file_name"`
	SVG      *models.SVG `json:"svg,omitempty"`
	Error    string      `json:"error,omitempty"`
}

type Request struct {
	UserID      uuid.UUID
	ProjectID   string
	Description *string
	Tags        []string
	Files       []*multipart.FileHeader
}

// Store is the persistence the uploader needs. *database.Store satisfies it.
type Store interface {
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateSVG(ctx context.Context, arg database.CreateSVGParams) (*models.SVG, error)
	TouchProject(ctx context.Context, id string) error
}

type Uploader struct {
	store       Store
	bucket      storage.Bucket
	maxBytes    int64
	concurrency int
	logger      *slog.Logger
}

func NewUploader(store Store, bucket storage.Bucket, maxBytes int64, concurrency int, logger *slog.Logger) *Uploader {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploader{
		store:       store,
		bucket:      bucket,
		maxBytes:    maxBytes,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Upload stores every SVG in req concurrently. Non-SVG files in a mixed
// batch are reported as failed; a batch without any SVG is refused before
// anything is stored.
func (u *Uploader) Upload(ctx context.Context, req Request) ([]Result, error) {
	if len(req.Files) == 0 {
		return nil, ErrNoFiles
	}

	accepted := 0
	for _, fh := range req.Files {
		if IsSVG(fh.Filename, fh.Header.Get("Content-Type")) {
			accepted++
		}
	}
	if accepted == 0 {
		return nil, ErrNoSVGFiles
	}

	project, err := u.store.GetProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserID != req.UserID {
		return nil, database.ErrProjectNotFound
	}

	tags := NormalizeTags(req.Tags)
	results := make([]Result, len(req.Files))

	var g errgroup.Group
	g.SetLimit(u.concurrency)

	for i, fh := range req.Files {
		results[i].FileName = fh.Filename
		if !IsSVG(fh.Filename, fh.Header.Get("Content-Type")) {
			results[i].Error = "Not an SVG file"
			continue
		}
		if fh.Size > u.maxBytes {
			results[i].Error = fmt.Sprintf("File is larger than %d bytes", u.maxBytes)
			continue
		}

		g.Go(func() error {
			svg, err := u.uploadOne(ctx, req, tags, fh)
			if err != nil {
				u.logger.Error("svg upload failed", "file", fh.Filename, "user_id", req.UserID, "error", err)
				results[i].Error = "Upload failed"
				return nil
			}
			results[i].SVG = svg
			return nil
		})
	}
	_ = g.Wait()

	if err := u.store.TouchProject(ctx, project.ID); err != nil {
		u.logger.Warn("failed to touch project", "project_id", project.ID, "error", err)
	}

	return results, nil
}

func (u *Uploader) uploadOne(ctx context.Context, req Request, tags []string, fh *multipart.FileHeader) (*models.SVG, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part: %w", err)
	}
	defer f.Close()

	objectPath := ObjectPath(req.UserID)
	if err := u.bucket.Save(ctx, objectPath, io.LimitReader(f, u.maxBytes), fh.Size, SVGContentType); err != nil {
		return nil, fmt.Errorf("failed to store blob: %w", err)
	}

	svg, err := u.store.CreateSVG(ctx, database.CreateSVGParams{
		ID:          database.NewID(),
		UserID:      req.UserID,
		ProjectID:   req.ProjectID,
		Name:        DisplayName(fh.Filename),
		Description: req.Description,
		FilePath:    objectPath,
		FileSize:    fh.Size,
		Tags:        tags,
	})
	if err != nil {
		if delErr := u.bucket.Delete(context.WithoutCancel(ctx), objectPath); delErr != nil {
			u.logger.Warn("failed to remove blob after insert failure", "path", objectPath, "error", delErr)
		}
		return nil, fmt.Errorf("failed to insert svg row: %w", err)
	}
	return svg, nil
}

// Summarize counts successful and failed results.
func Summarize(results []Result) (ok, failed int) {
	for _, r := range results {
		if r.SVG != nil {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
