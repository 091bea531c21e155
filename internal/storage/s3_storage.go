package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"svg-vault/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// NewS3Client builds an S3 client. Static keys are used when configured,
// otherwise the default AWS credential chain applies. A custom endpoint
// (MinIO, R2, ...) usually needs path-style addressing.
func NewS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

type S3Storage struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	region        string
	publicBaseURL string
}

func NewS3Storage(client *s3.Client, bucket, region, publicBaseURL string) *S3Storage {
	return &S3Storage{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        bucket,
		region:        region,
		publicBaseURL: publicBaseURL,
	}
}

func (s *S3Storage) Save(ctx context.Context, objectPath string, data io.Reader, size int64, contentType string) error {
	key, err := cleanObjectPath(objectPath)
	if err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   data,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s to %s: %w", key, s.bucket, err)
	}
	return nil
}

func (s *S3Storage) Get(ctx context.Context, objectPath string) (io.ReadCloser, error) {
	key, err := cleanObjectPath(objectPath)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("object %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s from %s: %w", key, s.bucket, err)
	}
	return out.Body, nil
}

// Delete is idempotent: S3 reports success for missing keys.
func (s *S3Storage) Delete(ctx context.Context, objectPath string) error {
	key, err := cleanObjectPath(objectPath)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", key, s.bucket, err)
	}
	return nil
}

func (s *S3Storage) PublicURL(objectPath string) string {
	if s.publicBaseURL != "" {
		return joinURL(s.publicBaseURL, s.bucket, objectPath)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectPath)
}
