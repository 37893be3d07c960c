package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

// S3Storage สำหรับ S3-compatible storage (MinIO / Cloudflare R2)
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	endpoint  string
	useSSL    bool
}

type S3StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string // optional CDN / public bucket URL
}

var _ ports.StoragePort = (*S3Storage)(nil)

func NewS3Storage(config S3StorageConfig) (*S3Storage, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{Region: config.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("S3 bucket created", "bucket", config.Bucket)
	}

	logger.Info("S3 storage initialized", "endpoint", config.Endpoint, "bucket", config.Bucket, "ssl", config.UseSSL)

	return &S3Storage{
		client:    client,
		bucket:    config.Bucket,
		publicURL: strings.TrimSuffix(config.PublicURL, "/"),
		endpoint:  config.Endpoint,
		useSSL:    config.UseSSL,
	}, nil
}

func normalizeKey(key string) string {
	return strings.TrimPrefix(strings.ReplaceAll(key, "\\", "/"), "/")
}

// UploadFile size = -1 ให้ minio stream จนจบ
func (s *S3Storage) UploadFile(ctx context.Context, file io.Reader, size int64, key string, contentType string) (string, error) {
	key = normalizeKey(key)
	if size <= 0 {
		size = -1
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, file, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logger.DebugContext(ctx, "File uploaded to S3", "path", key, "content_type", contentType)
	return s.GetFileURL(key), nil
}

func (s *S3Storage) DeleteFile(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, normalizeKey(key), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetFileURL ใช้ PublicURL ถ้ามี ไม่งั้นประกอบจาก endpoint (path-style)
func (s *S3Storage) GetFileURL(key string) string {
	key = normalizeKey(key)
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}

func (s *S3Storage) GetProviderName() string {
	return "s3"
}
