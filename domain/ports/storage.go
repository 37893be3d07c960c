package ports

import (
	"context"
	"io"
)

// StoragePort ที่เก็บไฟล์ logo (Local, S3/MinIO/R2)
type StoragePort interface {
	// UploadFile อัปโหลดแล้วคืน public URL
	// path เช่น "logos/categories/buttons-x7k2m9qa.svg"
	UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error)

	DeleteFile(ctx context.Context, path string) error

	// GetFileURL แปลง path เป็น public URL
	GetFileURL(path string) string

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
