package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

var ErrUnsafePath = errors.New("unsafe storage path")

// LocalStorage เก็บไฟล์ใน filesystem แล้ว serve ผ่าน static route
type LocalStorage struct {
	basePath string // ./uploads
	baseURL  string // http://localhost:8080/files
}

type LocalStorageConfig struct {
	BasePath string
	BaseURL  string
}

var _ ports.StoragePort = (*LocalStorage)(nil)

func NewLocalStorage(config LocalStorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: config.BasePath,
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

// resolve แปลง object key เป็น path บน disk และกัน "../"
func (l *LocalStorage) resolve(key string) (string, string, error) {
	key = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(key, "\\", "/")), "/")
	if key == "" || strings.HasPrefix(key, "..") {
		return "", "", ErrUnsafePath
	}
	return key, filepath.Join(l.basePath, filepath.FromSlash(key)), nil
}

func (l *LocalStorage) UploadFile(ctx context.Context, file io.Reader, size int64, key string, contentType string) (string, error) {
	key, fullPath, err := l.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logger.DebugContext(ctx, "File stored locally", "path", key, "content_type", contentType)
	return l.GetFileURL(key), nil
}

// DeleteFile ไฟล์ที่ไม่มีอยู่แล้วถือว่าสำเร็จ
func (l *LocalStorage) DeleteFile(ctx context.Context, key string) error {
	_, fullPath, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (l *LocalStorage) GetFileURL(key string) string {
	return l.baseURL + "/" + strings.TrimPrefix(strings.ReplaceAll(key, "\\", "/"), "/")
}

func (l *LocalStorage) GetProviderName() string {
	return "local"
}

// BasePath ใช้ตอน mount static route
func (l *LocalStorage) BasePath() string {
	return l.basePath
}
