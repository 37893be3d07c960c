package serviceimpl

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/Madhavladani/adeptjs64/domain/apperror"
	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
	"github.com/Madhavladani/adeptjs64/pkg/utils"
)

const (
	logoRoot         = "logos"
	svgContentType   = "image/svg+xml"
	logoFolderCat    = "categories"
	logoFolderSubcat = "subcategories"
)

// LogoUploader อัปโหลด SVG logo ไปที่ logos/<folder>/
type LogoUploader struct {
	storage ports.StoragePort
	maxSize int64
}

func NewLogoUploader(storage ports.StoragePort, maxSize int64) *LogoUploader {
	return &LogoUploader{storage: storage, maxSize: maxSize}
}

func isSVG(logo *dto.LogoUpload) bool {
	if strings.HasPrefix(strings.ToLower(logo.ContentType), svgContentType) {
		return true
	}
	return strings.EqualFold(filepath.Ext(logo.FileName), ".svg")
}

// Upload คืน public URL และ object key (ใช้ลบทิ้งถ้า insert ไม่สำเร็จ)
func (u *LogoUploader) Upload(ctx context.Context, folder, entityName string, logo *dto.LogoUpload) (string, string, error) {
	if u == nil || u.storage == nil {
		return "", "", apperror.Validation("svg", "Logo uploads are not configured")
	}
	if !isSVG(logo) {
		return "", "", apperror.Validation("svg", "Logo must be an SVG file")
	}
	if u.maxSize > 0 && logo.Size > u.maxSize {
		return "", "", apperror.Validation("svg", fmt.Sprintf("Logo must be at most %d bytes", u.maxSize))
	}

	key := path.Join(logoRoot, utils.BuildLogoPath(folder, entityName, logo.FileName))
	url, err := u.storage.UploadFile(ctx, logo.Reader, logo.Size, key, svgContentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload logo", "path", key, "error", err)
		return "", "", apperror.Store("upload logo", err)
	}

	logger.InfoContext(ctx, "Logo uploaded", "path", key, "provider", u.storage.GetProviderName())
	return url, key, nil
}

// Remove best effort
func (u *LogoUploader) Remove(ctx context.Context, key string) {
	if u == nil || u.storage == nil || key == "" {
		return
	}
	if err := u.storage.DeleteFile(context.WithoutCancel(ctx), key); err != nil {
		logger.WarnContext(ctx, "Failed to remove orphaned logo", "path", key, "error", err)
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
