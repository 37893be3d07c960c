package utils

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var unsafeFileChars = regexp.MustCompile(`[<>:"|?*\x00-\x1f\x7f]`)

// SanitizeFileName ตัด path ออกและแทนตัวอักษรอันตรายด้วย _
func SanitizeFileName(filename string) string {
	filename = filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	filename = unsafeFileChars.ReplaceAllString(filename, "_")
	filename = strings.TrimSpace(filename)

	if filename == "" || filename == "." || filename == ".." || filename == "/" {
		filename = "file"
	}
	return filename
}

// BuildLogoPath สร้าง object key ของ logo เช่น
// "categories/buttons-x7k2m9qa.svg"
func BuildLogoPath(folder, entityName, originalName string) string {
	base := slug.Make(entityName)
	if base == "" {
		base = slug.Make(strings.TrimSuffix(SanitizeFileName(originalName), filepath.Ext(originalName)))
	}
	if base == "" {
		base = "logo"
	}

	ext := strings.ToLower(filepath.Ext(SanitizeFileName(originalName)))
	if ext == "" {
		ext = ".svg"
	}

	return path.Join(folder, base+"-"+GenerateRandomString(8)+ext)
}
