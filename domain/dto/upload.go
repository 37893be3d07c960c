package dto

import "io"

// LogoUpload ไฟล์ SVG ที่แนบมากับการสร้าง category/subcategory
type LogoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
