package ports

import "context"

// ImageInfo ขนาดและชนิดรูปที่อ่านได้จาก header
type ImageInfo struct {
	Width  int
	Height int
	Type   string // png, jpeg, gif, webp, bmp
	Mime   string
}

// ImageProber อ่านขนาดรูปจาก URL โดยไม่ decode ทั้งไฟล์
type ImageProber interface {
	Probe(ctx context.Context, url string) (*ImageInfo, error)
}
