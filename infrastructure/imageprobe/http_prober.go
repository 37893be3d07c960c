package imageprobe

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

// header ของรูปทุก format ที่รองรับอยู่ในช่วงแรกของไฟล์
const maxHeaderBytes = 512 * 1024

var ErrUnsupportedURL = errors.New("image url must be http or https")

// HTTPProber ดึง header ของรูปผ่าน HTTP แล้วอ่านขนาดด้วย image.DecodeConfig
type HTTPProber struct {
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.ImageProber = (*HTTPProber)(nil)

// NewHTTPProber timeout ของแต่ละ probe มาจาก ctx ของผู้เรียก
// transportTimeout เป็นเพดานเผื่อ ctx ไม่มี deadline
func NewHTTPProber(transportTimeout time.Duration) *HTTPProber {
	return &HTTPProber{
		httpClient: &http.Client{Timeout: transportTimeout},
		logger:     logger.Component("image_probe"),
	}
}

func (p *HTTPProber) Probe(ctx context.Context, url string) (*ports.ImageInfo, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, ErrUnsupportedURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", maxHeaderBytes-1))
	req.Header.Set("Accept", "image/*")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	cfg, format, err := image.DecodeConfig(io.LimitReader(resp.Body, maxHeaderBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}

	p.logger.DebugContext(ctx, "Image probed", "url", url, "format", format, "width", cfg.Width, "height", cfg.Height)

	return &ports.ImageInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		Type:   format,
		Mime:   "image/" + format,
	}, nil
}
