package serviceimpl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

const (
	DefaultImageWidth  = 400
	DefaultImageHeight = 300

	defaultProbeTimeout     = 5 * time.Second
	defaultProbeConcurrency = 8
)

// DimensionEnricher เติมขนาดรูปให้ components แบบขนาน (จำกัดจำนวนพร้อมกัน)
type DimensionEnricher struct {
	prober      ports.ImageProber
	timeout     time.Duration
	concurrency int
	logger      *slog.Logger
}

func NewDimensionEnricher(prober ports.ImageProber, timeout time.Duration, concurrency int) *DimensionEnricher {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	if concurrency < 1 {
		concurrency = defaultProbeConcurrency
	}
	return &DimensionEnricher{
		prober:      prober,
		timeout:     timeout,
		concurrency: concurrency,
		logger:      logger.Component("image_dimensions"),
	}
}

// EnrichDimensions คืน slice ใหม่ที่ทุกตัวมี Dimensions
// probe ที่ล้มเหลวหรือเกินเวลาได้ 400x300
func (e *DimensionEnricher) EnrichDimensions(ctx context.Context, components []dto.ComponentResponse) []dto.ComponentResponse {
	out := make([]dto.ComponentResponse, len(components))
	copy(out, components)
	if len(out) == 0 {
		return out
	}

	sem := make(chan struct{}, e.concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for i := range out {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			dims, ok := e.probe(ctx, out[idx].ImageURL)
			out[idx].Dimensions = dims
			if !ok {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if failed > 0 {
		e.logger.DebugContext(ctx, "Some image probes fell back to default size",
			"failed", failed,
			"total", len(out),
		)
	}
	return out
}

type probeResult struct {
	info *ports.ImageInfo
	err  error
}

// probe ไม่รอเกิน timeout แม้ prober จะไม่สนใจ ctx
func (e *DimensionEnricher) probe(ctx context.Context, url string) (*dto.ImageDimensions, bool) {
	fallback := &dto.ImageDimensions{Width: DefaultImageWidth, Height: DefaultImageHeight}
	if url == "" || e.prober == nil {
		return fallback, false
	}

	probeCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	done := make(chan probeResult, 1)
	go func() {
		info, err := e.prober.Probe(probeCtx, url)
		done <- probeResult{info: info, err: err}
	}()

	select {
	case <-probeCtx.Done():
		return fallback, false
	case r := <-done:
		if r.err != nil || r.info == nil || r.info.Width <= 0 || r.info.Height <= 0 {
			return fallback, false
		}
		return &dto.ImageDimensions{
			Width:  r.info.Width,
			Height: r.info.Height,
			Type:   r.info.Type,
			Mime:   r.info.Mime,
		}, true
	}
}
