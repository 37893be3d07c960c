package serviceimpl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/ports"
)

func componentsWithImages(urls ...string) []dto.ComponentResponse {
	out := make([]dto.ComponentResponse, 0, len(urls))
	for _, u := range urls {
		out = append(out, dto.ComponentResponse{Name: u, ImageURL: u})
	}
	return out
}

func TestEnrichDimensions_RunsConcurrently(t *testing.T) {
	prober := &fakeProber{delay: 150 * time.Millisecond}
	enricher := NewDimensionEnricher(prober, time.Second, 8)

	urls := make([]string, 6)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://img.test/%d.png", i)
	}

	start := time.Now()
	out := enricher.EnrichDimensions(context.Background(), componentsWithImages(urls...))
	elapsed := time.Since(start)

	require.Len(t, out, 6)
	for i, c := range out {
		assert.Equal(t, urls[i], c.ImageURL, "order must be preserved")
		require.NotNil(t, c.Dimensions)
		assert.Equal(t, 800, c.Dimensions.Width)
		assert.Equal(t, 600, c.Dimensions.Height)
	}
	// sequential would take 900ms
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestEnrichDimensions_RespectsConcurrencyLimit(t *testing.T) {
	prober := &fakeProber{delay: 30 * time.Millisecond}
	enricher := NewDimensionEnricher(prober, time.Second, 2)

	urls := make([]string, 7)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://img.test/%d.png", i)
	}
	enricher.EnrichDimensions(context.Background(), componentsWithImages(urls...))

	assert.LessOrEqual(t, prober.peak, 2)
}

func TestEnrichDimensions_Fallbacks(t *testing.T) {
	prober := &fakeProber{
		delay: 10 * time.Millisecond,
		slow:  map[string]time.Duration{"https://img.test/slow.png": 2 * time.Second},
		fail:  map[string]bool{"https://img.test/broken.png": true},
		sizes: map[string]*ports.ImageInfo{
			"https://img.test/wide.webp": {Width: 1920, Height: 1080, Type: "webp", Mime: "image/webp"},
		},
	}
	enricher := NewDimensionEnricher(prober, 100*time.Millisecond, 4)

	start := time.Now()
	out := enricher.EnrichDimensions(context.Background(), componentsWithImages(
		"https://img.test/wide.webp",
		"https://img.test/slow.png",
		"https://img.test/broken.png",
		"",
	))
	elapsed := time.Since(start)

	require.Len(t, out, 4)
	assert.Equal(t, &dto.ImageDimensions{Width: 1920, Height: 1080, Type: "webp", Mime: "image/webp"}, out[0].Dimensions)

	fallback := &dto.ImageDimensions{Width: DefaultImageWidth, Height: DefaultImageHeight}
	assert.Equal(t, fallback, out[1].Dimensions, "timed out lookup")
	assert.Equal(t, fallback, out[2].Dimensions, "failed lookup")
	assert.Equal(t, fallback, out[3].Dimensions, "missing url")

	// ไม่รอ lookup ที่ช้าจนจบ
	assert.Less(t, elapsed, time.Second)
}

func TestEnrichDimensions_DoesNotMutateInput(t *testing.T) {
	in := componentsWithImages("https://img.test/a.png")
	enricher := NewDimensionEnricher(&fakeProber{}, time.Second, 1)

	out := enricher.EnrichDimensions(context.Background(), in)

	assert.Nil(t, in[0].Dimensions)
	assert.NotNil(t, out[0].Dimensions)
}

func TestEnrichDimensions_NilProber(t *testing.T) {
	enricher := NewDimensionEnricher(nil, 0, 0)
	out := enricher.EnrichDimensions(context.Background(), componentsWithImages("https://img.test/a.png"))

	require.Len(t, out, 1)
	assert.Equal(t, DefaultImageWidth, out[0].Dimensions.Width)
}
