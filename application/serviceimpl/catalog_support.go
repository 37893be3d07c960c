package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

const (
	cacheNamespace     = "catalog"
	cacheKeyPattern    = "catalog:*"
	menuCacheKey       = "catalog:menu"
	componentsCacheKey = "catalog:components"
)

// CatalogSupport dependency ร่วมของ catalog services ทุกตัว
// Cache และ Events เป็น nil ได้
type CatalogSupport struct {
	Cache    ports.CachePort
	CacheTTL time.Duration
	Events   ports.CatalogEventPublisher
}

// changed ล้าง cache แล้วส่ง event หลัง write สำเร็จ
func (s CatalogSupport) changed(ctx context.Context, entity string, eventType ports.CatalogEventType, id uuid.UUID) {
	s.invalidate(ctx)
	s.publish(ctx, entity, eventType, id)
}

// invalidate bump generation ก่อน read ที่ค้างอยู่จะได้เติม cache ลง key ของ generation เก่า
// แล้วค่อยลบ key เก่าทิ้ง
func (s CatalogSupport) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if _, err := s.Cache.BumpGeneration(ctx, cacheNamespace); err != nil {
		logger.WarnContext(ctx, "Failed to bump catalog cache generation", "error", err)
	}
	n, err := s.Cache.ScanAndDelete(ctx, cacheKeyPattern)
	if err != nil {
		logger.WarnContext(ctx, "Failed to invalidate catalog cache", "error", err)
		return
	}
	logger.DebugContext(ctx, "Catalog cache invalidated", "keys", n)
}

func (s CatalogSupport) publish(ctx context.Context, entity string, eventType ports.CatalogEventType, id uuid.UUID) {
	if s.Events == nil {
		return
	}
	event := &ports.CatalogEvent{
		Type:   eventType,
		Entity: entity,
		At:     time.Now().UTC(),
	}
	if id != uuid.Nil {
		event.ID = id.String()
	}
	if err := s.Events.PublishCatalogEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish catalog event", "entity", entity, "type", eventType, "error", err)
	}
}

// cachedRead อ่านผ่าน cache ถ้ามี; cache ล่มก็อ่านจาก store ตรงๆ
// key จริงคือ "<key>:g<generation>"
func cachedRead[T any](ctx context.Context, s CatalogSupport, key string, fetch func(context.Context) (T, error)) (T, error) {
	if s.Cache == nil {
		return fetch(ctx)
	}

	gen, err := s.Cache.Generation(ctx, cacheNamespace)
	if err != nil {
		logger.WarnContext(ctx, "Cache unavailable, reading from store", "key", key, "error", err)
		return fetch(ctx)
	}
	key = generationCacheKey(key, gen)

	var fetchErr error
	var out T
	err = s.Cache.GetOrSet(ctx, key, &out, s.CacheTTL, func() (interface{}, error) {
		v, err := fetch(ctx)
		fetchErr = err
		return v, err
	})
	if fetchErr != nil {
		return out, fetchErr
	}
	if err != nil {
		logger.WarnContext(ctx, "Cache unavailable, reading from store", "key", key, "error", err)
		return fetch(ctx)
	}
	return out, nil
}

func generationCacheKey(key string, gen int64) string {
	return fmt.Sprintf("%s:g%d", key, gen)
}

// uniqueIDs ตัดตัวซ้ำโดยคงลำดับเดิม
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
