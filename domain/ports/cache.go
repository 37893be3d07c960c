package ports

import (
	"context"
	"time"
)

// CachePort JSON read cache สำหรับข้อมูล catalog
type CachePort interface {
	// GetOrSet อ่านจาก cache ถ้าไม่มีเรียก getter แล้วเก็บผลลัพธ์
	GetOrSet(ctx context.Context, key string, target interface{}, ttl time.Duration, getter func() (interface{}, error)) error
	// ScanAndDelete ลบทุก key ที่ match pattern เช่น "catalog:*"
	ScanAndDelete(ctx context.Context, pattern string) (int64, error)
	// Generation คืน generation ปัจจุบันของ namespace, 0 ถ้ายังไม่เคย bump
	Generation(ctx context.Context, namespace string) (int64, error)
	// BumpGeneration เพิ่ม generation, key ที่ผูกกับ generation เก่าจะไม่ถูกอ่านอีก
	BumpGeneration(ctx context.Context, namespace string) (int64, error)
}
