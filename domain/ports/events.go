package ports

import (
	"context"
	"time"
)

type CatalogEventType string

const (
	CatalogCreated    CatalogEventType = "created"
	CatalogDeleted    CatalogEventType = "deleted"
	CatalogReordered  CatalogEventType = "reordered"
	CatalogReconciled CatalogEventType = "reconciled"
)

// CatalogEvent ส่งออกทุกครั้งที่ catalog หรือ menu เปลี่ยน
type CatalogEvent struct {
	Type   CatalogEventType `json:"type"`
	Entity string           `json:"entity"` // category, subcategory, component, menu
	ID     string           `json:"id,omitempty"`
	At     time.Time        `json:"at"`
}

// CatalogEventPublisher ไม่ต้องรับประกันการส่ง (fire and forget)
type CatalogEventPublisher interface {
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error
	IsConnected() bool
}
