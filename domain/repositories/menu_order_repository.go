package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
)

type MenuOrderRepository interface {
	// List เรียงตาม position
	List(ctx context.Context) ([]*models.MenuOrder, error)
	// ReplaceAll ลบทั้งหมดแล้ว insert ใหม่ใน transaction เดียว
	ReplaceAll(ctx context.Context, entries []*models.MenuOrder) error
	// Append insert หลายแถวใน statement เดียว
	Append(ctx context.Context, entries []*models.MenuOrder) error
	DeleteByItemID(ctx context.Context, itemID uuid.UUID) error
}
