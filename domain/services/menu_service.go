package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
)

type MenuService interface {
	// Load เมนูตามลำดับที่บันทึกไว้ หรือ default order ถ้ายังไม่มี
	Load(ctx context.Context) ([]dto.MenuItemResponse, error)

	// Reorder แทนที่ลำดับทั้งหมด, position = index
	Reorder(ctx context.Context, items []dto.MenuOrderItem) error

	// Reconcile เติม item ที่ยังไม่อยู่ในเมนูต่อท้าย
	Reconcile(ctx context.Context) (*dto.ReconcileMenuResponse, error)

	// RemoveItem ลบ item ออกจากเมนูโดยไม่เลื่อน position ตัวอื่น
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}
