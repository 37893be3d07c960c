package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
)

type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *models.Subcategory) error
	// GetByID preload Category
	GetByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error)
	// List ทั้งหมดพร้อม Category เรียงตามชื่อ
	List(ctx context.Context) ([]*models.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Subcategory, error)
	// ListByCreation เรียงตาม created_at ใช้สร้าง default menu
	ListByCreation(ctx context.Context) ([]*models.Subcategory, error)
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	// Delete ลบพร้อม join rows และ menu entry
	Delete(ctx context.Context, id uuid.UUID) error
}
