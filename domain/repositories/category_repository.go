package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	// List เรียงตาม created_at
	List(ctx context.Context) ([]*models.Category, error)
	// ExistingIDs คืนเฉพาะ id ที่มีอยู่จริง
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	// Delete ลบ category พร้อม subcategories, join rows และ menu entries ใน transaction เดียว
	Delete(ctx context.Context, id uuid.UUID) error
}
