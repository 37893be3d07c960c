package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
)

// ComponentRepository ทุก List* preload join rows และเรียง created_at DESC
type ComponentRepository interface {
	Create(ctx context.Context, component *models.Component) error
	AddCategories(ctx context.Context, componentID uuid.UUID, categoryIDs []uuid.UUID) error
	AddSubcategories(ctx context.Context, componentID uuid.UUID, subcategoryIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Component, error)
	ListWithRelations(ctx context.Context) ([]*models.Component, error)
	// ListByCategory component ที่มี join row กับ category (และ subcategory ถ้าระบุ)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, subcategoryID *uuid.UUID) ([]*models.Component, error)
	ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]*models.Component, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}
