package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
)

type SubcategoryService interface {
	// Create ต้องมี category อยู่จริง
	Create(ctx context.Context, req *dto.CreateSubcategoryRequest, logo *dto.LogoUpload) (*models.Subcategory, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error)

	// List ทั้งหมดพร้อม category{id,name} เรียงตามชื่อ
	List(ctx context.Context) ([]*models.Subcategory, error)

	// ListByCategory คืน category และ subcategories ของมัน
	ListByCategory(ctx context.Context, categoryID uuid.UUID) (*models.Category, []*models.Subcategory, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
