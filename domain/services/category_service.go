package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
)

type CategoryService interface {
	// Create สร้าง category, logo (ถ้ามี) จะถูกอัปโหลดก่อน insert
	Create(ctx context.Context, req *dto.CreateCategoryRequest, logo *dto.LogoUpload) (*models.Category, error)

	// GetByID ดึง category ตาม ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)

	// List categories เรียงตามเวลาสร้าง
	List(ctx context.Context) ([]*models.Category, error)

	// Delete ลบ category พร้อม subcategories และ menu entries
	Delete(ctx context.Context, id uuid.UUID) error
}
