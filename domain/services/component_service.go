package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
)

type ComponentService interface {
	// List components ทั้งหมดที่ผ่าน filter (filter ว่าง = ทั้งหมด)
	List(ctx context.Context, filter dto.ComponentFilter) ([]dto.ComponentResponse, error)

	// Search ค้นจากชื่อ, query ห้ามว่าง
	Search(ctx context.Context, query string) ([]dto.ComponentResponse, error)

	// ListByCategory components ของ category (กรอง subcategory เพิ่มได้) พร้อมขนาดรูป
	ListByCategory(ctx context.Context, categoryID uuid.UUID, subcategoryID *uuid.UUID) (*dto.CategoryComponentsResponse, error)

	// ListBySubcategory components ของ subcategory พร้อมขนาดรูป
	ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (*dto.CategoryComponentsResponse, error)

	// GetCode source ของ platform ที่ระบุ
	GetCode(ctx context.Context, id uuid.UUID, platform models.CodePlatform) (string, error)

	// Create insert component แล้วผูก categories/subcategories
	Create(ctx context.Context, req *dto.CreateComponentRequest) (uuid.UUID, error)

	// DeleteMany ลบหลายตัวพร้อมกัน
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}
