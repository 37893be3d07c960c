package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
)

// === Requests ===

// CreateCategoryRequest รับได้ทั้ง JSON และ multipart (ไฟล์ logo อยู่ใน field "svg")
type CreateCategoryRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,notblank,max=255"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=2000"`
	SvgLogo     *string `json:"svg_logo" form:"svg_logo" validate:"omitempty,url"`
	ImageURL    *string `json:"image_url" form:"image_url" validate:"omitempty,url"`
}

// === Responses ===

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	SvgLogo     *string   `json:"svg_logo"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategorySummary ใช้ฝังใน subcategory
type CategorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// === Mappers ===

func CategoryToResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		SvgLogo:     c.SvgLogo,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
	}
}

func CategoriesToResponses(categories []*models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryToResponse(c))
	}
	return out
}
