package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
)

// === Requests ===

type CreateSubcategoryRequest struct {
	CategoryID  uuid.UUID `json:"category_id" form:"category_id" validate:"required"`
	Name        string    `json:"name" form:"name" validate:"required,notblank,max=255"`
	Description *string   `json:"description" form:"description" validate:"omitempty,max=2000"`
	SvgLogo     *string   `json:"svg_logo" form:"svg_logo" validate:"omitempty,url"`
	ImageURL    *string   `json:"image_url" form:"image_url" validate:"omitempty,url"`
}

// === Responses ===

type SubcategoryResponse struct {
	ID          uuid.UUID        `json:"id"`
	CategoryID  uuid.UUID        `json:"category_id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	SvgLogo     *string          `json:"svg_logo"`
	ImageURL    *string          `json:"image_url"`
	CreatedAt   time.Time        `json:"created_at"`
	Category    *CategorySummary `json:"category,omitempty"`
}

// CategorySubcategoriesResponse ผลของ GET /subcategories?categoryId=
type CategorySubcategoriesResponse struct {
	Category      CategoryResponse      `json:"category"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// === Mappers ===

func SubcategoryToResponse(s *models.Subcategory) SubcategoryResponse {
	resp := SubcategoryResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		SvgLogo:     s.SvgLogo,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
	}
	if s.Category != nil {
		resp.Category = &CategorySummary{ID: s.Category.ID, Name: s.Category.Name}
	}
	return resp
}

func SubcategoriesToResponses(subs []*models.Subcategory) []SubcategoryResponse {
	out := make([]SubcategoryResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, SubcategoryToResponse(s))
	}
	return out
}
