package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
)

// === Requests ===

type CreateComponentRequest struct {
	Name           string      `json:"name" validate:"required,notblank,max=255"`
	Description    string      `json:"description" validate:"required,notblank"`
	ImageURL       string      `json:"image_url" validate:"required,url"`
	IsPublic       *bool       `json:"is_public"`
	IsPro          *bool       `json:"is_pro"`
	FigmaCode      string      `json:"figma_code"`
	FramerCode     string      `json:"framer_code"`
	WebflowCode    string      `json:"webflow_code"`
	CategoryIDs    []uuid.UUID `json:"category_ids"`
	SubcategoryIDs []uuid.UUID `json:"subcategory_ids"`
}

// ComponentFilter เงื่อนไขกรองแบบ AND ของทั้งสามข้อ, set ว่าง = ไม่กรอง
type ComponentFilter struct {
	Query          string
	CategoryIDs    []uuid.UUID
	SubcategoryIDs []uuid.UUID
}

func (f ComponentFilter) IsEmpty() bool {
	return f.Query == "" && len(f.CategoryIDs) == 0 && len(f.SubcategoryIDs) == 0
}

// === Responses ===

type ImageDimensions struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Type   string `json:"type,omitempty"`
	Mime   string `json:"mime,omitempty"`
}

// ComponentResponse component พร้อม categories/subcategories ที่ resolve แล้ว
// ตัว source code ไม่อยู่ใน list, ดึงผ่าน /components/:id/code
type ComponentResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	ImageURL      string                `json:"image_url"`
	IsPublic      bool                  `json:"is_public"`
	IsPro         bool                  `json:"is_pro"`
	Platforms     []models.CodePlatform `json:"platforms"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Categories    []CategoryResponse    `json:"categories"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
	Dimensions    *ImageDimensions      `json:"dimensions,omitempty"`
}

// CategoryComponentsResponse ผลของ /components/category และ /components/subcategory
type CategoryComponentsResponse struct {
	Category    CategoryResponse     `json:"category"`
	Subcategory *SubcategoryResponse `json:"subcategory"`
	Components  []ComponentResponse  `json:"components"`
}

type CreateComponentResponse struct {
	ComponentID uuid.UUID `json:"component_id"`
}

type DeleteComponentsResponse struct {
	Deleted int64 `json:"deleted"`
}

type ComponentCodeResponse struct {
	Code string `json:"code"`
}

// AvailablePlatforms คืน platform ที่มี code (ไม่ว่าง)
func AvailablePlatforms(c *models.Component) []models.CodePlatform {
	out := []models.CodePlatform{}
	for _, p := range []models.CodePlatform{models.PlatformFigma, models.PlatformFramer, models.PlatformWebflow} {
		if code := c.Code(p); code != nil && *code != "" {
			out = append(out, p)
		}
	}
	return out
}
