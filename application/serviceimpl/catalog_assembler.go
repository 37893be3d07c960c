package serviceimpl

import (
	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
)

// JoinRow join row หนึ่งแถว; Resolved เป็น nil ถ้า entity ปลายทางหายไปแล้ว
type JoinRow[T any] struct {
	ID       uuid.UUID
	Resolved *T
}

func categoryJoinRows(c *models.Component) []JoinRow[models.Category] {
	rows := make([]JoinRow[models.Category], 0, len(c.ComponentCategories))
	for _, jr := range c.ComponentCategories {
		rows = append(rows, JoinRow[models.Category]{ID: jr.CategoryID, Resolved: jr.Category})
	}
	return rows
}

func subcategoryJoinRows(c *models.Component) []JoinRow[models.Subcategory] {
	rows := make([]JoinRow[models.Subcategory], 0, len(c.ComponentSubcategories))
	for _, jr := range c.ComponentSubcategories {
		rows = append(rows, JoinRow[models.Subcategory]{ID: jr.SubcategoryID, Resolved: jr.Subcategory})
	}
	return rows
}

// projectResolved คงลำดับของ join rows, ข้ามแถวที่ resolve ไม่ได้
func projectResolved[T any, V any](rows []JoinRow[T], project func(*T) V) []V {
	out := make([]V, 0, len(rows))
	for _, row := range rows {
		if row.Resolved == nil {
			continue
		}
		out = append(out, project(row.Resolved))
	}
	return out
}

// AssembleComponent แปลง component ที่ preload join rows แล้วให้เป็น response
// categories/subcategories ไม่เป็น nil เสมอ
func AssembleComponent(c *models.Component) dto.ComponentResponse {
	return dto.ComponentResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		IsPublic:      c.IsPublic,
		IsPro:         c.IsPro,
		Platforms:     dto.AvailablePlatforms(c),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Categories:    projectResolved(categoryJoinRows(c), dto.CategoryToResponse),
		Subcategories: projectResolved(subcategoryJoinRows(c), dto.SubcategoryToResponse),
	}
}

// AssembleComponents หนึ่ง output ต่อหนึ่ง input ตามลำดับเดิม
func AssembleComponents(rows []*models.Component) []dto.ComponentResponse {
	out := make([]dto.ComponentResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, AssembleComponent(c))
	}
	return out
}
