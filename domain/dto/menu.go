package dto

import (
	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
)

type MenuItemResponse struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	Type     models.MenuItemType `json:"type"`
	URL      string              `json:"url"`
	Position int                 `json:"position"`
}

type MenuOrderItem struct {
	ID   uuid.UUID           `json:"id" validate:"required"`
	Type models.MenuItemType `json:"type" validate:"required,oneof=category subcategory"`
}

// ReorderMenuRequest ลำดับใหม่ทั้งหมด, position = index ใน items
type ReorderMenuRequest struct {
	Items []MenuOrderItem `json:"items" validate:"required,dive"`
}

type ReconcileMenuResponse struct {
	CategoriesAdded    int `json:"categoriesAdded"`
	SubcategoriesAdded int `json:"subcategoriesAdded"`
}
