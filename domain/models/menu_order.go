package models

import (
	"github.com/google/uuid"
)

type MenuItemType string

const (
	MenuItemCategory    MenuItemType = "category"
	MenuItemSubcategory MenuItemType = "subcategory"
)

func (t MenuItemType) IsValid() bool {
	return t == MenuItemCategory || t == MenuItemSubcategory
}

// MenuOrder หนึ่งแถวต่อหนึ่ง item ในเมนู navigation
// position ไม่จำเป็นต้องต่อเนื่อง แต่ต้องไม่ซ้ำกัน
type MenuOrder struct {
	ID       uuid.UUID    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ItemID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex"`
	ItemType MenuItemType `gorm:"size:20;not null"`
	Position int          `gorm:"not null;index"`
}

func (MenuOrder) TableName() string {
	return "menu_order"
}
