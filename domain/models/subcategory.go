package models

import (
	"time"

	"github.com/google/uuid"
)

// Subcategory อยู่ภายใต้ Category เดียวเสมอ
type Subcategory struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	SvgLogo     *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}
