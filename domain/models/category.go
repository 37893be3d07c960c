package models

import (
	"time"

	"github.com/google/uuid"
)

// Category หมวดหลักของ component (เช่น "Buttons", "Hero Sections")
type Category struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	SvgLogo     *string   `gorm:"type:text"` // public URL ของ SVG logo
	ImageURL    *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`

	// Relations
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "categories"
}
