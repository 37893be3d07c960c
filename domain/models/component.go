package models

import (
	"time"

	"github.com/google/uuid"
)

// CodePlatform แพลตฟอร์มที่ component มี source code ให้ copy
type CodePlatform string

const (
	PlatformFigma   CodePlatform = "figma"
	PlatformFramer  CodePlatform = "framer"
	PlatformWebflow CodePlatform = "webflow"
)

// IsValid ตรวจว่าเป็น platform ที่รองรับ
func (p CodePlatform) IsValid() bool {
	switch p {
	case PlatformFigma, PlatformFramer, PlatformWebflow:
		return true
	}
	return false
}

type Component struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `gorm:"size:255;not null;index"`
	Description string    `gorm:"type:text;not null"`
	ImageURL    string    `gorm:"type:text;not null"`
	IsPublic    bool      `gorm:"not null;default:true"`
	IsPro       bool      `gorm:"not null;default:false"`
	FigmaCode   *string   `gorm:"type:text"`
	FramerCode  *string   `gorm:"type:text"`
	WebflowCode *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	// Join rows, order เป็นไปตามที่ store คืนมา
	ComponentCategories    []ComponentCategory    `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
	ComponentSubcategories []ComponentSubcategory `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
}

func (Component) TableName() string {
	return "components"
}

// Code คืน source ของ platform ที่ระบุ (nil = ไม่มี)
func (c *Component) Code(platform CodePlatform) *string {
	switch platform {
	case PlatformFigma:
		return c.FigmaCode
	case PlatformFramer:
		return c.FramerCode
	case PlatformWebflow:
		return c.WebflowCode
	}
	return nil
}

// ComponentCategory join row ระหว่าง component กับ category
type ComponentCategory struct {
	ComponentID uuid.UUID `gorm:"primaryKey;type:uuid"`
	CategoryID  uuid.UUID `gorm:"primaryKey;type:uuid;index"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (ComponentCategory) TableName() string {
	return "component_categories"
}

// ComponentSubcategory join row ระหว่าง component กับ subcategory
type ComponentSubcategory struct {
	ComponentID   uuid.UUID `gorm:"primaryKey;type:uuid"`
	SubcategoryID uuid.UUID `gorm:"primaryKey;type:uuid;index"`

	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE"`
}

func (ComponentSubcategory) TableName() string {
	return "component_subcategories"
}
