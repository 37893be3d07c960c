package models

import (
	"time"

	"github.com/google/uuid"
)

type AccountType int

const (
	AccountFree AccountType = 0
	AccountPro  AccountType = 1
	AccountTeam AccountType = 2
)

func (a AccountType) Name() string {
	switch a {
	case AccountPro:
		return "pro"
	case AccountTeam:
		return "team"
	default:
		return "free"
	}
}

// IsPaid ใช้ตัดสินสิทธิ์เข้าถึง component ที่ is_pro
func (a AccountType) IsPaid() bool {
	return a == AccountPro || a == AccountTeam
}

// User profile ของผู้ใช้ (auth อยู่ที่ identity provider ภายนอก, id ตรงกับ token)
type User struct {
	ID           uuid.UUID   `gorm:"primaryKey;type:uuid"`
	FullName     string      `gorm:"size:255"`
	Email        string      `gorm:"size:255;uniqueIndex;not null"`
	Country      *string     `gorm:"size:100"`
	City         *string     `gorm:"size:100"`
	MobileNumber *string     `gorm:"size:30"`
	AccountType  AccountType `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
