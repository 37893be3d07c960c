package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
)

type UpdateProfileRequest struct {
	FullName     *string `json:"full_name" validate:"omitempty,fullname,max=255"`
	Country      *string `json:"country" validate:"omitempty,max=100"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	MobileNumber *string `json:"mobile_number" validate:"omitempty,phone"`
}

type ProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Country      *string   `json:"country"`
	City         *string   `json:"city"`
	MobileNumber *string   `json:"mobile_number"`
	AccountType  int       `json:"account_type"`
	Tier         string    `json:"tier"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func UserToProfileResponse(u *models.User) ProfileResponse {
	return ProfileResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Country:      u.Country,
		City:         u.City,
		MobileNumber: u.MobileNumber,
		AccountType:  int(u.AccountType),
		Tier:         u.AccountType.Name(),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
