package dto

import "github.com/google/uuid"

type MessageResponse struct {
	Message string `json:"message"`
}

type IDsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}
