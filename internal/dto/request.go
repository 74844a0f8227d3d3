package dto

import "time"

type CreateBookingRequest struct {
	ItemID uint      `json:"item_id" validate:"required"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}
