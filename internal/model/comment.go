package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a product review. Visibility is toggled by admin moderation.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	UserPhone string    `json:"userPhone" db:"user_phone"`
	Text      string    `json:"text" db:"text"`
	Rating    *int      `json:"rating,omitempty" db:"rating"`
	Visible   bool      `json:"visible" db:"visible"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CommentPage is a paginated comment listing.
type CommentPage struct {
	Items      []Comment `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	TotalItems int       `json:"totalItems"`
}
