package model

import "github.com/google/uuid"

// Typed request commands. Handlers decode and validate these at the boundary
// so that no raw, loosely-typed input reaches the services.

// AddressRequest is the address block of a signup request.
type AddressRequest struct {
	Label   string `json:"label"`
	Line1   string `json:"line1" validate:"required,min=3"`
	City    string `json:"city" validate:"required,min=2"`
	State   string `json:"state" validate:"required,min=2"`
	Pincode string `json:"pincode" validate:"required,min=4,max=10"`
}

// Address converts the request block to the stored form, defaulting the label.
func (r AddressRequest) Address() Address {
	label := r.Label
	if label == "" {
		label = "Primary"
	}
	return Address{
		Label:   label,
		Line1:   r.Line1,
		City:    r.City,
		State:   r.State,
		Pincode: r.Pincode,
	}
}

// SignupRequest registers a new user account.
type SignupRequest struct {
	Phone   string         `json:"phone" validate:"required,len=10,numeric"`
	Name    string         `json:"name" validate:"required,max=80"`
	Address AddressRequest `json:"address" validate:"required"`
}

// LoginRequest logs an existing user in (existence check only, no OTP).
type LoginRequest struct {
	Phone string `json:"phone" validate:"required,len=10,numeric"`
}

// AdminLoginRequest authenticates a back-office account.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProductCreateRequest creates a catalogue product. Slug is derived from the
// name when absent.
type ProductCreateRequest struct {
	Name         string  `json:"name" validate:"required,min=1"`
	Slug         string  `json:"slug"`
	MRP          float64 `json:"mrp" validate:"required,gt=0"`
	SellingPrice float64 `json:"sellingPrice" validate:"required,gt=0"`
	Category     string  `json:"category" validate:"required,min=1"`
	Image        string  `json:"image" validate:"required,min=1"`
	Visible      *bool   `json:"visible"`
	Stock        int     `json:"stock" validate:"min=0"`
	Description  string  `json:"description"`
}

// ProductPatchRequest partially updates a product; nil fields are untouched.
type ProductPatchRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	MRP          *float64 `json:"mrp" validate:"omitempty,gt=0"`
	SellingPrice *float64 `json:"sellingPrice" validate:"omitempty,gt=0"`
	Category     *string  `json:"category" validate:"omitempty,min=1"`
	Image        *string  `json:"image" validate:"omitempty,min=1"`
	Visible      *bool    `json:"visible"`
	Stock        *int     `json:"stock" validate:"omitempty,min=0"`
	Description  *string  `json:"description"`
}

// AddToCartRequest adds a product to the cart. Qty defaults to 1. The same
// shape is used by buy-now.
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Qty       int       `json:"qty" validate:"omitempty,min=1"`
}

// UpdateCartItemRequest sets a cart line's quantity to an exact value.
type UpdateCartItemRequest struct {
	Qty int `json:"qty" validate:"required,min=1"`
}

// CommentCreateRequest posts a review against a visible product.
type CommentCreateRequest struct {
	Text   string `json:"text" validate:"required,min=2,max=500"`
	Rating *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

// CommentPatchRequest moderates a review; nil fields are untouched.
type CommentPatchRequest struct {
	Visible *bool   `json:"visible"`
	Text    *string `json:"text" validate:"omitempty,min=1,max=500"`
}
