package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalogue product.
type Product struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	MRP          float64   `json:"mrp" db:"mrp"`
	SellingPrice float64   `json:"sellingPrice" db:"selling_price"`
	Category     string    `json:"category" db:"category"`
	Image        string    `json:"image" db:"image"`
	Visible      bool      `json:"visible" db:"visible"`
	Stock        int       `json:"stock" db:"stock"`
	Description  string    `json:"description,omitempty" db:"description"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Product sort orders accepted by the listing endpoints.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

// ProductFilter holds catalogue listing parameters.
type ProductFilter struct {
	Query    string
	Category string
	// Visible filters by visibility when set; public listings pin it to true.
	Visible *bool
	Sort    string
	Page    int
	Limit   int
}

// ProductPage is a paginated product listing.
type ProductPage struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	TotalItems int       `json:"totalItems"`
}
