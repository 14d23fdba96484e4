package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusInitiated is the only status this system ever writes; no
// transition logic exists.
const OrderStatusInitiated = "initiated"

// OrderItem is a denormalized copy of a line at checkout time.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Qty       int       `json:"qty"`
	Price     float64   `json:"price"`
}

// Order is a write-only audit snapshot of a checkout attempt. Nothing in the
// system reads it back.
type Order struct {
	ID               uuid.UUID   `json:"id" db:"id"`
	UserPhone        string      `json:"userPhone" db:"user_phone"`
	Items            []OrderItem `json:"items" db:"items"`
	Total            float64     `json:"total" db:"total"`
	Status           string      `json:"status" db:"status"`
	WhatsAppThreadID *string     `json:"whatsAppThreadId,omitempty" db:"whatsapp_thread_id"`
	CreatedAt        time.Time   `json:"createdAt" db:"created_at"`
}

// OrderTotals is the totals block of a checkout preview.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
}

// CheckoutPreview echoes back what the checkout message was built from.
// Cart checkout fills Items; buy-now fills Item.
type CheckoutPreview struct {
	Items   []OrderItem `json:"items,omitempty"`
	Item    *OrderItem  `json:"item,omitempty"`
	Totals  OrderTotals `json:"totals"`
	Address *Address    `json:"address,omitempty"`
}

// CheckoutResult is the response payload of both checkout endpoints.
type CheckoutResult struct {
	Link    string          `json:"link"`
	Preview CheckoutPreview `json:"preview"`
}
