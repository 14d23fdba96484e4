package model

import "github.com/google/uuid"

// CartItemView is a display-ready cart line joined with the current catalogue
// snapshot. Price is the frozen priceAtAdd; MRP is the live list price.
type CartItemView struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Qty       int       `json:"qty"`
	Price     float64   `json:"price"`
	MRP       float64   `json:"mrp"`
	Slug      string    `json:"slug"`
}

// CartTotals holds the aggregated cart totals.
// Subtotal = Σ(qty × priceAtAdd); MRPTotal = Σ(qty × mrp).
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	MRPTotal float64 `json:"mrpTotal"`
}

// CartView is the aggregated cart returned by GET /cart. It is recomputed
// fresh on every read; nothing is cached or persisted.
type CartView struct {
	Items  []CartItemView `json:"items"`
	Totals CartTotals     `json:"totals"`
}
