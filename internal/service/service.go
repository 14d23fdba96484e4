package service

import (
	"context"

	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/google/uuid"
)

// ProductService defines catalogue operations for both the public storefront
// and the admin back office.
type ProductService interface {
	// List retrieves the public catalogue page (visible products only).
	List(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error)

	// GetBySlug retrieves a visible product by slug.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// AdminList retrieves the back-office catalogue page, hidden products included.
	AdminList(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error)

	// Create creates a product, allocating a unique slug.
	Create(ctx context.Context, req *model.ProductCreateRequest) (*model.Product, error)

	// Patch merges partial fields into a product. The slug is regenerated only
	// when regenSlug is set and the request carries a new name.
	Patch(ctx context.Context, id uuid.UUID, req *model.ProductPatchRequest, regenSlug bool) (*model.Product, error)

	// Delete hard-deletes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AuthService defines account operations for shoppers and admins.
type AuthService interface {
	// Signup registers a user (phone + name + one address) and issues a token.
	Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResult, error)

	// Login issues a token for an existing phone. Existence check only, no OTP.
	Login(ctx context.Context, phone string) (*model.AuthResult, error)

	// AdminLogin verifies back-office credentials and issues an admin token.
	AdminLogin(ctx context.Context, username, password string) (string, error)

	// EnsureAdmin creates the bootstrap admin account when it does not exist.
	EnsureAdmin(ctx context.Context, username, password string) error
}

// CartService defines per-user cart operations. Every read recomputes the
// aggregation fresh from the cart lines and the current catalogue snapshot.
type CartService interface {
	// Get aggregates the cart into display items and totals.
	Get(ctx context.Context, phone string) (*model.CartView, error)

	// Add appends a line or increments an existing one by qty.
	Add(ctx context.Context, phone string, productID uuid.UUID, qty int) ([]model.CartLine, error)

	// UpdateQty sets a line's quantity to an exact value.
	UpdateQty(ctx context.Context, phone string, productID uuid.UUID, qty int) ([]model.CartLine, error)

	// Remove deletes a line.
	Remove(ctx context.Context, phone string, productID uuid.UUID) ([]model.CartLine, error)
}

// CheckoutService turns a cart or an ad-hoc item into a WhatsApp deep-link
// and persists an order snapshot. It never clears the cart and never touches
// stock.
type CheckoutService interface {
	// CheckoutCart checks out the user's whole cart at the frozen line prices.
	CheckoutCart(ctx context.Context, phone string) (*model.CheckoutResult, error)

	// BuyNow checks out a single ad-hoc item at the current selling price,
	// bypassing the cart.
	BuyNow(ctx context.Context, phone string, productID uuid.UUID, qty int) (*model.CheckoutResult, error)
}

// CommentService defines review operations and admin moderation.
type CommentService interface {
	// ListByProductSlug retrieves visible reviews for a product, newest first.
	ListByProductSlug(ctx context.Context, slug string, page, limit int) (*model.CommentPage, error)

	// Create posts a review against a visible product.
	Create(ctx context.Context, slug, userPhone string, req *model.CommentCreateRequest) (*model.Comment, error)

	// Moderate merges visibility/text changes into a review.
	Moderate(ctx context.Context, id uuid.UUID, req *model.CommentPatchRequest) (*model.Comment, error)

	// Delete hard-deletes a review.
	Delete(ctx context.Context, id uuid.UUID) error
}
