package repository

import (
	"context"

	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update rewrites a product row in full.
	Update(ctx context.Context, product *model.Product) error

	// Delete hard-deletes a product. Returns false when the id does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// GetByID retrieves a product regardless of visibility. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetBySlug retrieves a product by slug, optionally restricted to visible
	// products. Returns nil when absent.
	GetBySlug(ctx context.Context, slug string, visibleOnly bool) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// List retrieves a filtered, sorted, paginated product page and the total
	// matching count.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int, error)

	// SlugExists reports whether a slug is already taken.
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// UserRepository defines the interface for user account data access.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByPhone retrieves a user by phone. Returns nil when absent.
	GetByPhone(ctx context.Context, phone string) (*model.User, error)

	// UpdateCart rewrites the user's whole cart document. Last write wins;
	// there is no per-line locking.
	UpdateCart(ctx context.Context, phone string, cart []model.CartLine) error
}

// CommentRepository defines the interface for review data access.
type CommentRepository interface {
	// Create inserts a new comment.
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID retrieves a comment regardless of visibility. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListVisibleByProduct retrieves visible comments for a product, newest
	// first, with the total visible count.
	ListVisibleByProduct(ctx context.Context, productID uuid.UUID, page, limit int) ([]model.Comment, int, error)

	// Update rewrites a comment's moderated fields (text, visibility).
	Update(ctx context.Context, comment *model.Comment) error

	// Delete hard-deletes a comment. Returns false when the id does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// AdminRepository defines the interface for back-office account data access.
type AdminRepository interface {
	// Create inserts a new admin account.
	Create(ctx context.Context, admin *model.Admin) error

	// GetByUsername retrieves an admin by username. Returns nil when absent.
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}

// OrderRepository defines the interface for order snapshot writes. Snapshots
// are audit-only; no read path exists.
type OrderRepository interface {
	// Create inserts an order snapshot.
	Create(ctx context.Context, order *model.Order) error
}
