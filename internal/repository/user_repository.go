package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
// Addresses and cart live as jsonb documents on the user row, so cart writes
// keep the embedded-document semantics of the storefront: the whole cart is
// rewritten in one per-row atomic statement.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// Create inserts a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (phone, name, addresses, cart, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		user.Phone, user.Name, user.Addresses, user.Cart, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("phone", user.Phone).Msg("failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Debug().Str("phone", user.Phone).Msg("user created")

	return nil
}

// GetByPhone retrieves a user by phone.
func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	query := `
		SELECT phone, name, addresses, cart, created_at, updated_at
		FROM users
		WHERE phone = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, phone).Scan(
		&u.Phone, &u.Name, &u.Addresses, &u.Cart, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("phone", phone).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("phone", phone).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// UpdateCart rewrites the user's whole cart document.
func (r *userRepository) UpdateCart(ctx context.Context, phone string, cart []model.CartLine) error {
	if cart == nil {
		cart = []model.CartLine{}
	}

	query := `UPDATE users SET cart = $2, updated_at = $3 WHERE phone = $1`

	tag, err := r.pool.Exec(ctx, query, phone, cart, time.Now())
	if err != nil {
		r.logger.Error().Err(err).Str("phone", phone).Msg("failed to update cart")
		return fmt.Errorf("failed to update cart: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	r.logger.Debug().
		Str("phone", phone).
		Int("lines", len(cart)).
		Msg("cart updated")

	return nil
}
