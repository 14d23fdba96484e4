package repository

import (
	"context"
	"fmt"

	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const commentColumns = "id, product_id, user_phone, text, rating, visible, created_at, updated_at"

// commentRepository implements the CommentRepository interface using PostgreSQL.
type commentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCommentRepository creates a new PostgreSQL-backed comment repository.
func NewCommentRepository(pool *pgxpool.Pool, logger zerolog.Logger) CommentRepository {
	return &commentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "comment").Logger(),
	}
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(
		&c.ID, &c.ProductID, &c.UserPhone, &c.Text, &c.Rating,
		&c.Visible, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new comment.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (id, product_id, user_phone, text, rating, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID, comment.ProductID, comment.UserPhone, comment.Text,
		comment.Rating, comment.Visible, comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", comment.ProductID.String()).Msg("failed to create comment")
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment regardless of visibility.
func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	c, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("comment_id", id.String()).Msg("comment not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("comment_id", id.String()).Msg("failed to query comment")
		return nil, fmt.Errorf("failed to query comment: %w", err)
	}

	return c, nil
}

// ListVisibleByProduct retrieves visible comments for a product, newest first.
func (r *commentRepository) ListVisibleByProduct(ctx context.Context, productID uuid.UUID, page, limit int) ([]model.Comment, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE product_id = $1 AND visible`,
		productID,
	).Scan(&total)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to count comments")
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE product_id = $1 AND visible
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, productID, limit, (page-1)*limit)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to query comments")
		return nil, 0, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan comment row")
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating comment rows")
		return nil, 0, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, total, nil
}

// Update rewrites a comment's moderated fields.
func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	query := `UPDATE comments SET text = $2, visible = $3, updated_at = $4 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, comment.ID, comment.Text, comment.Visible, comment.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("comment_id", comment.ID.String()).Msg("failed to update comment")
		return fmt.Errorf("failed to update comment: %w", err)
	}

	return nil
}

// Delete hard-deletes a comment.
func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("comment_id", id.String()).Msg("failed to delete comment")
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
