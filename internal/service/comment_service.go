package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// commentService implements CommentService.
type commentService struct {
	commentRepo repository.CommentRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, productRepo repository.ProductRepository, logger zerolog.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "comment").Logger(),
	}
}

// ListByProductSlug retrieves visible reviews for a product, newest first.
// The product itself is looked up without a visibility filter, matching the
// storefront's listing behaviour.
func (s *commentService) ListByProductSlug(ctx context.Context, slug string, page, limit int) (*model.CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	product, err := s.productRepo.GetBySlug(ctx, slug, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	items, total, err := s.commentRepo.ListVisibleByProduct(ctx, product.ID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if items == nil {
		items = []model.Comment{}
	}

	return &model.CommentPage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages(total, limit),
		TotalItems: total,
	}, nil
}

// Create posts a review against a visible product.
func (s *commentService) Create(ctx context.Context, slug, userPhone string, req *model.CommentCreateRequest) (*model.Comment, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	now := time.Now()
	comment := &model.Comment{
		ID:        uuid.New(),
		ProductID: product.ID,
		UserPhone: userPhone,
		Text:      req.Text,
		Rating:    req.Rating,
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info().
		Str("comment_id", comment.ID.String()).
		Str("product_id", product.ID.String()).
		Msg("comment created")

	return comment, nil
}

// Moderate merges visibility/text changes into a review.
func (s *commentService) Moderate(ctx context.Context, id uuid.UUID, req *model.CommentPatchRequest) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return nil, model.ErrCommentNotFound
	}

	if req.Visible != nil {
		comment.Visible = *req.Visible
	}
	if req.Text != nil {
		comment.Text = *req.Text
	}
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	s.logger.Info().
		Str("comment_id", comment.ID.String()).
		Bool("visible", comment.Visible).
		Msg("comment moderated")

	return comment, nil
}

// Delete hard-deletes a review.
func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if !deleted {
		return model.ErrCommentNotFound
	}

	s.logger.Info().Str("comment_id", id.String()).Msg("comment deleted")

	return nil
}
