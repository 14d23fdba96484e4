package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/repository"
	"github.com/Tilak630Devi/shop-webpage/internal/slug"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	slugs       *slug.Allocator
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, slugs *slug.Allocator, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		slugs:       slugs,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// normalizeFilter clamps pagination to sane bounds.
func normalizeFilter(filter model.ProductFilter) model.ProductFilter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 24
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return filter
}

func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}

// List retrieves the public catalogue page.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	filter = normalizeFilter(filter)
	visible := true
	filter.Visible = &visible

	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if items == nil {
		items = []model.Product{}
	}

	return &model.ProductPage{
		Items:      items,
		Page:       filter.Page,
		TotalPages: totalPages(total, filter.Limit),
		TotalItems: total,
	}, nil
}

// GetBySlug retrieves a visible product by slug.
func (s *productService) GetBySlug(ctx context.Context, slugValue string) (*model.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slugValue, true)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slugValue).Msg("failed to get product by slug")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// AdminList retrieves the back-office catalogue page, hidden products included.
func (s *productService) AdminList(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	filter = normalizeFilter(filter)

	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products for admin")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if items == nil {
		items = []model.Product{}
	}

	return &model.ProductPage{
		Items:      items,
		Page:       filter.Page,
		TotalPages: totalPages(total, filter.Limit),
		TotalItems: total,
	}, nil
}

// Create creates a product, allocating a unique slug. An explicitly supplied
// slug is used as the allocation base instead of the name.
func (s *productService) Create(ctx context.Context, req *model.ProductCreateRequest) (*model.Product, error) {
	if req.SellingPrice > req.MRP {
		s.logger.Warn().
			Float64("mrp", req.MRP).
			Float64("selling_price", req.SellingPrice).
			Msg("rejected product with sellingPrice above mrp")
		return nil, model.ErrPriceAboveMRP
	}

	base := req.Name
	if req.Slug != "" {
		base = req.Slug
	}
	allocated, err := s.slugs.Allocate(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate slug: %w", err)
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	now := time.Now()
	product := &model.Product{
		ID:           uuid.New(),
		Name:         req.Name,
		Slug:         allocated,
		MRP:          req.MRP,
		SellingPrice: req.SellingPrice,
		Category:     req.Category,
		Image:        req.Image,
		Visible:      visible,
		Stock:        req.Stock,
		Description:  req.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("slug", product.Slug).
		Msg("product created")

	return product, nil
}

// Patch merges partial fields into a product. The selling price invariant is
// checked only when both price fields arrive in the same request.
func (s *productService) Patch(ctx context.Context, id uuid.UUID, req *model.ProductPatchRequest, regenSlug bool) (*model.Product, error) {
	if req.MRP != nil && req.SellingPrice != nil && *req.SellingPrice > *req.MRP {
		return nil, model.ErrPriceAboveMRP
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.MRP != nil {
		product.MRP = *req.MRP
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Visible != nil {
		product.Visible = *req.Visible
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Description != nil {
		product.Description = *req.Description
	}

	if regenSlug && req.Name != nil {
		allocated, err := s.slugs.Allocate(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to allocate slug: %w", err)
		}
		product.Slug = allocated
	}

	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Bool("regen_slug", regenSlug).
		Msg("product updated")

	return product, nil
}

// Delete hard-deletes a product.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}
