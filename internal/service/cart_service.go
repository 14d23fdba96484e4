package service

import (
	"context"
	"fmt"

	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService. Every mutation reads the owning user
// row, mutates the cart slice in memory, and writes the whole cart back;
// concurrent mutations on the same user are last-write-wins.
type cartService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(userRepo repository.UserRepository, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		userRepo:    userRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get aggregates the cart into display items and totals. Lines are joined
// with the current catalogue snapshot for name, slug and live mrp, but the
// price is always the frozen priceAtAdd.
func (s *cartService) Get(ctx context.Context, phone string) (*model.CartView, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	products, err := s.cartProducts(ctx, user.Cart)
	if err != nil {
		return nil, err
	}

	view := &model.CartView{Items: []model.CartItemView{}}
	for _, line := range user.Cart {
		product, ok := products[line.ProductID]
		if !ok {
			// Product deleted since it was added; the line contributes nothing.
			s.logger.Warn().
				Str("phone", phone).
				Str("product_id", line.ProductID.String()).
				Msg("cart line references missing product, skipping")
			continue
		}

		view.Items = append(view.Items, model.CartItemView{
			ProductID: product.ID,
			Name:      product.Name,
			Qty:       line.Qty,
			Price:     line.PriceAtAdd,
			MRP:       product.MRP,
			Slug:      product.Slug,
		})
		view.Totals.Subtotal += float64(line.Qty) * line.PriceAtAdd
		view.Totals.MRPTotal += float64(line.Qty) * product.MRP
	}

	return view, nil
}

// Add appends a line or increments an existing one. A product already in the
// cart never produces a second line.
func (s *cartService) Add(ctx context.Context, phone string, productID uuid.UUID, qty int) ([]model.CartLine, error) {
	if qty < 1 {
		qty = 1
	}

	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil || !product.Visible {
		return nil, model.ErrProductNotFound
	}

	merged := false
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart[i].Qty += qty
			merged = true
			break
		}
	}
	if !merged {
		user.Cart = append(user.Cart, model.CartLine{
			ProductID:  product.ID,
			Qty:        qty,
			PriceAtAdd: product.SellingPrice,
		})
	}

	if err := s.userRepo.UpdateCart(ctx, phone, user.Cart); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("phone", phone).
		Str("product_id", productID.String()).
		Int("qty", qty).
		Bool("merged", merged).
		Msg("added to cart")

	return user.Cart, nil
}

// UpdateQty sets a line's quantity to an exact value.
func (s *cartService) UpdateQty(ctx context.Context, phone string, productID uuid.UUID, qty int) ([]model.CartLine, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	found := false
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart[i].Qty = qty
			found = true
			break
		}
	}
	if !found {
		return nil, model.ErrCartItemNotFound
	}

	if err := s.userRepo.UpdateCart(ctx, phone, user.Cart); err != nil {
		return nil, err
	}

	return user.Cart, nil
}

// Remove deletes a line. The cart is untouched when the line is absent.
func (s *cartService) Remove(ctx context.Context, phone string, productID uuid.UUID) ([]model.CartLine, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	remaining := user.Cart[:0:0]
	for _, line := range user.Cart {
		if line.ProductID != productID {
			remaining = append(remaining, line)
		}
	}
	if len(remaining) == len(user.Cart) {
		return nil, model.ErrCartItemNotFound
	}
	user.Cart = remaining

	if err := s.userRepo.UpdateCart(ctx, phone, user.Cart); err != nil {
		return nil, err
	}

	return user.Cart, nil
}

// cartProducts fetches the catalogue rows referenced by the cart, keyed by id.
func (s *cartService) cartProducts(ctx context.Context, cart []model.CartLine) (map[uuid.UUID]model.Product, error) {
	if len(cart) == 0 {
		return map[uuid.UUID]model.Product{}, nil
	}

	ids := make([]uuid.UUID, len(cart))
	for i, line := range cart {
		ids[i] = line.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart products: %w", err)
	}

	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}
