package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tilak630Devi/shop-webpage/internal/checkout"
	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService. Checkout is a formatting step
// plus one snapshot write: no payment, no stock decrement, and the cart is
// deliberately left intact afterwards.
type checkoutService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	shopNumber  string
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service targeting the given
// shop-side WhatsApp number.
func NewCheckoutService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	shopNumber string,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		shopNumber:  shopNumber,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// CheckoutCart checks out the user's whole cart at the frozen line prices.
func (s *checkoutService) CheckoutCart(ctx context.Context, phone string) (*model.CheckoutResult, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	if len(user.Cart) == 0 {
		return nil, model.ErrEmptyCart
	}

	ids := make([]uuid.UUID, len(user.Cart))
	for i, line := range user.Cart {
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

	items := make([]model.OrderItem, 0, len(user.Cart))
	var subtotal, mrpTotal float64
	for _, line := range user.Cart {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, model.ErrProductNotFound
		}
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Qty:       line.Qty,
			Price:     line.PriceAtAdd,
		})
		subtotal += float64(line.Qty) * line.PriceAtAdd
		mrpTotal += float64(line.Qty) * product.MRP
	}

	address := user.PrimaryAddress()
	message := checkout.BuildMessage(user, items, subtotal, mrpTotal, address)
	link := checkout.Link(s.shopNumber, message)

	if err := s.writeSnapshot(ctx, phone, items, subtotal); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("phone", phone).
		Int("item_count", len(items)).
		Float64("subtotal", subtotal).
		Msg("cart checkout link built")

	return &model.CheckoutResult{
		Link: link,
		Preview: model.CheckoutPreview{
			Items:   items,
			Totals:  model.OrderTotals{Subtotal: subtotal},
			Address: address,
		},
	}, nil
}

// BuyNow checks out a single ad-hoc item at the current selling price.
func (s *checkoutService) BuyNow(ctx context.Context, phone string, productID uuid.UUID, qty int) (*model.CheckoutResult, error) {
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

	item := model.OrderItem{
		ProductID: product.ID,
		Name:      product.Name,
		Qty:       qty,
		Price:     product.SellingPrice,
	}
	subtotal := float64(qty) * product.SellingPrice
	mrpTotal := float64(qty) * product.MRP

	address := user.PrimaryAddress()
	message := checkout.BuildMessage(user, []model.OrderItem{item}, subtotal, mrpTotal, address)
	link := checkout.Link(s.shopNumber, message)

	if err := s.writeSnapshot(ctx, phone, []model.OrderItem{item}, subtotal); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("phone", phone).
		Str("product_id", productID.String()).
		Int("qty", qty).
		Msg("buy-now link built")

	return &model.CheckoutResult{
		Link: link,
		Preview: model.CheckoutPreview{
			Item:   &item,
			Totals: model.OrderTotals{Subtotal: subtotal},
		},
	}, nil
}

// writeSnapshot persists exactly one order record per checkout call.
func (s *checkoutService) writeSnapshot(ctx context.Context, phone string, items []model.OrderItem, total float64) error {
	order := &model.Order{
		ID:        uuid.New(),
		UserPhone: phone,
		Items:     items,
		Total:     total,
		Status:    model.OrderStatusInitiated,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("failed to write order snapshot: %w", err)
	}
	return nil
}
