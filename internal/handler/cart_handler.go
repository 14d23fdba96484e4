package handler

import (
	"net/http"

	"github.com/Tilak630Devi/shop-webpage/internal/middleware"
	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles the authenticated cart endpoints.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// pathProductID parses the {productId} path segment.
func pathProductID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("productId"))
	if err != nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Invalid product id")
	}
	return id, nil
}

// Get handles GET /cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), middleware.UserPhone(r.Context()))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, view)
}

// Add handles POST /cart/add.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid cart item", details)
		return
	}

	cart, err := h.service.Add(r.Context(), middleware.UserPhone(r.Context()), req.ProductID, req.Qty)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, cart)
}

// UpdateItem handles PATCH /cart/item/{productId}.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := pathProductID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.UpdateCartItemRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid qty", details)
		return
	}

	cart, err := h.service.UpdateQty(r.Context(), middleware.UserPhone(r.Context()), productID, req.Qty)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /cart/item/{productId}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := pathProductID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	cart, err := h.service.Remove(r.Context(), middleware.UserPhone(r.Context()), productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, cart)
}
