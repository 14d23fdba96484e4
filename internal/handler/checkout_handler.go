package handler

import (
	"net/http"

	"github.com/Tilak630Devi/shop-webpage/internal/middleware"
	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles cart checkout and buy-now.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// CheckoutCart handles POST /cart/checkout.
func (h *CheckoutHandler) CheckoutCart(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CheckoutCart(r.Context(), middleware.UserPhone(r.Context()))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, result)
}

// BuyNow handles POST /checkout/now.
func (h *CheckoutHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid request", details)
		return
	}

	result, err := h.service.BuyNow(r.Context(), middleware.UserPhone(r.Context()), req.ProductID, req.Qty)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, result)
}
