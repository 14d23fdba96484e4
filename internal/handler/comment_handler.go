package handler

import (
	"net/http"

	"github.com/Tilak630Devi/shop-webpage/internal/middleware"
	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/service"

	"github.com/rs/zerolog"
)

// CommentHandler handles the public review endpoints.
type CommentHandler struct {
	service service.CommentService
	logger  zerolog.Logger
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(service service.CommentService, logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		logger:  logger.With().Str("handler", "comment").Logger(),
	}
}

// List handles GET /products/{slug}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListByProductSlug(
		r.Context(),
		r.PathValue("slug"),
		queryInt(r, "page", 1),
		queryInt(r, "limit", 10),
	)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, page)
}

// Create handles POST /products/{slug}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CommentCreateRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid comment", details)
		return
	}

	comment, err := h.service.Create(r.Context(), r.PathValue("slug"), middleware.UserPhone(r.Context()), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, comment)
}
