package handler

import (
	"net/http"

	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminHandler handles the back-office catalogue and moderation endpoints.
type AdminHandler struct {
	products service.ProductService
	comments service.CommentService
	logger   zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(products service.ProductService, comments service.CommentService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		products: products,
		comments: comments,
		logger:   logger.With().Str("handler", "admin").Logger(),
	}
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Invalid id")
	}
	return id, nil
}

// ListProducts handles GET /admin/products. Hidden products are included
// unless the visible query parameter narrows the listing.
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r, 20)
	switch r.URL.Query().Get("visible") {
	case "true":
		visible := true
		filter.Visible = &visible
	case "false":
		visible := false
		filter.Visible = &visible
	}

	page, err := h.products.AdminList(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, page)
}

// CreateProduct handles POST /admin/products.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductCreateRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid product", details)
		return
	}

	product, err := h.products.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, product)
}

// PatchProduct handles PATCH /admin/products/{id}. The slug is regenerated
// only when ?regenSlug=1 accompanies a new name.
func (h *AdminHandler) PatchProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.ProductPatchRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid fields", details)
		return
	}

	regenSlug := r.URL.Query().Get("regenSlug") == "1"

	product, err := h.products.Patch(r.Context(), id, &req, regenSlug)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/{id}.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

// PatchComment handles PATCH /admin/comments/{id}.
func (h *AdminHandler) PatchComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.CommentPatchRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid fields", details)
		return
	}

	comment, err := h.comments.Moderate(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, comment)
}

// DeleteComment handles DELETE /admin/comments/{id}.
func (h *AdminHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}
