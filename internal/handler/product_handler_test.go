package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductPage), args.Error(1)
}

func (m *MockProductService) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) AdminList(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductPage), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductCreateRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Patch(ctx context.Context, id uuid.UUID, req *model.ProductPatchRequest, regenSlug bool) (*model.Product, error) {
	args := m.Called(ctx, id, req, regenSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) model.APIResponse {
	t.Helper()

	var envelope model.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestProductHandler_List(t *testing.T) {
	page := &model.ProductPage{
		Items:      []model.Product{{ID: uuid.New(), Name: "Rose Serum", Slug: "rose-serum"}},
		Page:       1,
		TotalPages: 1,
		TotalItems: 1,
	}

	mockService := new(MockProductService)
	mockService.On("List", mock.Anything, mock.MatchedBy(func(f model.ProductFilter) bool {
		return f.Query == "serum" && f.Category == "skincare" && f.Sort == "price_asc" && f.Page == 2 && f.Limit == 12
	})).Return(page, nil)

	handler := NewProductHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/products?q=serum&category=skincare&sort=price_asc&page=2&limit=12", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.OK)
	assert.Nil(t, envelope.Error)
	mockService.AssertExpectations(t)
}

func TestProductHandler_List_ServiceError(t *testing.T) {
	mockService := new(MockProductService)
	mockService.On("List", mock.Anything, mock.AnythingOfType("model.ProductFilter")).
		Return(nil, errors.New("database error"))

	handler := NewProductHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.OK)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, model.ErrCodeServerError, envelope.Error.Code)
	// Internal detail never leaks into the message.
	assert.Equal(t, "Something went wrong", envelope.Error.Message)
}

func TestProductHandler_GetBySlug(t *testing.T) {
	product := &model.Product{ID: uuid.New(), Name: "Rose Serum", Slug: "rose-serum", Visible: true}

	mockService := new(MockProductService)
	mockService.On("GetBySlug", mock.Anything, "rose-serum").Return(product, nil)

	handler := NewProductHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/products/rose-serum", nil)
	req.SetPathValue("slug", "rose-serum")
	rec := httptest.NewRecorder()

	handler.GetBySlug(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.OK)
	mockService.AssertExpectations(t)
}

func TestProductHandler_GetBySlug_NotFound(t *testing.T) {
	mockService := new(MockProductService)
	mockService.On("GetBySlug", mock.Anything, "missing").Return(nil, model.ErrProductNotFound)

	handler := NewProductHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	req.SetPathValue("slug", "missing")
	rec := httptest.NewRecorder()

	handler.GetBySlug(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.OK)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, model.ErrCodeNotFound, envelope.Error.Code)
}
