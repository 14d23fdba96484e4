package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/slug"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string, visibleOnly bool) (*model.Product, error) {
	args := m.Called(ctx, slug, visibleOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func newProductService(repo *MockProductRepository) ProductService {
	logger := zerolog.Nop()
	return NewProductService(repo, slug.NewAllocator(repo, logger), logger)
}

func testProduct() *model.Product {
	return &model.Product{
		ID:           uuid.New(),
		Name:         "Rose Serum",
		Slug:         "rose-serum",
		MRP:          500,
		SellingPrice: 400,
		Category:     "skincare",
		Image:        "https://cdn.example.com/rose-serum.jpg",
		Visible:      true,
		Stock:        10,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestProductService_List_PinsVisibleTrue(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("List", ctx, mock.MatchedBy(func(f model.ProductFilter) bool {
		return f.Visible != nil && *f.Visible && f.Page == 1 && f.Limit == 24
	})).Return([]model.Product{*testProduct()}, 1, nil)

	service := newProductService(mockRepo)

	page, err := service.List(ctx, model.ProductFilter{})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.TotalItems)
	mockRepo.AssertExpectations(t)
}

func TestProductService_List_ClampsLimit(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("List", ctx, mock.MatchedBy(func(f model.ProductFilter) bool {
		return f.Limit == 100
	})).Return([]model.Product{}, 0, nil)

	service := newProductService(mockRepo)

	page, err := service.List(ctx, model.ProductFilter{Limit: 500})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	mockRepo.AssertExpectations(t)
}

func TestProductService_AdminList_DoesNotPinVisibility(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("List", ctx, mock.MatchedBy(func(f model.ProductFilter) bool {
		return f.Visible == nil
	})).Return([]model.Product{}, 0, nil)

	service := newProductService(mockRepo)

	_, err := service.AdminList(ctx, model.ProductFilter{})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetBySlug_NotFound(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetBySlug", ctx, "missing", true).Return(nil, nil)

	service := newProductService(mockRepo)

	product, err := service.GetBySlug(ctx, "missing")

	assert.Nil(t, product)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Create_AllocatesSlug(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("SlugExists", ctx, "rose-serum").Return(false, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	service := newProductService(mockRepo)

	product, err := service.Create(ctx, &model.ProductCreateRequest{
		Name:         "Rose Serum",
		MRP:          500,
		SellingPrice: 400,
		Category:     "skincare",
		Image:        "https://cdn.example.com/rose-serum.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, "rose-serum", product.Slug)
	assert.True(t, product.Visible)
	assert.NotEqual(t, uuid.Nil, product.ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Create_SuffixesTakenSlug(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("SlugExists", ctx, "rose-serum").Return(true, nil)
	mockRepo.On("SlugExists", ctx, "rose-serum-1").Return(false, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	service := newProductService(mockRepo)

	product, err := service.Create(ctx, &model.ProductCreateRequest{
		Name:         "Rose Serum",
		MRP:          500,
		SellingPrice: 400,
		Category:     "skincare",
		Image:        "https://cdn.example.com/rose-serum.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, "rose-serum-1", product.Slug)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Create_ExplicitSlugIsAllocationBase(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("SlugExists", ctx, "custom-slug").Return(false, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	service := newProductService(mockRepo)

	product, err := service.Create(ctx, &model.ProductCreateRequest{
		Name:         "Rose Serum",
		Slug:         "Custom Slug",
		MRP:          500,
		SellingPrice: 400,
		Category:     "skincare",
		Image:        "https://cdn.example.com/rose-serum.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, "custom-slug", product.Slug)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Create_RejectsPriceAboveMRP(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	product, err := service.Create(ctx, &model.ProductCreateRequest{
		Name:         "Rose Serum",
		MRP:          400,
		SellingPrice: 500,
		Category:     "skincare",
		Image:        "https://cdn.example.com/rose-serum.jpg",
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, model.ErrPriceAboveMRP)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_Patch_MergesFields(t *testing.T) {
	ctx := context.Background()
	existing := testProduct()

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
	mockRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	service := newProductService(mockRepo)

	newPrice := 350.0
	hidden := false
	product, err := service.Patch(ctx, existing.ID, &model.ProductPatchRequest{
		SellingPrice: &newPrice,
		Visible:      &hidden,
	}, false)

	require.NoError(t, err)
	assert.Equal(t, 350.0, product.SellingPrice)
	assert.False(t, product.Visible)
	// Untouched fields keep their values and the slug never changes without regen.
	assert.Equal(t, "Rose Serum", product.Name)
	assert.Equal(t, "rose-serum", product.Slug)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Patch_RejectsPriceAboveMRPWhenBothSent(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	mrp := 400.0
	price := 500.0
	product, err := service.Patch(ctx, uuid.New(), &model.ProductPatchRequest{
		MRP:          &mrp,
		SellingPrice: &price,
	}, false)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, model.ErrPriceAboveMRP)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestProductService_Patch_RegenSlugRequiresNewName(t *testing.T) {
	ctx := context.Background()
	existing := testProduct()

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
	mockRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	service := newProductService(mockRepo)

	newPrice := 350.0
	product, err := service.Patch(ctx, existing.ID, &model.ProductPatchRequest{
		SellingPrice: &newPrice,
	}, true)

	require.NoError(t, err)
	assert.Equal(t, "rose-serum", product.Slug)
	mockRepo.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything)
}

func TestProductService_Patch_RegenSlugWithNewName(t *testing.T) {
	ctx := context.Background()
	existing := testProduct()

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
	mockRepo.On("SlugExists", ctx, "vitamin-c-serum").Return(false, nil)
	mockRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	service := newProductService(mockRepo)

	newName := "Vitamin C Serum"
	product, err := service.Patch(ctx, existing.ID, &model.ProductPatchRequest{
		Name: &newName,
	}, true)

	require.NoError(t, err)
	assert.Equal(t, "Vitamin C Serum", product.Name)
	assert.Equal(t, "vitamin-c-serum", product.Slug)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Patch_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetByID", ctx, id).Return(nil, nil)

	service := newProductService(mockRepo)

	product, err := service.Patch(ctx, id, &model.ProductPatchRequest{}, false)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockRepo := new(MockProductRepository)
	mockRepo.On("Delete", ctx, id).Return(true, nil)

	service := newProductService(mockRepo)

	require.NoError(t, service.Delete(ctx, id))
	mockRepo.AssertExpectations(t)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockRepo := new(MockProductRepository)
	mockRepo.On("Delete", ctx, id).Return(false, nil)

	service := newProductService(mockRepo)

	err := service.Delete(ctx, id)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_List_RepositoryError(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("List", ctx, mock.AnythingOfType("model.ProductFilter")).
		Return(nil, 0, errors.New("database error"))

	service := newProductService(mockRepo)

	page, err := service.List(ctx, model.ProductFilter{})

	assert.Nil(t, page)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
