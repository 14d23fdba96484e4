package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	path := writeSeedFile(t, `[
		{"name": "Rose Serum", "mrp": 500, "sellingPrice": 400, "category": "skincare", "image": "rose.jpg", "stock": 10},
		{"name": "Aloe Gel", "mrp": 300, "sellingPrice": 250, "category": "skincare", "image": "aloe.jpg", "visible": false, "stock": 5, "description": "Soothing gel"}
	]`)

	loader := NewFileLoader(zerolog.Nop())

	products, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Rose Serum", products[0].Name)
	assert.Equal(t, 400.0, products[0].SellingPrice)
	assert.Nil(t, products[0].Visible)
	require.NotNil(t, products[1].Visible)
	assert.False(t, *products[1].Visible)
	assert.Equal(t, "Soothing gel", products[1].Description)
}

func TestFileLoader_Load_MissingFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	products, err := loader.Load(context.Background(), "/nonexistent/products.json")

	assert.Nil(t, products)
	assert.Error(t, err)
}

func TestFileLoader_Load_MalformedJSON(t *testing.T) {
	path := writeSeedFile(t, `{"not": "an array"}`)

	loader := NewFileLoader(zerolog.Nop())

	products, err := loader.Load(context.Background(), path)

	assert.Nil(t, products)
	assert.Error(t, err)
}

func TestProductSeed_CreateRequest(t *testing.T) {
	hidden := false
	entry := ProductSeed{
		Name:         "Rose Serum",
		MRP:          500,
		SellingPrice: 400,
		Category:     "skincare",
		Image:        "rose.jpg",
		Visible:      &hidden,
		Stock:        10,
		Description:  "Hydrating serum",
	}

	req := entry.CreateRequest()

	assert.Equal(t, "Rose Serum", req.Name)
	assert.Equal(t, 500.0, req.MRP)
	assert.Equal(t, 400.0, req.SellingPrice)
	require.NotNil(t, req.Visible)
	assert.False(t, *req.Visible)
}
