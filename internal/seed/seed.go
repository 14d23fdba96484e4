// Package seed imports catalogue products in bulk from a JSON document,
// loaded either from the local file system or from S3.
package seed

import (
	"context"

	"github.com/Tilak630Devi/shop-webpage/internal/model"
)

// ProductSeed is one entry of a catalogue seed document.
type ProductSeed struct {
	Name         string  `json:"name"`
	MRP          float64 `json:"mrp"`
	SellingPrice float64 `json:"sellingPrice"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	Visible      *bool   `json:"visible"`
	Stock        int     `json:"stock"`
	Description  string  `json:"description"`
}

// CreateRequest converts a seed entry into the catalogue create command.
func (p ProductSeed) CreateRequest() *model.ProductCreateRequest {
	return &model.ProductCreateRequest{
		Name:         p.Name,
		MRP:          p.MRP,
		SellingPrice: p.SellingPrice,
		Category:     p.Category,
		Image:        p.Image,
		Visible:      p.Visible,
		Stock:        p.Stock,
		Description:  p.Description,
	}
}

// Loader defines the interface for loading seed documents.
type Loader interface {
	// Load reads a seed document and returns its product entries.
	Load(ctx context.Context, source string) ([]ProductSeed, error)
}
