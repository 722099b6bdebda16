package catalog

import (
	"time"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a new category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateCategoryRequest represents a request to rename a category
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CreateProductRequest represents a request to create a new product.
// A blank barcode means "generate one".
type CreateProductRequest struct {
	Name           string           `json:"name" binding:"required,max=200"`
	Barcode        string           `json:"barcode" binding:"max=50"`
	RetailPrice    *decimal.Decimal `json:"retail_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	WholesaleQty   *int             `json:"wholesale_qty"`
	WholesaleUnit  string           `json:"wholesale_unit" binding:"max=20"`
	CategoryID     uint             `json:"category_id" binding:"required"`
}

// UpdateProductRequest represents a request to update a product.
// All mutable fields are replaced; a blank barcode clears it.
type UpdateProductRequest struct {
	Name           string           `json:"name" binding:"required,max=200"`
	Barcode        string           `json:"barcode" binding:"max=50"`
	RetailPrice    *decimal.Decimal `json:"retail_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	WholesaleQty   *int             `json:"wholesale_qty"`
	WholesaleUnit  string           `json:"wholesale_unit" binding:"max=20"`
	CategoryID     uint             `json:"category_id" binding:"required"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             uint             `json:"id"`
	Name           string           `json:"name"`
	Barcode        string           `json:"barcode"`
	RetailPrice    decimal.Decimal  `json:"retail_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price,omitempty"`
	WholesaleQty   *int             `json:"wholesale_qty,omitempty"`
	WholesaleUnit  string           `json:"wholesale_unit,omitempty"`
	CategoryID     uint             `json:"category_id"`
	CategoryName   string           `json:"category_name"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

// ToCategoryResponses converts a slice of domain Categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = *ToCategoryResponse(&c)
	}
	return responses
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Barcode:        p.BarcodeValue(),
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		WholesaleQty:   p.WholesaleQty,
		WholesaleUnit:  p.WholesaleUnit,
		CategoryID:     p.CategoryID,
		CategoryName:   p.CategoryName(),
		CreatedAt:      p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = *ToProductResponse(&p)
	}
	return responses
}

// toProductFields maps a create/update request onto domain fields
func toProductFields(name, barcode string, retail decimal.Decimal, wholesale *decimal.Decimal, qty *int, unit string, categoryID uint) catalog.ProductFields {
	return catalog.ProductFields{
		Name:           name,
		Barcode:        barcode,
		RetailPrice:    retail,
		WholesalePrice: wholesale,
		WholesaleQty:   qty,
		WholesaleUnit:  unit,
		CategoryID:     categoryID,
	}
}
