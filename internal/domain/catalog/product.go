package catalog

import (
	"strings"
	"time"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the catalog.
// The barcode is optional; when present it is unique exactly as stored
// (no case normalization). A nil barcode means "no barcode".
type Product struct {
	ID             uint             `gorm:"primaryKey;autoIncrement"`
	Name           string           `gorm:"type:text;not null"`
	Barcode        *string          `gorm:"type:text;unique"`
	RetailPrice    decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	WholesalePrice *decimal.Decimal `gorm:"type:decimal(18,2)"`
	WholesaleQty   *int             `gorm:""`
	WholesaleUnit  string           `gorm:"type:text"`
	CategoryID     uint             `gorm:"not null;index"`
	Category       *Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	CreatedAt      time.Time        `gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductFields carries the mutable attributes of a product
type ProductFields struct {
	Name           string
	Barcode        string
	RetailPrice    decimal.Decimal
	WholesalePrice *decimal.Decimal
	WholesaleQty   *int
	WholesaleUnit  string
	CategoryID     uint
}

// NewProduct creates a new product from validated fields.
// The caller is responsible for uniqueness checks and barcode generation.
func NewProduct(fields ProductFields) (*Product, error) {
	p := &Product{}
	if err := p.Apply(fields); err != nil {
		return nil, err
	}
	return p, nil
}

// Apply validates the fields and applies them to the product.
// CreatedAt and ID are never touched.
func (p *Product) Apply(fields ProductFields) error {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot exceed 200 characters")
	}
	if fields.RetailPrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Retail price cannot be negative")
	}
	if fields.WholesalePrice != nil && fields.WholesalePrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Wholesale price cannot be negative")
	}
	if fields.CategoryID == 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Category is required")
	}

	p.Name = name
	p.RetailPrice = fields.RetailPrice
	p.WholesalePrice = fields.WholesalePrice
	p.WholesaleQty = fields.WholesaleQty
	p.WholesaleUnit = strings.TrimSpace(fields.WholesaleUnit)
	p.CategoryID = fields.CategoryID
	p.Category = nil
	p.SetBarcode(fields.Barcode)

	return nil
}

// SetBarcode sets the barcode; a blank value clears it
func (p *Product) SetBarcode(barcode string) {
	trimmed := strings.TrimSpace(barcode)
	if trimmed == "" {
		p.Barcode = nil
		return
	}
	p.Barcode = &trimmed
}

// BarcodeValue returns the barcode or "" when the product has none
func (p *Product) BarcodeValue() string {
	if p.Barcode == nil {
		return ""
	}
	return *p.Barcode
}

// HasBarcode returns true if the product carries a barcode
func (p *Product) HasBarcode() bool {
	return p.Barcode != nil && *p.Barcode != ""
}

// CategoryName returns the joined category name when loaded
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
