package bulk

import (
	"context"

	"github.com/pos/backend/internal/domain/catalog"
)

// ExportService projects the catalog into the tabular exchange shape.
// The output is field-for-field symmetric with what ImportService consumes,
// so an exported catalog re-imports as a clean no-op.
type ExportService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
}

// NewExportService creates a new ExportService
func NewExportService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
) *ExportService {
	return &ExportService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Export reads all categories alphabetically and all products joined with
// their category names
func (s *ExportService) Export(ctx context.Context) (*ExportData, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		Categories: make([]CategoryRow, len(categories)),
		Products:   make([]ProductRow, len(products)),
	}
	for i, c := range categories {
		data.Categories[i] = CategoryRow{Name: c.Name}
	}
	for i, p := range products {
		wholesale := ""
		if p.WholesalePrice != nil {
			wholesale = p.WholesalePrice.String()
		}
		data.Products[i] = ProductRow{
			Name:           p.Name,
			Barcode:        p.BarcodeValue(),
			RetailPrice:    p.RetailPrice.String(),
			WholesalePrice: wholesale,
			CategoryName:   p.CategoryName(),
		}
	}

	return data, nil
}
