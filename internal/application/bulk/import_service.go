package bulk

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appcatalog "github.com/pos/backend/internal/application/catalog"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ImportService reconciles a tabular batch against the catalog.
// Rows run sequentially, categories strictly before products, and every row
// failure is downgraded to a report entry; the batch never aborts early.
// Each row's check-then-insert runs in its own transaction, like the
// mutation services.
type ImportService struct {
	scope appcatalog.TransactionScope
}

// NewImportService creates a new ImportService
func NewImportService(scope appcatalog.TransactionScope) *ImportService {
	return &ImportService{scope: scope}
}

// Import applies the batch and returns the per-kind report.
// The only non-nil error is context cancellation.
func (s *ImportService) Import(ctx context.Context, req ImportRequest) (*ImportReport, error) {
	report := &ImportReport{
		Categories: KindReport{Errors: []string{}},
		Products:   KindReport{Errors: []string{}},
	}

	for i, row := range req.Categories {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		err := s.scope.Execute(ctx, func(repos appcatalog.TransactionalRepositories) error {
			s.importCategoryRow(ctx, i, row, repos.CategoryRepo(), &report.Categories)
			return nil
		})
		if err != nil {
			report.Categories.Errors = append(report.Categories.Errors, fmt.Sprintf("row %d: %v", i+1, err))
		}
	}

	for i, row := range req.Products {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		err := s.scope.Execute(ctx, func(repos appcatalog.TransactionalRepositories) error {
			s.importProductRow(ctx, i, row, repos, &report.Products)
			return nil
		})
		if err != nil {
			report.Products.Errors = append(report.Products.Errors, fmt.Sprintf("row %d: %v", i+1, err))
		}
	}

	return report, nil
}

// importCategoryRow creates one category. A blank name is an error; an
// existing name (case-insensitive) is a silent skip.
func (s *ImportService) importCategoryRow(ctx context.Context, index int, row CategoryRow, categoryRepo catalog.CategoryRepository, report *KindReport) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		report.Errors = append(report.Errors, fmt.Sprintf("row %d: name required", index+1))
		return
	}

	_, err := categoryRepo.FindByName(ctx, name)
	if err == nil {
		report.Skipped++
		return
	}
	if !errors.Is(err, shared.ErrNotFound) {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
		return
	}

	category, err := catalog.NewCategory(name)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
		return
	}
	if err := categoryRepo.Save(ctx, category); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
		return
	}
	report.Success++
}

// importProductRow validates and inserts one product, short-circuiting on
// the first failed check. Barcodes are taken verbatim; a blank barcode stays
// blank, import never generates one.
func (s *ImportService) importProductRow(ctx context.Context, index int, row ProductRow, repos appcatalog.TransactionalRepositories, report *KindReport) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		report.Errors = append(report.Errors, fmt.Sprintf("row %d: name required", index+1))
		return
	}

	retailPrice, err := parsePrice(row.RetailPrice)
	if err != nil || retailPrice == nil {
		report.Errors = append(report.Errors, fmt.Sprintf("invalid retail price for %s", name))
		return
	}

	categoryName := strings.TrimSpace(row.CategoryName)
	if categoryName == "" {
		report.Errors = append(report.Errors, fmt.Sprintf("category required for %s", name))
		return
	}

	category, err := repos.CategoryRepo().FindByName(ctx, categoryName)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			report.Errors = append(report.Errors, fmt.Sprintf("category %s does not exist for %s", categoryName, name))
		} else {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
		}
		return
	}

	wholesalePrice, err := parsePrice(row.WholesalePrice)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("invalid wholesale price for %s", name))
		return
	}

	existing, err := repos.ProductRepo().FindByName(ctx, name)
	if err == nil {
		// re-importing an unchanged export is a no-op, only a genuinely
		// different product under the same name is a conflict
		if rowMatchesProduct(existing, name, row.Barcode, *retailPrice, wholesalePrice, categoryName) {
			report.Skipped++
		} else {
			report.Errors = append(report.Errors, fmt.Sprintf("%s already exists", name))
		}
		return
	}
	if !errors.Is(err, shared.ErrNotFound) {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
		return
	}

	product, err := catalog.NewProduct(catalog.ProductFields{
		Name:           name,
		Barcode:        row.Barcode,
		RetailPrice:    *retailPrice,
		WholesalePrice: wholesalePrice,
		CategoryID:     category.ID,
	})
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
		return
	}
	if err := repos.ProductRepo().Save(ctx, product); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
		return
	}
	report.Success++
}

// parsePrice parses a spreadsheet price cell. A blank cell parses to nil;
// a non-numeric cell is an error.
func parsePrice(value string) (*decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// rowMatchesProduct reports whether the row describes the existing product
// field for field
func rowMatchesProduct(existing *catalog.Product, name, barcode string, retail decimal.Decimal, wholesale *decimal.Decimal, categoryName string) bool {
	if !strings.EqualFold(existing.Name, name) {
		return false
	}
	if existing.BarcodeValue() != strings.TrimSpace(barcode) {
		return false
	}
	if !existing.RetailPrice.Equal(retail) {
		return false
	}
	if (existing.WholesalePrice == nil) != (wholesale == nil) {
		return false
	}
	if wholesale != nil && !existing.WholesalePrice.Equal(*wholesale) {
		return false
	}
	return strings.EqualFold(existing.CategoryName(), categoryName)
}
