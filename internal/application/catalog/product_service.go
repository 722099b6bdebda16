package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
)

// maxBarcodeAttempts bounds barcode regeneration when generated codes
// collide with existing ones
const maxBarcodeAttempts = 5

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	scope        TransactionScope
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	scope TransactionScope,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		scope:        scope,
	}
}

// Create creates a new product. When no barcode is supplied an EAN-13 code
// is generated; generation is retried a bounded number of times on collision.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	// a pointer keeps "no price" distinguishable from a legitimate 0
	if req.RetailPrice == nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Retail price is required")
	}

	product, err := catalog.NewProduct(toProductFields(
		req.Name, req.Barcode, *req.RetailPrice, req.WholesalePrice,
		req.WholesaleQty, req.WholesaleUnit, req.CategoryID,
	))
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		category, err := s.checkReferences(ctx, repos, product, 0)
		if err != nil {
			return err
		}

		if !product.HasBarcode() {
			barcode, err := s.generateUniqueBarcode(ctx, repos)
			if err != nil {
				return err
			}
			product.SetBarcode(barcode)
		}

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		product.Category = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Update replaces all mutable fields of an existing product; uniqueness
// checks exclude the product itself. CreatedAt is never changed.
func (s *ProductService) Update(ctx context.Context, id uint, req UpdateProductRequest) (*ProductResponse, error) {
	if req.RetailPrice == nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Retail price is required")
	}

	var product *catalog.Product

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		product, err = repos.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := product.Apply(toProductFields(
			req.Name, req.Barcode, *req.RetailPrice, req.WholesalePrice,
			req.WholesaleQty, req.WholesaleUnit, req.CategoryID,
		)); err != nil {
			return err
		}
		category, err := s.checkReferences(ctx, repos, product, id)
		if err != nil {
			return err
		}
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		product.Category = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Delete removes a product unconditionally; products have no dependents
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.ProductRepo().Delete(ctx, id)
	})
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uint) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByBarcode retrieves a product by exact barcode
func (s *ProductService) GetByBarcode(ctx context.Context, barcode string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List retrieves all products with their category names
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Search matches products by name, barcode or category name
func (s *ProductService) Search(ctx context.Context, term string, limit int) ([]ProductResponse, error) {
	if term == "" {
		return []ProductResponse{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	products, err := s.productRepo.Search(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// NameExists reports whether another product already uses the name
func (s *ProductService) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	return s.productRepo.ExistsByName(ctx, name, excludeID)
}

// BarcodeExists reports whether another product already uses the barcode
func (s *ProductService) BarcodeExists(ctx context.Context, barcode string, excludeID uint) (bool, error) {
	return s.productRepo.ExistsByBarcode(ctx, barcode, excludeID)
}

// checkReferences validates the category reference and the name/barcode
// uniqueness rules for product, excluding excludeID from the checks.
// The resolved category is returned so callers can attach it for responses.
func (s *ProductService) checkReferences(ctx context.Context, repos TransactionalRepositories, product *catalog.Product, excludeID uint) (*catalog.Category, error) {
	category, err := repos.CategoryRepo().FindByID(ctx, product.CategoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category does not exist")
		}
		return nil, err
	}

	nameTaken, err := repos.ProductRepo().ExistsByName(ctx, product.Name, excludeID)
	if err != nil {
		return nil, err
	}
	if nameTaken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", fmt.Sprintf("Product '%s' already exists", product.Name))
	}

	if product.HasBarcode() {
		barcodeTaken, err := repos.ProductRepo().ExistsByBarcode(ctx, product.BarcodeValue(), excludeID)
		if err != nil {
			return nil, err
		}
		if barcodeTaken {
			return nil, shared.NewDomainError("ALREADY_EXISTS", fmt.Sprintf("Barcode '%s' already exists", product.BarcodeValue()))
		}
	}

	return category, nil
}

// generateUniqueBarcode generates EAN-13 codes until one does not collide,
// giving up after maxBarcodeAttempts
func (s *ProductService) generateUniqueBarcode(ctx context.Context, repos TransactionalRepositories) (string, error) {
	for attempt := 0; attempt < maxBarcodeAttempts; attempt++ {
		barcode := catalog.GenerateBarcode()
		taken, err := repos.ProductRepo().ExistsByBarcode(ctx, barcode, 0)
		if err != nil {
			return "", err
		}
		if !taken {
			return barcode, nil
		}
	}
	return "", shared.NewDomainError("BARCODE_EXHAUSTED", "Could not generate a unique barcode, please retry")
}
