package catalog

import "context"

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uint) (*Product, error)

	// FindByBarcode finds a product by exact barcode match
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// FindByName finds a product by case-insensitive name match,
	// with its category loaded
	FindByName(ctx context.Context, name string) (*Product, error)

	// FindAll returns all products with their category loaded, ordered by name
	FindAll(ctx context.Context) ([]Product, error)

	// Search matches products by name, barcode or category name
	// (case-insensitive substring); name-prefix and exact-barcode hits
	// rank before the rest
	Search(ctx context.Context, term string, limit int) ([]Product, error)

	// ExistsByName checks for a case-insensitive name collision,
	// ignoring the product with excludeID (0 means exclude nothing)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)

	// ExistsByBarcode checks for an exact barcode collision, ignoring the
	// product with excludeID; a blank barcode never exists
	ExistsByBarcode(ctx context.Context, barcode string, excludeID uint) (bool, error)

	// CountByCategory counts products referencing the category
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uint) error
}
