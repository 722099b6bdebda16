package catalog

import "context"

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindByName finds a category by case-insensitive name match
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindAll returns all categories ordered by name
	FindAll(ctx context.Context) ([]Category, error)

	// ExistsByName checks for a case-insensitive name collision,
	// ignoring the category with excludeID (0 means exclude nothing)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uint) error
}
