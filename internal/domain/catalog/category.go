package catalog

import (
	"strings"

	"github.com/pos/backend/internal/domain/shared"
)

// Category represents a product category in the catalog.
// Names are unique case-insensitively but stored with their original casing.
type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:text collate nocase;not null;unique"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category with a trimmed, validated name
func NewCategory(name string) (*Category, error) {
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}

	return &Category{Name: trimmed}, nil
}

// Rename changes the category name, keeping the same validation rules
func (c *Category) Rename(name string) error {
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return err
	}

	c.Name = trimmed
	return nil
}

// validateCategoryName trims the name and validates it
func validateCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Category name cannot be empty")
	}
	if len(trimmed) > 100 {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Category name cannot exceed 100 characters")
	}
	return trimmed, nil
}
