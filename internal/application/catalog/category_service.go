package catalog

import (
	"context"
	"fmt"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	scope        TransactionScope
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	scope TransactionScope,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		scope:        scope,
	}
}

// Create creates a new category with a case-insensitively unique name
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.CategoryRepo().ExistsByName(ctx, category.Name, 0)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError("ALREADY_EXISTS", fmt.Sprintf("Category '%s' already exists", category.Name))
		}
		return repos.CategoryRepo().Save(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Update renames an existing category, re-validating uniqueness against
// every other category
func (s *CategoryService) Update(ctx context.Context, id uint, req UpdateCategoryRequest) (*CategoryResponse, error) {
	var category *catalog.Category

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		category, err = repos.CategoryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := category.Rename(req.Name); err != nil {
			return err
		}
		exists, err := repos.CategoryRepo().ExistsByName(ctx, category.Name, id)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError("ALREADY_EXISTS", fmt.Sprintf("Category '%s' already exists", category.Name))
		}
		return repos.CategoryRepo().Save(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Delete removes a category. Deletion is rejected while any product still
// references it; the FK restriction in storage backs this check up.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		count, err := repos.ProductRepo().CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return shared.NewDomainError("CATEGORY_IN_USE", "Category is being used by products")
		}
		return repos.CategoryRepo().Delete(ctx, id)
	})
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uint) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// List retrieves all categories ordered by name
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// NameExists reports whether another category already uses the name
// (case-insensitive); excludeID lets a category keep its own name
func (s *CategoryService) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	return s.categoryRepo.ExistsByName(ctx, name, excludeID)
}
