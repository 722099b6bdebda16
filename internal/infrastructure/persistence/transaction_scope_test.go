package persistence

import (
	"context"
	"errors"
	"testing"

	appcatalog "github.com/pos/backend/internal/application/catalog"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	err := scope.Execute(ctx, func(repos appcatalog.TransactionalRepositories) error {
		category, err := catalog.NewCategory("Drinks")
		if err != nil {
			return err
		}
		return repos.CategoryRepo().Save(ctx, category)
	})
	require.NoError(t, err)

	found, err := NewGormCategoryRepository(db).FindByName(ctx, "Drinks")
	require.NoError(t, err)
	assert.Equal(t, "Drinks", found.Name)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := scope.Execute(ctx, func(repos appcatalog.TransactionalRepositories) error {
		category, newErr := catalog.NewCategory("Drinks")
		if newErr != nil {
			return newErr
		}
		if saveErr := repos.CategoryRepo().Save(ctx, category); saveErr != nil {
			return saveErr
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewGormCategoryRepository(db).FindByName(ctx, "Drinks")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
