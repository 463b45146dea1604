package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
)

func TestRepository_FlushThenLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	ds, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, ds.Products())

	ds.PutProduct(&domain.Product{ID: "P1", Name: "Widget", Stock: 5})
	require.NoError(t, repo.Flush(ctx, ds))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	product, ok := loaded.Product("P1")
	require.True(t, ok)
	assert.Equal(t, 5, product.Stock)

	// Mutating a loaded dataset must not leak back into the repository.
	product.Stock = 99
	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	stored, _ := reloaded.Product("P1")
	assert.Equal(t, 5, stored.Stock)
}

func TestRepository_FlushRejectsNil(t *testing.T) {
	repo := NewRepository()
	require.Error(t, repo.Flush(context.Background(), nil))
}
