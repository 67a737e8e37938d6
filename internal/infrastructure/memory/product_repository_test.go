package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-stats/internal/domain/entity"
	"github.com/jhoicas/product-stats/internal/infrastructure/memory"
)

func TestNewCatalogRepository_Contenido(t *testing.T) {
	repo, err := memory.NewCatalogRepository()
	require.NoError(t, err)

	products, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 20)

	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, "Lamp", products[19].Name)

	perCategory := map[string]int{}
	sum := decimal.Zero
	for _, p := range products {
		perCategory[p.Category]++
		sum = sum.Add(p.Price)
	}
	assert.Equal(t, map[string]int{"Electronics": 5, "Clothing": 5, "Books": 5, "Home": 5}, perCategory)
	assert.True(t, sum.Equal(decimal.RequireFromString("7599.80")), "suma de precios: %s", sum)
}

// TestListAll_Copia verifica que mutar el resultado no altera el catálogo.
func TestListAll_Copia(t *testing.T) {
	repo, err := memory.NewCatalogRepository()
	require.NoError(t, err)
	ctx := context.Background()

	first, err := repo.ListAll(ctx)
	require.NoError(t, err)
	first[0].Name = "mutado"

	second, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", second[0].Name)
}

func TestListAll_ContextoCancelado(t *testing.T) {
	repo := memory.NewProductRepository([]entity.Product{{Name: "x", Category: "y"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewProductRepository_Vacio(t *testing.T) {
	repo := memory.NewProductRepository(nil)
	products, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}
