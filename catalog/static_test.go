package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"goflare.io/storefront/models"
)

func TestStaticList(t *testing.T) {
	repo := NewStatic(SampleProducts())

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 5)

	// Listing order follows the seed order.
	require.Equal(t, models.ProductID("1"), products[0].ID)
	require.Equal(t, models.ProductID("5"), products[4].ID)
}

func TestStaticGetByID(t *testing.T) {
	repo := NewStatic(SampleProducts())

	product, err := repo.GetByID(context.Background(), "3")
	require.NoError(t, err)
	require.Equal(t, "Galaxy Watch6 Classic", product.Name)
	require.NotNil(t, product.Stock)
	require.Equal(t, 75, *product.Stock)
}

func TestStaticGetByIDNotFound(t *testing.T) {
	repo := NewStatic(SampleProducts())

	_, err := repo.GetByID(context.Background(), "999")
	require.True(t, errors.Is(err, ErrProductNotFound))
}

func TestStaticReturnsCopies(t *testing.T) {
	repo := NewStatic(SampleProducts())
	ctx := context.Background()

	product, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	product.Price = 1.0

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.InDelta(t, 1199.99, again.Price, 0.001)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	products[0].Name = "mutated"

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Galaxy S23 Ultra", fresh[0].Name)
}
