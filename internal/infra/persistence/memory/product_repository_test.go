package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/storefront/internal/domain/product"
)

func TestProductRepository_ListKeepsSeedOrder(t *testing.T) {
	repo := NewSeededProductRepository()

	products, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 4)
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"1", "2", "3", "4"}, ids)
	require.Equal(t, int64(2499), products[0].Price)
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := NewSeededProductRepository()

	p, err := repo.GetByID(context.Background(), "3")

	require.NoError(t, err)
	require.Equal(t, "Gaming Mouse", p.Name)
	require.Equal(t, int64(1599), p.Price)
	require.Equal(t, "Accessories", p.Category)
	require.InDelta(t, 4.7, p.Rating, 0.0001)
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	repo := NewSeededProductRepository()

	p, err := repo.GetByID(context.Background(), "99")

	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
	require.Nil(t, p)
}

func TestProductRepository_ReturnsCopies(t *testing.T) {
	repo := NewSeededProductRepository()

	p, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	p.Price = 1
	p.Name = "mutated"

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	list[1].Price = 2

	again, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, int64(2499), again.Price)
	require.Equal(t, "Wireless Headphones", again.Name)

	second, err := repo.GetByID(context.Background(), "2")
	require.NoError(t, err)
	require.Equal(t, int64(3499), second.Price)
}

func TestProductRepository_CanceledContext(t *testing.T) {
	repo := NewSeededProductRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	require.ErrorIs(t, err, context.Canceled)

	_, err = repo.GetByID(ctx, "1")
	require.ErrorIs(t, err, context.Canceled)
}
