package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/storefront/internal/domain/product"
)

type mockProductRepository struct {
	products []*domproduct.Product
	listErr  error
}

func (m *mockProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domproduct.Product, 0, len(m.products))
	for _, p := range m.products {
		cloned := *p
		out = append(out, &cloned)
	}
	return out, nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			cloned := *p
			return &cloned, nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func newRepoWithProducts() *mockProductRepository {
	return &mockProductRepository{
		products: []*domproduct.Product{
			{ID: "1", Name: "Wireless Headphones", Price: 2499},
			{ID: "2", Name: "Smart Watch", Price: 3499},
		},
	}
}

func TestList_ReturnsCatalogInOrder(t *testing.T) {
	svc := NewService(newRepoWithProducts())

	products, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "1", products[0].ID)
	require.Equal(t, "2", products[1].ID)
}

func TestGetByID_Found(t *testing.T) {
	svc := NewService(newRepoWithProducts())

	p, err := svc.GetByID(context.Background(), "2")

	require.NoError(t, err)
	require.Equal(t, "Smart Watch", p.Name)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newRepoWithProducts())

	_, err := svc.GetByID(context.Background(), "42")

	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestCount(t *testing.T) {
	svc := NewService(newRepoWithProducts())

	n, err := svc.Count(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestCount_RepositoryError(t *testing.T) {
	repo := newRepoWithProducts()
	repo.listErr = errors.New("boom")
	svc := NewService(repo)

	_, err := svc.Count(context.Background())

	require.EqualError(t, err, "boom")
}
