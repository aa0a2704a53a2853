package memory

import (
	"context"

	domproduct "example.com/storefront/internal/domain/product"
)

// ProductRepository serves a fixed, ordered catalog held in memory.
type ProductRepository struct {
	products []domproduct.Product
	byID     map[string]int
}

func NewProductRepository(products []domproduct.Product) *ProductRepository {
	r := &ProductRepository{
		products: make([]domproduct.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(r.products, products)
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return r
}

// NewSeededProductRepository returns the storefront's built-in catalog.
func NewSeededProductRepository() *ProductRepository {
	return NewProductRepository(SeedProducts())
}

func (r *ProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*domproduct.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, &p)
	}
	return out, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := r.byID[id]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}
