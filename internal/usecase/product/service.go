package product

import (
	"context"

	dom "example.com/storefront/internal/domain/product"
)

// Service exposes the read-only catalog.
type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*dom.Product, error) {
	return s.repo.List(ctx)
}

// Count returns the catalog size shown on the welcome screen.
func (s *Service) Count(ctx context.Context) (int, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(products), nil
}
