package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domcart "example.com/storefront/internal/domain/cart"
	domproduct "example.com/storefront/internal/domain/product"
	"example.com/storefront/internal/domain/screen"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domproduct.Product, error)
}

// Service owns the storefront state: the focused screen and the cart. All
// mutations go through its transition methods, which are applied one at a time.
type Service struct {
	products ProductRepository
	logger   *zap.Logger

	mu      sync.Mutex
	current screen.Screen
	cart    domcart.Cart
}

func NewService(products ProductRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		products: products,
		logger:   logger,
		current:  screen.Welcome{},
	}
}

// Start focuses the welcome screen.
func (s *Service) Start() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = screen.Welcome{}
	s.logTransition("start")
	return s.snapshotLocked()
}

// ViewProducts focuses the product list and drops any selected product.
func (s *Service) ViewProducts() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = screen.Products{}
	s.logTransition("view_products")
	return s.snapshotLocked()
}

// ViewDetails focuses the detail view of the catalog product with the given id.
// The state is left untouched when the id is not in the catalog.
func (s *Service) ViewDetails(ctx context.Context, productID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.lookup(ctx, productID)
	if err != nil {
		return s.snapshotLocked(), err
	}

	s.current = screen.Details{Product: *p}
	s.logTransition("view_details", zap.String("product_id", p.ID))
	return s.snapshotLocked(), nil
}

// ViewCart focuses the cart. An empty cart is a valid destination.
func (s *Service) ViewCart() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = screen.Cart{}
	s.logTransition("view_cart")
	return s.snapshotLocked()
}

// AddToCart appends the catalog product to the cart and navigates to the cart.
// Adding always navigates; there is no way to add without leaving the current screen.
func (s *Service) AddToCart(ctx context.Context, productID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.lookup(ctx, productID)
	if err != nil {
		return s.snapshotLocked(), err
	}

	s.addLocked(*p)
	return s.snapshotLocked(), nil
}

// AddSelected adds the product shown on the current details screen.
func (s *Service) AddSelected() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := screen.Selected(s.current)
	if !ok {
		return s.snapshotLocked(), fmt.Errorf("add to cart from %s screen: %w", s.current.Name(), ErrNoProductSelected)
	}

	s.addLocked(p)
	return s.snapshotLocked(), nil
}

// ClearCart empties the cart without changing the screen.
func (s *Service) ClearCart() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.logTransition("clear_cart")
	return s.snapshotLocked()
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) Screen() screen.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

func (s *Service) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Service) addLocked(p domproduct.Product) {
	entry := s.cart.Add(p)
	s.current = screen.Cart{}
	s.logTransition("add_to_cart",
		zap.String("product_id", p.ID),
		zap.String("entry_id", entry.ID),
	)
}

func (s *Service) lookup(ctx context.Context, productID string) (*domproduct.Product, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", productID, err)
	}
	return p, nil
}

func (s *Service) snapshotLocked() Snapshot {
	return newSnapshot(s.current, s.cart)
}

func (s *Service) logTransition(op string, fields ...zap.Field) {
	fields = append(fields,
		zap.String("op", op),
		zap.String("screen", string(s.current.Name())),
		zap.Int("cart_count", s.cart.Count()),
		zap.Int64("cart_total", s.cart.Total()),
	)
	s.logger.Debug("transition", fields...)
}
