package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"example.com/storefront/internal/domain/money"
	domproduct "example.com/storefront/internal/domain/product"
	"example.com/storefront/internal/domain/screen"
	storeuc "example.com/storefront/internal/usecase/store"
)

// Catalog is the read side the product list needs.
type Catalog interface {
	List(ctx context.Context) ([]*domproduct.Product, error)
}

// Model is the Bubble Tea program state. It keeps only presentation state
// (cursor, last error); everything else is read from the store.
type Model struct {
	ctx       context.Context
	store     *storeuc.Service
	formatter *money.Formatter
	products  []domproduct.Product
	cursor    int
	err       error
}

func NewModel(ctx context.Context, store *storeuc.Service, catalog Catalog, formatter *money.Formatter) (*Model, error) {
	list, err := catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	products := make([]domproduct.Product, 0, len(list))
	for _, p := range list {
		products = append(products, *p)
	}
	if formatter == nil {
		formatter = money.Default()
	}
	return &Model{
		ctx:       ctx,
		store:     store,
		formatter: formatter,
		products:  products,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	m.store.Start()
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = nil

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		m.store.Start()
		return m, nil
	case "2":
		m.store.ViewProducts()
		return m, nil
	case "3":
		m.store.ViewCart()
		return m, nil
	}

	switch m.store.Screen().(type) {
	case screen.Welcome:
		m.updateWelcome(key)
	case screen.Products:
		m.updateProducts(key)
	case screen.Details:
		m.updateDetails(key)
	case screen.Cart:
		m.updateCart(key)
	}
	return m, nil
}

func (m *Model) updateWelcome(key tea.KeyMsg) {
	if key.String() == "enter" {
		m.store.ViewProducts()
	}
}

func (m *Model) updateProducts(key tea.KeyMsg) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.products) == 0 {
			return
		}
		_, m.err = m.store.ViewDetails(m.ctx, m.products[m.cursor].ID)
	case "c":
		m.store.ViewCart()
	}
}

func (m *Model) updateDetails(key tea.KeyMsg) {
	switch key.String() {
	case "a", "enter":
		_, m.err = m.store.AddSelected()
	case "b", "esc":
		m.store.ViewProducts()
	}
}

func (m *Model) updateCart(key tea.KeyMsg) {
	switch key.String() {
	case "x":
		m.store.ClearCart()
	case "b", "esc":
		m.store.ViewProducts()
	}
}

// Err returns the error raised by the last key press, if any.
func (m *Model) Err() error {
	return m.err
}

var errEmptyCatalog = errors.New("catalog is empty")

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, store *storeuc.Service, catalog Catalog, formatter *money.Formatter, opts ...tea.ProgramOption) error {
	m, err := NewModel(ctx, store, catalog, formatter)
	if err != nil {
		return err
	}
	if len(m.products) == 0 {
		return errEmptyCatalog
	}
	opts = append(opts, tea.WithContext(ctx))
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}
