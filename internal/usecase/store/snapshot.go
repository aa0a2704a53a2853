package store

import (
	domcart "example.com/storefront/internal/domain/cart"
	domproduct "example.com/storefront/internal/domain/product"
	"example.com/storefront/internal/domain/screen"
)

// Snapshot is a read-only view of the state handed to rendering surfaces.
// Derived values are computed when the snapshot is taken.
type Snapshot struct {
	Screen    screen.Screen
	Entries   []domcart.Entry
	CartCount int
	CartTotal int64
	ActiveTab screen.Tab
	Nav       []screen.NavItem
}

func newSnapshot(current screen.Screen, c domcart.Cart) Snapshot {
	return Snapshot{
		Screen:    current,
		Entries:   c.Entries(),
		CartCount: c.Count(),
		CartTotal: c.Total(),
		ActiveTab: screen.ActiveTab(current),
		Nav:       screen.NavItems(current, c.Count()),
	}
}

// SelectedProduct returns the product shown when the screen is Details.
func (s Snapshot) SelectedProduct() (domproduct.Product, bool) {
	return screen.Selected(s.Screen)
}
