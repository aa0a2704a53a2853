package screen

import "fmt"

// Tab is an entry of the bottom navigation bar.
type Tab string

const (
	TabWelcome  Tab = "welcome"
	TabProducts Tab = "products"
	TabCart     Tab = "cart"
)

// NavItem is a rendered bottom navigation entry.
type NavItem struct {
	Tab    Tab
	Label  string
	Active bool
}

// ActiveTab reports which tab is highlighted for s. Details belongs to the
// Products tab.
func ActiveTab(s Screen) Tab {
	switch s.(type) {
	case Products, Details:
		return TabProducts
	case Cart:
		return TabCart
	default:
		return TabWelcome
	}
}

// NavItems builds the bottom navigation for the current screen.
func NavItems(s Screen, cartCount int) []NavItem {
	active := ActiveTab(s)
	cartLabel := "Cart"
	if cartCount > 0 {
		cartLabel = fmt.Sprintf("Cart (%d)", cartCount)
	}
	return []NavItem{
		{Tab: TabWelcome, Label: "Welcome", Active: active == TabWelcome},
		{Tab: TabProducts, Label: "Products", Active: active == TabProducts},
		{Tab: TabCart, Label: cartLabel, Active: active == TabCart},
	}
}
