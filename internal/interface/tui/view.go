package tui

import (
	"fmt"
	"strings"

	domcart "example.com/storefront/internal/domain/cart"
	domproduct "example.com/storefront/internal/domain/product"
	"example.com/storefront/internal/domain/screen"
	storeuc "example.com/storefront/internal/usecase/store"
)

const rule = "────────────────────────────────────────"

func (m *Model) View() string {
	snap := m.store.Snapshot()

	var b strings.Builder
	b.WriteString("Product Application\n")
	b.WriteString("Explore · Compare · Buy\n")
	b.WriteString(rule + "\n")

	switch s := snap.Screen.(type) {
	case screen.Welcome:
		m.viewWelcome(&b)
	case screen.Products:
		m.viewProducts(&b, snap.CartCount)
	case screen.Details:
		m.viewDetails(&b, s.Product)
	case screen.Cart:
		m.viewCart(&b, snap)
	}

	if m.err != nil {
		fmt.Fprintf(&b, "\n! %v\n", m.err)
	}

	b.WriteString(rule + "\n")
	b.WriteString(renderNav(snap.Nav))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewWelcome(b *strings.Builder) {
	b.WriteString("Welcome\n\n")
	fmt.Fprintf(b, "Browse curated %d+ tech products, view details, and add them to your cart.\n\n", len(m.products))
	b.WriteString("[enter] Get Started\n")
}

func (m *Model) viewProducts(b *strings.Builder, cartCount int) {
	fmt.Fprintf(b, "Products                      Cart (%d) [c]\n\n", cartCount)
	for i, p := range m.products {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(b, "%s%s  %s\n", marker, p.Name, m.formatter.Format(p.Price))
		fmt.Fprintf(b, "    %s · ★ %.1f\n", p.Category, p.Rating)
		fmt.Fprintf(b, "    %s\n", p.Description)
	}
	b.WriteString("\n[↑/↓] move  [enter] details\n")
}

func (m *Model) viewDetails(b *strings.Builder, p domproduct.Product) {
	b.WriteString("[b] Back\n\n")
	fmt.Fprintf(b, "%s\n", p.Name)
	fmt.Fprintf(b, "%s · ★ %.1f\n\n", p.Category, p.Rating)
	fmt.Fprintf(b, "%s\n\n", p.Description)
	fmt.Fprintf(b, "[a] Add to Cart • %s\n", m.formatter.Format(p.Price))
}

func (m *Model) viewCart(b *strings.Builder, snap storeuc.Snapshot) {
	b.WriteString("[b] Back\n\nYour Cart\n\n")
	if len(snap.Entries) == 0 {
		b.WriteString("Your cart is empty\n")
		b.WriteString("Start adding some products to see them here.\n")
		return
	}
	for _, e := range snap.Entries {
		b.WriteString(renderEntry(e, m.formatter.Format(e.Product.Price)))
	}
	fmt.Fprintf(b, "\nTotal: %s\n", m.formatter.Format(snap.CartTotal))
	b.WriteString("[x] Clear Cart\n")
}

func renderEntry(e domcart.Entry, price string) string {
	return fmt.Sprintf("  %s (%s)  %s\n", e.Product.Name, e.Product.Category, price)
}

func renderNav(items []screen.NavItem) string {
	parts := make([]string, 0, len(items))
	for i, item := range items {
		label := fmt.Sprintf("%d %s", i+1, item.Label)
		if item.Active {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "   ")
}
