package cart

import (
	"github.com/google/uuid"

	domproduct "example.com/storefront/internal/domain/product"
)

// Entry is one unit of a product placed in the cart. Adding the same
// product twice yields two entries with different IDs.
type Entry struct {
	ID      string
	Product domproduct.Product
}

// Cart is an ordered list of entries. The zero value is an empty cart.
type Cart struct {
	entries []Entry
}

// Add appends a copy of p and returns the new entry.
func (c *Cart) Add(p domproduct.Product) Entry {
	e := Entry{ID: uuid.NewString(), Product: p}
	c.entries = append(c.entries, e)
	return e
}

// Clear drops every entry.
func (c *Cart) Clear() {
	c.entries = nil
}

// Entries returns the entries in insertion order. The slice is a copy.
func (c Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c Cart) Count() int {
	return len(c.entries)
}

// Total sums the price of every entry. It is recomputed on each call.
func (c Cart) Total() int64 {
	var total int64
	for _, e := range c.entries {
		total += e.Product.Price
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.entries) == 0
}
