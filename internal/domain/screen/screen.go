package screen

import (
	"strings"

	domproduct "example.com/storefront/internal/domain/product"
)

// Name identifies a screen on the wire and in logs.
type Name string

const (
	NameWelcome  Name = "welcome"
	NameProducts Name = "products"
	NameDetails  Name = "details"
	NameCart     Name = "cart"
)

func (n Name) IsValid() bool {
	switch n {
	case NameWelcome, NameProducts, NameDetails, NameCart:
		return true
	default:
		return false
	}
}

// ParseName converts a request value into a Name.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if !n.IsValid() {
		return "", ErrUnknownScreen
	}
	return n, nil
}

// Screen is the current navigation focus. The set of implementations is
// closed: Welcome, Products, Details and Cart.
type Screen interface {
	Name() Name
	screen()
}

type Welcome struct{}

type Products struct{}

// Details always carries the product it shows.
type Details struct {
	Product domproduct.Product
}

type Cart struct{}

func (Welcome) Name() Name  { return NameWelcome }
func (Products) Name() Name { return NameProducts }
func (Details) Name() Name  { return NameDetails }
func (Cart) Name() Name     { return NameCart }

func (Welcome) screen()  {}
func (Products) screen() {}
func (Details) screen()  {}
func (Cart) screen()     {}

// Selected returns the product shown by a Details screen.
func Selected(s Screen) (domproduct.Product, bool) {
	d, ok := s.(Details)
	if !ok {
		return domproduct.Product{}, false
	}
	return d.Product, true
}
