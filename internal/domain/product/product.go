package product

// Product is a catalog item. Price is expressed in the smallest currency unit.
type Product struct {
	ID          string
	Name        string
	Price       int64
	Category    string
	Rating      float64
	Description string
}
