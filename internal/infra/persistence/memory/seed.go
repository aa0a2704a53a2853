package memory

import domproduct "example.com/storefront/internal/domain/product"

// SeedProducts returns a fresh copy of the built-in catalog, in display order.
func SeedProducts() []domproduct.Product {
	return []domproduct.Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Price:       2499,
			Category:    "Electronics",
			Rating:      4.6,
			Description: "Comfortable over-ear wireless headphones with deep bass and 20+ hours playback.",
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Price:       3499,
			Category:    "Wearables",
			Rating:      4.4,
			Description: "Track your health, notifications, and workouts with a bright AMOLED display.",
		},
		{
			ID:          "3",
			Name:        "Gaming Mouse",
			Price:       1599,
			Category:    "Accessories",
			Rating:      4.7,
			Description: "Ergonomic design with custom DPI, RGB lighting and programmable buttons.",
		},
		{
			ID:          "4",
			Name:        "Bluetooth Speaker",
			Price:       1999,
			Category:    "Audio",
			Rating:      4.3,
			Description: "Portable speaker with punchy sound and splash-proof design for outdoor usage.",
		},
	}
}
