package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/storefront/internal/domain/product"
)

var (
	headphones = domproduct.Product{ID: "1", Name: "Wireless Headphones", Price: 2499}
	speaker    = domproduct.Product{ID: "4", Name: "Bluetooth Speaker", Price: 1999}
)

func TestCart_ZeroValueIsEmpty(t *testing.T) {
	var c Cart

	require.True(t, c.IsEmpty())
	require.Equal(t, 0, c.Count())
	require.Equal(t, int64(0), c.Total())
	require.Empty(t, c.Entries())
}

func TestCart_AddKeepsOrderAndSums(t *testing.T) {
	var c Cart

	c.Add(headphones)
	c.Add(speaker)

	entries := c.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "1", entries[0].Product.ID)
	require.Equal(t, "4", entries[1].Product.ID)
	require.Equal(t, 2, c.Count())
	require.Equal(t, int64(4498), c.Total())
}

func TestCart_DuplicatesAreDistinctEntries(t *testing.T) {
	var c Cart

	first := c.Add(headphones)
	second := c.Add(headphones)

	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 2, c.Count())
	require.Equal(t, int64(4998), c.Total())
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	c.Add(headphones)
	c.Add(speaker)

	c.Clear()

	require.True(t, c.IsEmpty())
	require.Equal(t, int64(0), c.Total())
}

func TestCart_EntriesAreACopy(t *testing.T) {
	var c Cart
	c.Add(headphones)

	entries := c.Entries()
	entries[0].Product.Price = 1
	_ = append(entries, Entry{Product: speaker})

	require.Equal(t, int64(2499), c.Total())
	require.Equal(t, 1, c.Count())
}
