package wishlist

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
)

func entry(id string) Entry {
	return Entry{ProductID: id, Title: "Product " + id, Price: decimal.NewFromInt(10)}
}

func TestAdd_DuplicateIsNoop(t *testing.T) {
	w := New()

	assert.True(t, w.Add(entry("p1")))
	assert.False(t, w.Add(entry("p1")))

	require.Len(t, w.Entries(), 1)
	assert.Equal(t, 1, w.Len())
}

func TestRemove(t *testing.T) {
	w := New()
	w.Add(entry("p1"))
	w.Add(entry("p2"))

	w.Remove("p1")
	w.Remove("absent")

	entries := w.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "p2", entries[0].ProductID)
	assert.False(t, w.Contains("p1"))
}

func TestToggle(t *testing.T) {
	w := New()

	assert.True(t, w.Toggle(entry("p1")))
	assert.True(t, w.Contains("p1"))

	assert.False(t, w.Toggle(entry("p1")))
	assert.False(t, w.Contains("p1"))
}

func TestEntryConversions(t *testing.T) {
	p := catalog.Product{
		ID:          "r1",
		Title:       "Ring",
		Description: "Gold",
		Price:       decimal.RequireFromString("250.00"),
		Category:    "Jewelry",
		Rating:      catalog.Rating{Rate: 4.5, Count: 3},
	}

	e := EntryFromProduct(p)
	assert.Equal(t, 4.5, e.Rating)

	item := e.CartItem()
	assert.Equal(t, "r1", item.ProductID)
	assert.Equal(t, "Ring", item.Title)
	assert.True(t, item.Price.Equal(p.Price))
}

func TestGet(t *testing.T) {
	w := New()
	w.Add(entry("p1"))

	got, ok := w.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "Product p1", got.Title)

	_, ok = w.Get("nope")
	assert.False(t, ok)
}
