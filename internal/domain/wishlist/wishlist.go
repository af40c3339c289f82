package wishlist

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/cart"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
)

// Entry is a saved product with the fields the wishlist screen displays.
type Entry struct {
	ProductID   string
	Title       string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
	Rating      float64
}

// EntryFromProduct snapshots p for the wishlist.
func EntryFromProduct(p catalog.Product) Entry {
	return Entry{
		ProductID:   p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Rating:      p.Rating.Rate,
	}
}

// CartItem converts the entry into a cart item.
func (e Entry) CartItem() cart.Item {
	return cart.Item{
		ProductID: e.ProductID,
		Title:     e.Title,
		Price:     e.Price,
		Image:     e.Image,
		Category:  e.Category,
	}
}

// Wishlist is an ordered set of products keyed by product id.
type Wishlist struct {
	mu      sync.RWMutex
	entries []Entry
}

// New returns an empty wishlist.
func New() *Wishlist {
	return &Wishlist{}
}

// Add appends entry unless its product is already saved. It reports whether
// the wishlist changed.
func (w *Wishlist) Add(entry Entry) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.indexLocked(entry.ProductID) >= 0 {
		return false
	}
	w.entries = append(w.entries, entry)
	return true
}

// Remove deletes the entry for productID. Absent ids are ignored.
func (w *Wishlist) Remove(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if i := w.indexLocked(productID); i >= 0 {
		w.entries = append(w.entries[:i], w.entries[i+1:]...)
	}
}

// Toggle removes a saved product or saves an unsaved one. It reports whether
// the product is saved afterwards.
func (w *Wishlist) Toggle(entry Entry) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if i := w.indexLocked(entry.ProductID); i >= 0 {
		w.entries = append(w.entries[:i], w.entries[i+1:]...)
		return false
	}
	w.entries = append(w.entries, entry)
	return true
}

// Contains reports whether productID is saved.
func (w *Wishlist) Contains(productID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.indexLocked(productID) >= 0
}

// Get returns the entry for productID.
func (w *Wishlist) Get(productID string) (Entry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if i := w.indexLocked(productID); i >= 0 {
		return w.entries[i], true
	}
	return Entry{}, false
}

// Entries returns a copy of the saved entries in insertion order.
func (w *Wishlist) Entries() []Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

// Len returns the number of saved products.
func (w *Wishlist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entries)
}

func (w *Wishlist) indexLocked(productID string) int {
	for i := range w.entries {
		if w.entries[i].ProductID == productID {
			return i
		}
	}
	return -1
}
