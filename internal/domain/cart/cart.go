package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
)

// Item is the denormalized product snapshot a cart line is created from.
type Item struct {
	ProductID string
	Title     string
	Price     decimal.Decimal
	Image     string
	Category  string
}

// ItemFromProduct snapshots the display fields of p.
func ItemFromProduct(p catalog.Product) Item {
	return Item{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
	}
}

// Line is one product in the cart. Quantity is always at least 1.
type Line struct {
	Item
	Quantity int
}

// Subtotal is price × quantity for the line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered collection of lines with at most one line per product.
// Every mutation is visible to the next read; the zero value is an empty cart.
type Cart struct {
	mu    sync.RWMutex
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of item in the cart.
func (c *Cart) Add(item Item) {
	c.AddN(item, 1)
}

// AddN puts n units of item in the cart; n below 1 counts as 1.
func (c *Cart) AddN(item Item, n int) {
	if n < 1 {
		n = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(item.ProductID); i >= 0 {
		c.lines[i].Quantity += n
		return
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: n})
}

// Remove deletes the line for productID. Absent ids are ignored.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// UpdateQuantity sets the quantity of the line for productID, clamped to a
// minimum of 1. It never removes the line. Absent ids are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

// Increment adds one unit to an existing line.
func (c *Cart) Increment(productID string) {
	c.adjust(productID, 1)
}

// Decrement removes one unit from an existing line, stopping at 1.
func (c *Cart) Decrement(productID string) {
	c.adjust(productID, -1)
}

func (c *Cart) adjust(productID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(productID); i >= 0 {
		c.lines[i].Quantity = max(c.lines[i].Quantity+delta, 1)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line for productID.
func (c *Cart) Line(productID string) (Line, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexLocked(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// Count returns the total number of units across lines.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Total is the sum of price × quantity, computed on every call.
func (c *Cart) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) indexLocked(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}
