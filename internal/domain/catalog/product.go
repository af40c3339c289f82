package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAll is the sentinel category that disables category filtering. It
// is also the category of products the API sends without one.
const CategoryAll = "All"

// Product is one catalog entry as served by the product API. Products are
// immutable once decoded.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Rating      Rating          `json:"rating"`
	CreatedAt   time.Time       `json:"createdAt,omitzero"`
}

// wireProduct mirrors the API payload. The API may key products by "_id".
type wireProduct struct {
	ID          string          `json:"id"`
	MongoID     string          `json:"_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Rating      Rating          `json:"rating"`
	CreatedAt   *time.Time      `json:"createdAt"`
}

// UnmarshalJSON decodes an API product and fills in the client-side defaults:
// a missing category becomes CategoryAll and a missing rating is zero.
func (p *Product) UnmarshalJSON(data []byte) error {
	var w wireProduct
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	id := w.ID
	if id == "" {
		id = w.MongoID
	}
	category := w.Category
	if category == "" {
		category = CategoryAll
	}

	*p = Product{
		ID:          id,
		Title:       w.Title,
		Description: w.Description,
		Price:       w.Price,
		Image:       w.Image,
		Category:    category,
		Subcategory: w.Subcategory,
		Rating:      w.Rating,
	}
	if w.CreatedAt != nil {
		p.CreatedAt = *w.CreatedAt
	}
	return nil
}

// Rating is a product's average score. The list endpoint sends a bare number
// while the detail endpoint sends {"rate": 4.1, "count": 120}.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// UnmarshalJSON accepts a number, an object, or null.
func (r *Rating) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Rating{}
		return nil
	}

	if trimmed[0] == '{' {
		type plain Rating
		var obj plain
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return fmt.Errorf("decode rating: %w", err)
		}
		*r = Rating(obj)
		return nil
	}

	var rate float64
	if err := json.Unmarshal(trimmed, &rate); err != nil {
		return fmt.Errorf("decode rating: %w", err)
	}
	*r = Rating{Rate: rate}
	return nil
}

// Stars renders the rating as five filled/empty stars.
func (r Rating) Stars() string {
	full := int(r.Rate)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	var b bytes.Buffer
	for i := 0; i < 5; i++ {
		if i < full {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

// Summary truncates the description for list rendering.
func (p Product) Summary(limit int) string {
	runes := []rune(p.Description)
	if limit <= 0 || len(runes) <= limit {
		return p.Description
	}
	return string(runes[:limit]) + "..."
}

// DeliveryDate is the promised delivery day for an order placed at now.
func DeliveryDate(now time.Time) time.Time {
	return now.AddDate(0, 0, 3)
}
