package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/theme"
)

// MaxRating is the top of the rating scale.
const MaxRating = 5.0

// RatingBar renders a product rating as a filled bar.
type RatingBar struct {
	bar   progress.Model
	rate  float64
	count int
}

// NewRatingBar creates a bar for the given rating, colored from the palette.
func NewRatingBar(rate float64, count int, p theme.Palette) RatingBar {
	bar := progress.New(
		progress.WithSolidFill(string(p.Warning)),
		progress.WithoutPercentage(),
	)
	bar.Width = 20
	bar.EmptyColor = string(p.Border)
	return RatingBar{bar: bar, rate: rate, count: count}
}

// Ratio is the filled share of the bar.
func (r RatingBar) Ratio() float64 {
	return math.Max(0, math.Min(1, r.rate/MaxRating))
}

// View renders the bar followed by the numeric rating.
func (r RatingBar) View() string {
	label := fmt.Sprintf("%.1f/5", r.rate)
	if r.count > 0 {
		label += fmt.Sprintf(" (%d reviews)", r.count)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, r.bar.ViewAs(r.Ratio()), " ", lipgloss.NewStyle().Bold(true).Render(label))
}
