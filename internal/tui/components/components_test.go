package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/cart"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/theme"
)

func TestBadgeView(t *testing.T) {
	t.Parallel()

	p := theme.PaletteFor(theme.Light)
	for _, v := range []BadgeVariant{BadgeDefault, BadgePrimary, BadgeAccent, BadgeSuccess, BadgeWarning, BadgeError, BadgeInfo} {
		badge := NewBadge("3").WithVariant(v)
		require.Contains(t, badge.View(p), "3")
		require.Equal(t, "3", badge.Text())
	}
}

func TestAlert(t *testing.T) {
	t.Parallel()

	p := theme.PaletteFor(theme.Dark)

	t.Run("empty alert renders nothing", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, NewAlert("").View(p))
	})

	t.Run("renders title and message", func(t *testing.T) {
		t.Parallel()
		view := NewAlert("connection refused").WithTitle("Could not load products").WithVariant(AlertError).View(p)
		require.Contains(t, view, "Could not load products")
		require.Contains(t, view, "connection refused")
		require.Contains(t, view, "✗")
	})

	t.Run("ascii icons", func(t *testing.T) {
		t.Parallel()
		a := NewAlert("saved").WithVariant(AlertSuccess).WithASCII(true)
		require.Equal(t, "[ok]", a.Icon())
		require.Contains(t, a.View(p), "[ok] saved")
	})
}

func TestRatingBar(t *testing.T) {
	t.Parallel()

	p := theme.PaletteFor(theme.Light)
	require.InDelta(t, 0.9, NewRatingBar(4.5, 0, p).Ratio(), 1e-9)
	require.Equal(t, 1.0, NewRatingBar(7, 0, p).Ratio())
	require.Equal(t, 0.0, NewRatingBar(-1, 0, p).Ratio())

	view := NewRatingBar(4.5, 120, p).View()
	require.Contains(t, view, "4.5/5")
	require.Contains(t, view, "120 reviews")
}

func TestOrderSummary(t *testing.T) {
	t.Parallel()

	p := theme.PaletteFor(theme.Light)
	require.Empty(t, NewOrderSummary(nil, decimal.Zero).View(p))

	lines := []cart.Line{
		{Item: cart.Item{ProductID: "a", Title: "Lamp", Price: decimal.RequireFromString("10")}, Quantity: 2},
		{Item: cart.Item{ProductID: "b", Title: "Mug", Price: decimal.RequireFromString("5.5")}, Quantity: 1},
	}
	view := NewOrderSummary(lines, decimal.RequireFromString("25.5")).View(p)
	require.Contains(t, view, "2 x $10.00")
	require.Contains(t, view, "$20.00")
	require.True(t, strings.HasSuffix(strings.TrimSpace(stripANSI(view)), "Total: $25.50"))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
