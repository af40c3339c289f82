package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/cart"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/theme"
)

// OrderSummary renders cart lines with their subtotals and the total.
type OrderSummary struct {
	lines []cart.Line
	total decimal.Decimal
}

// NewOrderSummary creates a summary of the given lines.
func NewOrderSummary(lines []cart.Line, total decimal.Decimal) OrderSummary {
	return OrderSummary{lines: lines, total: total}
}

// View renders the summary. An empty summary renders nothing.
func (s OrderSummary) View(p theme.Palette) string {
	if len(s.lines) == 0 {
		return ""
	}

	muted := lipgloss.NewStyle().Foreground(p.Muted)
	strong := lipgloss.NewStyle().Bold(true).Foreground(p.Text)

	rows := make([]string, 0, len(s.lines)+2)
	for _, line := range s.lines {
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			strong.Render(line.Title),
			muted.Render(fmt.Sprintf("%d x $%s", line.Quantity, line.Price.StringFixed(2))),
			strong.Render("$"+line.Subtotal().StringFixed(2)),
		))
	}
	rows = append(rows, muted.Render(strings.Repeat("-", 24)))
	rows = append(rows, lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Render("Total: $"+s.total.StringFixed(2)))

	return strings.Join(rows, "\n")
}
