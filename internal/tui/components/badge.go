package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/theme"
)

// BadgeVariant selects the palette color of a badge.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgePrimary
	BadgeAccent
	BadgeSuccess
	BadgeWarning
	BadgeError
	BadgeInfo
)

// Badge is a small inline label, such as the cart count in the header.
type Badge struct {
	text    string
	variant BadgeVariant
}

// NewBadge creates a badge with the default variant.
func NewBadge(text string) Badge {
	return Badge{text: text}
}

// WithVariant returns a copy of the badge with another variant.
func (b Badge) WithVariant(variant BadgeVariant) Badge {
	b.variant = variant
	return b
}

// Text returns the label.
func (b Badge) Text() string {
	return b.text
}

// View renders the badge in the palette's colors.
func (b Badge) View(p theme.Palette) string {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch b.variant {
	case BadgePrimary:
		style = style.Foreground(p.ButtonText).Background(p.Primary)
	case BadgeAccent:
		style = style.Foreground(p.ButtonText).Background(p.Accent)
	case BadgeSuccess:
		style = style.Foreground(p.Success)
	case BadgeWarning:
		style = style.Foreground(p.Warning)
	case BadgeError:
		style = style.Foreground(p.Error)
	case BadgeInfo:
		style = style.Foreground(p.Info)
	default:
		style = style.Foreground(p.Text).Background(p.Hover)
	}
	return style.Render(b.text)
}
