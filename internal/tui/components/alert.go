package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/theme"
)

// AlertVariant selects the icon and color of an alert.
type AlertVariant int

const (
	AlertInfo AlertVariant = iota
	AlertSuccess
	AlertWarning
	AlertError
)

// Alert is a bordered inline message, used for fetch failures, form errors
// and confirmations.
type Alert struct {
	message string
	title   string
	variant AlertVariant
	ascii   bool
}

// NewAlert creates an info alert.
func NewAlert(message string) Alert {
	return Alert{message: message}
}

// WithVariant returns a copy with another variant.
func (a Alert) WithVariant(variant AlertVariant) Alert {
	a.variant = variant
	return a
}

// WithTitle returns a copy with a bold first line.
func (a Alert) WithTitle(title string) Alert {
	a.title = title
	return a
}

// WithASCII returns a copy that avoids unicode icons and borders.
func (a Alert) WithASCII(ascii bool) Alert {
	a.ascii = ascii
	return a
}

// Icon returns the glyph shown before the message.
func (a Alert) Icon() string {
	if a.ascii {
		switch a.variant {
		case AlertSuccess:
			return "[ok]"
		case AlertWarning:
			return "[!]"
		case AlertError:
			return "[x]"
		default:
			return "[i]"
		}
	}
	switch a.variant {
	case AlertSuccess:
		return "✓"
	case AlertWarning:
		return "⚠"
	case AlertError:
		return "✗"
	default:
		return "ℹ"
	}
}

// View renders the alert.
func (a Alert) View(p theme.Palette) string {
	if a.message == "" && a.title == "" {
		return ""
	}

	color := p.Info
	switch a.variant {
	case AlertSuccess:
		color = p.Success
	case AlertWarning:
		color = p.Warning
	case AlertError:
		color = p.Error
	}

	border := lipgloss.RoundedBorder()
	if a.ascii {
		border = lipgloss.NormalBorder()
	}

	body := a.Icon() + " " + a.message
	if a.title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(a.title), body)
	}

	return lipgloss.NewStyle().
		Foreground(color).
		BorderStyle(border).
		BorderForeground(color).
		Padding(0, 1).
		Render(body)
}
