package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/theme"
)

// Styles are the lipgloss styles of one palette. They are rebuilt whenever
// the theme changes.
type Styles struct {
	Palette theme.Palette

	Header       lipgloss.Style
	Brand        lipgloss.Style
	NavItem      lipgloss.Style
	NavActive    lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Muted        lipgloss.Style
	Text         lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Price        lipgloss.Style
	Category     lipgloss.Style
	Heart        lipgloss.Style
	Stars        lipgloss.Style
	Chip         lipgloss.Style
	ActiveChip   lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Input        lipgloss.Style
	Button       lipgloss.Style
	Notice       lipgloss.Style
	Error        lipgloss.Style
	Empty        lipgloss.Style
	Footer       lipgloss.Style
}

// NewStyles derives the styles of a palette.
func NewStyles(p theme.Palette) Styles {
	return Styles{
		Palette: p,

		Header: lipgloss.NewStyle().
			Foreground(p.HeaderText).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border).
			PaddingBottom(0).
			MarginBottom(1),
		Brand:     lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		NavItem:   lipgloss.NewStyle().Foreground(p.HeaderText),
		NavActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.Secondary),

		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(p.Secondary),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Text:     lipgloss.NewStyle().Foreground(p.Text),

		Item: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(p.Text),
		SelectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(p.Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Primary),

		Price:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Category: lipgloss.NewStyle().Foreground(p.Secondary),
		Heart:    lipgloss.NewStyle().Foreground(p.Accent),
		Stars:    lipgloss.NewStyle().Foreground(p.Warning),

		Chip:       lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		ActiveChip: lipgloss.NewStyle().Bold(true).Foreground(p.ButtonText).Background(p.Primary).Padding(0, 1),

		Label:        lipgloss.NewStyle().Foreground(p.Muted),
		FocusedLabel: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Input: lipgloss.NewStyle().
			Foreground(p.InputText).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border).
			MarginBottom(0),
		Button: lipgloss.NewStyle().Bold(true).Foreground(p.ButtonText).Background(p.ButtonBg).Padding(0, 2),

		Notice: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Empty:  lipgloss.NewStyle().Foreground(p.Muted).Padding(1, 2),

		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Border).
			MarginTop(1),
	}
}
