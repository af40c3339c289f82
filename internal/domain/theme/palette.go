package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of named colors derived from a theme.
type Palette struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	CardBg     lipgloss.Color
	CardBorder lipgloss.Color
	ButtonBg   lipgloss.Color
	ButtonText lipgloss.Color
	HeaderBg   lipgloss.Color
	HeaderText lipgloss.Color
	InputBg    lipgloss.Color
	InputText  lipgloss.Color
	Border     lipgloss.Color
	Hover      lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Info       lipgloss.Color
}

var palettes = map[Name]Palette{
	Light: {
		Background: lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#333333"),
		Primary:    lipgloss.Color("#3a0ca3"),
		Secondary:  lipgloss.Color("#4361ee"),
		Accent:     lipgloss.Color("#f72585"),
		CardBg:     lipgloss.Color("#ffffff"),
		CardBorder: lipgloss.Color("#e5e7eb"),
		ButtonBg:   lipgloss.Color("#3a0ca3"),
		ButtonText: lipgloss.Color("#ffffff"),
		HeaderBg:   lipgloss.Color("#ffffff"),
		HeaderText: lipgloss.Color("#333333"),
		InputBg:    lipgloss.Color("#ffffff"),
		InputText:  lipgloss.Color("#333333"),
		Border:     lipgloss.Color("#e5e7eb"),
		Hover:      lipgloss.Color("#f8f9fa"),
		Muted:      lipgloss.Color("#6b7280"),
		Success:    lipgloss.Color("#2b9348"),
		Error:      lipgloss.Color("#dc2626"),
		Warning:    lipgloss.Color("#fbbf24"),
		Info:       lipgloss.Color("#3b82f6"),
	},
	Dark: {
		Background: lipgloss.Color("#1a1a1a"),
		Text:       lipgloss.Color("#ffffff"),
		Primary:    lipgloss.Color("#7209b7"),
		Secondary:  lipgloss.Color("#4cc9f0"),
		Accent:     lipgloss.Color("#f72585"),
		CardBg:     lipgloss.Color("#2d2d2d"),
		CardBorder: lipgloss.Color("#404040"),
		ButtonBg:   lipgloss.Color("#7209b7"),
		ButtonText: lipgloss.Color("#ffffff"),
		HeaderBg:   lipgloss.Color("#2d2d2d"),
		HeaderText: lipgloss.Color("#ffffff"),
		InputBg:    lipgloss.Color("#2d2d2d"),
		InputText:  lipgloss.Color("#ffffff"),
		Border:     lipgloss.Color("#404040"),
		Hover:      lipgloss.Color("#363636"),
		Muted:      lipgloss.Color("#9ca3af"),
		Success:    lipgloss.Color("#34d399"),
		Error:      lipgloss.Color("#ef4444"),
		Warning:    lipgloss.Color("#fbbf24"),
		Info:       lipgloss.Color("#60a5fa"),
	},
}

// PaletteFor looks up the palette of a theme. Unknown names get the light
// palette. The returned value is a copy; the table itself never changes.
func PaletteFor(name Name) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[Light]
}
