package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors the UI draws with for one mode.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	AccentText lipgloss.Color
	Danger     lipgloss.Color
	Success    lipgloss.Color
}

var (
	lightPalette = Palette{
		Background: lipgloss.Color("#EEF3FB"),
		Surface:    lipgloss.Color("#FBFDFE"),
		Foreground: lipgloss.Color("#09153E"),
		Muted:      lipgloss.Color("#535868"),
		Border:     lipgloss.Color("#C7C7C7"),
		Accent:     lipgloss.Color("#C7221A"),
		AccentText: lipgloss.Color("#FBFDFE"),
		Danger:     lipgloss.Color("#DE473F"),
		Success:    lipgloss.Color("#2E7D32"),
	}

	darkPalette = Palette{
		Background: lipgloss.Color("#040918"),
		Surface:    lipgloss.Color("#212636"),
		Foreground: lipgloss.Color("#FBFDFE"),
		Muted:      lipgloss.Color("#C7C7C7"),
		Border:     lipgloss.Color("#545969"),
		Accent:     lipgloss.Color("#F25C54"),
		AccentText: lipgloss.Color("#091540"),
		Danger:     lipgloss.Color("#F25C54"),
		Success:    lipgloss.Color("#81C784"),
	}
)

// PaletteFor returns the palette used while mode is applied.
func PaletteFor(mode Mode) Palette {
	if mode.IsDark() {
		return darkPalette
	}
	return lightPalette
}
