package cards

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/extman/internal/theme"
)

// styles is the lipgloss style set derived from one theme palette
type styles struct {
	palette theme.Palette

	root       lipgloss.Style
	title      lipgloss.Style
	themeIcon  lipgloss.Style
	header     lipgloss.Style
	summary    lipgloss.Style
	count      lipgloss.Style
	filter     lipgloss.Style
	filterSel  lipgloss.Style
	card       lipgloss.Style
	cardFocus  lipgloss.Style
	logo       lipgloss.Style
	name       lipgloss.Style
	desc       lipgloss.Style
	remove     lipgloss.Style
	switchOn   lipgloss.Style
	switchOff  lipgloss.Style
	emptyState lipgloss.Style
	spinner    lipgloss.Style
	footer     lipgloss.Style
}

func newStyles(mode theme.Mode) styles {
	p := theme.PaletteFor(mode)

	return styles{
		palette: p,

		// the document-wide mode marker: the whole frame takes the mode's
		// background
		root: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Foreground),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground).
			PaddingLeft(1).
			PaddingRight(1),

		themeIcon: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Surface).
			Padding(0, 1),

		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			MarginBottom(1),

		summary: lipgloss.NewStyle().
			Foreground(p.Muted),

		count: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Success),

		filter: lipgloss.NewStyle().
			Foreground(p.Foreground).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2),

		filterSel: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.AccentText).
			Background(p.Accent).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 2),

		card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		cardFocus: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),

		logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.AccentText).
			Background(p.Accent).
			Padding(0, 1),

		name: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),

		desc: lipgloss.NewStyle().
			Foreground(p.Muted),

		remove: lipgloss.NewStyle().
			Foreground(p.Danger).
			Underline(true),

		switchOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),

		switchOff: lipgloss.NewStyle().
			Foreground(p.Muted),

		emptyState: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(2),

		spinner: lipgloss.NewStyle().
			Foreground(p.Accent),

		footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
	}
}
