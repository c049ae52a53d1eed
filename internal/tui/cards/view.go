package cards

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/extman/internal/catalog"
	"github.com/alexisbeaulieu97/extman/internal/theme"
)

// cardHeight is the number of terminal rows one card occupies
const cardHeight = 5

// View renders the current model state
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")
	content.WriteString(m.renderFilterBar())
	content.WriteString("\n")
	content.WriteString(m.renderCardArea())
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return m.styles.root.
		Width(m.width).
		Height(m.height).
		Render(content.String())
}

// renderHeader renders the title and the theme status icon
func (m Model) renderHeader() string {
	title := m.styles.title.Render("Extensions")
	icon := m.styles.themeIcon.Render(m.mode.Icon())

	summary := ""
	if m.loadState == LoadDone {
		active, inactive := m.store.CountActive()
		summary = m.styles.count.Render(fmt.Sprintf("%d active", active)) +
			m.styles.summary.Render(fmt.Sprintf(" · %d inactive", inactive))
	}

	// the header's border and padding take four columns
	inner := m.contentWidth() - 4 - lipgloss.Width(title) - lipgloss.Width(icon)
	if inner < 1 {
		inner = 1
	}
	gap := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right).Render(summary + " ")

	return m.styles.header.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, gap, icon))
}

// renderFilterBar renders the three filter controls; the selected one is
// highlighted once the dataset has rendered
func (m Model) renderFilterBar() string {
	controls := make([]string, 0, len(catalog.Filters))
	for _, f := range catalog.Filters {
		style := m.styles.filter
		if m.loadState == LoadDone && f == m.filter {
			style = m.styles.filterSel
		}
		controls = append(controls, style.Render(f.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, controls...)
}

// renderCardArea renders the visible window of cards
func (m Model) renderCardArea() string {
	switch m.loadState {
	case LoadPending:
		return m.styles.emptyState.Render(m.spinner.View() + " Loading extensions...")
	case LoadFailed:
		return ""
	}

	if len(m.cards) == 0 {
		return m.styles.emptyState.Render(fmt.Sprintf("No %s extensions.", strings.ToLower(m.filter.Label())))
	}

	start := m.scrollOffset
	end := start + m.visibleCards()
	if end > len(m.cards) {
		end = len(m.cards)
	}

	items := make([]string, 0, end-start+2)
	if start > 0 {
		items = append(items, m.styles.summary.Render("▲ More above"))
	}
	for i := start; i < end; i++ {
		items = append(items, renderCard(m.styles, m.cards[i], i == m.cursor, m.contentWidth()))
	}
	if end < len(m.cards) {
		items = append(items, m.styles.summary.Render("▼ More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderFooter renders key hints
func (m Model) renderFooter() string {
	return m.styles.footer.Render(m.help.View(m.keys))
}

func (m Model) contentWidth() int {
	w := m.width - 2
	if w > 96 {
		w = 96
	}
	if w < 32 {
		w = 32
	}
	return w
}

// renderCard draws one card: logo badge and name, description, then the
// remove control and the active checkbox
func renderCard(s styles, c Card, focused bool, width int) string {
	frame := s.card
	if focused {
		frame = s.cardFocus
	}
	// border and padding take four columns
	inner := width - 4

	head := lipgloss.JoinHorizontal(lipgloss.Center,
		s.logo.Render(logoBadge(c.Name)),
		" ",
		s.name.Render(truncate(c.Name, inner-6)),
	)

	desc := s.desc.Render(truncate(c.Description, inner))

	remove := s.remove.Render("Remove")
	checkbox := s.switchOff.Render("[ ] inactive")
	if c.Checked {
		checkbox = s.switchOn.Render("[x] active")
	}
	spacer := inner - lipgloss.Width(remove) - lipgloss.Width(checkbox)
	if spacer < 1 {
		spacer = 1
	}
	controls := remove + strings.Repeat(" ", spacer) + checkbox

	body := lipgloss.JoinVertical(lipgloss.Left, head, desc, controls)
	return frame.Width(width - 2).Render(body)
}

// RenderCards draws items as cards outside of the interactive program.
func RenderCards(items []catalog.Item, mode theme.Mode, width int) string {
	s := newStyles(mode)
	if width < 32 {
		width = 32
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, renderCard(s, Card{
			Name:        item.Name,
			Logo:        item.Logo,
			Description: item.Description,
			Checked:     item.IsActive,
		}, false, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// logoBadge derives a two-letter badge from the item name, e.g. "DevLens"
// becomes "DL" and "Palette Picker" becomes "PP".
func logoBadge(name string) string {
	var capitals []rune
	for _, r := range name {
		if unicode.IsUpper(r) {
			capitals = append(capitals, r)
		}
	}
	if len(capitals) >= 2 {
		return string(capitals[:2])
	}

	words := strings.Fields(name)
	if len(words) >= 2 {
		return strings.ToUpper(string([]rune(words[0])[:1]) + string([]rune(words[1])[:1]))
	}
	runes := []rune(strings.TrimSpace(name))
	switch {
	case len(runes) >= 2:
		return strings.ToUpper(string(runes[:2]))
	case len(runes) == 1:
		return strings.ToUpper(string(runes))
	default:
		return "??"
	}
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
