package cards

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/extman/internal/catalog"
	"github.com/alexisbeaulieu97/extman/internal/logger"
	"github.com/alexisbeaulieu97/extman/internal/theme"
	"github.com/alexisbeaulieu97/extman/pkg/diff"
)

// Card is one rendered card. Name is the identifying key that maps the card
// back to its store item; Checked mirrors the card's checkbox.
type Card struct {
	Name        string
	Logo        string
	Description string
	Checked     bool
}

// LoadState tracks the single startup fetch.
type LoadState int

const (
	LoadPending LoadState = iota
	LoadDone
	LoadFailed
)

// Options configures a Model.
type Options struct {
	Store  *catalog.Store
	Loader ItemLoader
	Source string
	Theme  *theme.Controller
	Logger *logger.Logger
}

// Model is the card list UI.
type Model struct {
	// Core data
	store  *catalog.Store
	loader ItemLoader
	source string
	themes *theme.Controller
	log    *logger.Logger

	// loaded is the dataset as fetched, kept to report session changes
	loaded []catalog.Item

	// Rendered state
	cards     []Card
	filter    catalog.Filter
	loadState LoadState

	// UI state
	cursor       int
	scrollOffset int
	mode         theme.Mode
	styles       styles
	keys         keyMap
	help         help.Model
	spinner      spinner.Model

	// Dimensions
	width  int
	height int
}

// NewModel creates the card list model. The theme controller should already
// be initialized; its current mode is used for the first frame.
func NewModel(opts Options) Model {
	store := opts.Store
	if store == nil {
		store = catalog.NewStore(nil)
	}

	mode := theme.Light
	if opts.Theme != nil {
		mode = opts.Theme.Mode()
	}

	m := Model{
		store:  store,
		loader: opts.Loader,
		source: opts.Source,
		themes: opts.Theme,
		log:    opts.Logger.WithFields(map[string]any{"component": "tui"}),
		filter: catalog.FilterAll,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.applyMode(mode)

	return m
}

// Init starts the spinner and issues the one dataset fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadItemsCmd(context.Background(), m.loader, m.source),
	)
}

// render replaces the rendered card set with one card per item, in order.
func (m *Model) render(items []catalog.Item) {
	cards := make([]Card, len(items))
	for i, item := range items {
		cards[i] = Card{
			Name:        item.Name,
			Logo:        item.Logo,
			Description: item.Description,
			Checked:     item.IsActive,
		}
	}
	m.cards = cards
	m.clampCursor()
}

// selectFilter marks f as the only selected control and renders its subset.
func (m *Model) selectFilter(f catalog.Filter) {
	m.filter = f
	m.render(m.store.Filtered(f))
}

// removeItem drops the named item and re-renders under the selected filter.
func (m *Model) removeItem(name string) {
	if name == "" {
		return
	}
	if !m.store.Remove(name) {
		m.log.Debug("remove ignored: no matching item")
	}
	m.render(m.store.Filtered(m.filter))
}

// toggleItem records a checkbox change. The rendered set is left alone apart
// from the checkbox itself.
func (m *Model) toggleItem(name string, active bool) {
	if name == "" {
		return
	}
	for i := range m.cards {
		if m.cards[i].Name == name {
			m.cards[i].Checked = active
		}
	}
	if !m.store.SetActive(name, active) {
		m.log.Debug("toggle ignored: no matching item")
	}
}

// toggleTheme flips the persisted theme and returns the mode to apply.
func (m *Model) toggleTheme() theme.Mode {
	if m.themes == nil {
		return m.mode.Opposite()
	}
	mode, err := m.themes.Toggle(context.Background())
	if err != nil {
		m.log.Warn(err, "theme preference not saved")
	}
	return mode
}

func (m *Model) applyMode(mode theme.Mode) {
	m.mode = mode
	m.styles = newStyles(mode)
	m.spinner.Style = m.styles.spinner
}

// focusedCard resolves the card under the cursor.
func (m *Model) focusedCard() (Card, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cards) {
		return Card{}, false
	}
	return m.cards[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.cards) {
		m.cursor = len(m.cards) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.cards) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.cards) - 1
	}
	m.ensureVisible()
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.cards) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.cards) {
		m.cursor = 0
	}
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	visible := m.visibleCards()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
	if maxOffset := len(m.cards) - visible; m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// visibleCards is how many cards fit below the header and filter bar.
func (m *Model) visibleCards() int {
	const chrome = 12
	n := (m.height - chrome) / cardHeight
	if n < 1 {
		return 1
	}
	return n
}

// Cards returns the rendered card set.
func (m Model) Cards() []Card {
	out := make([]Card, len(m.cards))
	copy(out, m.cards)
	return out
}

// Filter returns the selected filter control.
func (m Model) Filter() catalog.Filter {
	return m.filter
}

// Mode returns the applied theme mode.
func (m Model) Mode() theme.Mode {
	return m.mode
}

// LoadState reports the outcome of the startup fetch.
func (m Model) LoadState() LoadState {
	return m.loadState
}

// SessionChanges lists what was toggled or removed since the dataset loaded.
// The result is empty before the dataset loads or when nothing changed.
func (m Model) SessionChanges() string {
	if m.loadState != LoadDone {
		return ""
	}
	return diff.Lines(catalog.Summarize(m.loaded), catalog.Summarize(m.store.Items()), "loaded", "session")
}

// SessionStats counts the summary lines SessionChanges adds and removes.
func (m Model) SessionStats() diff.Stats {
	if m.loadState != LoadDone {
		return diff.Stats{}
	}
	return diff.Count(catalog.Summarize(m.loaded), catalog.Summarize(m.store.Items()))
}
