package cards

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/extman/internal/catalog"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if m.loadState != LoadPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ItemsLoadedMsg:
		m.store.Replace(msg.Items)
		m.loaded = m.store.Items()
		m.loadState = LoadDone
		m.selectFilter(catalog.FilterAll)
		m.log.WithFields(map[string]any{"source": m.source, "count": len(msg.Items)}).Info("dataset loaded")
		return m, nil

	case LoadFailedMsg:
		// the card area stays unrendered; the log file is the only report
		m.loadState = LoadFailed
		m.log.WithFields(map[string]any{"source": m.source}).Error(msg.Err, "could not initialize app")
		return m, nil

	case FilterSelectedMsg:
		m.selectFilter(msg.Filter)
		return m, nil

	case FilterStepMsg:
		f := m.filter
		if msg.Step < 0 {
			f = f.Prev()
		} else {
			f = f.Next()
		}
		m.selectFilter(f)
		return m, nil

	case RemoveItemMsg:
		m.removeItem(msg.Name)
		return m, nil

	case ToggleItemMsg:
		m.toggleItem(msg.Name, msg.Active)
		return m, nil

	case ToggleThemeMsg:
		return m, dispatch(ThemeAppliedMsg{Mode: m.toggleTheme()})

	case ThemeAppliedMsg:
		m.applyMode(msg.Mode)
		return m, nil
	}

	return m, nil
}

// handleKeyPress turns keys into control messages. Card actions resolve the
// focused card to its name first; every mutation then arrives back through
// Update as a message.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m, dispatch(ToggleThemeMsg{})
	}

	// filter and card controls exist only once the dataset has rendered
	if m.loadState != LoadDone {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()

	case key.Matches(msg, m.keys.NextFilter):
		return m, dispatch(FilterStepMsg{Step: 1})

	case key.Matches(msg, m.keys.PrevFilter):
		return m, dispatch(FilterStepMsg{Step: -1})

	case key.Matches(msg, m.keys.All):
		return m, dispatch(FilterSelectedMsg{Filter: catalog.FilterAll})

	case key.Matches(msg, m.keys.Active):
		return m, dispatch(FilterSelectedMsg{Filter: catalog.FilterActive})

	case key.Matches(msg, m.keys.Inactive):
		return m, dispatch(FilterSelectedMsg{Filter: catalog.FilterInactive})

	case key.Matches(msg, m.keys.Toggle):
		if card, ok := m.focusedCard(); ok {
			// the checkbox flips at once; the store follows on ToggleItemMsg
			m.cards[m.cursor].Checked = !card.Checked
			return m, dispatch(ToggleItemMsg{Name: card.Name, Active: !card.Checked})
		}

	case key.Matches(msg, m.keys.Remove):
		if card, ok := m.focusedCard(); ok {
			return m, dispatch(RemoveItemMsg{Name: card.Name})
		}
	}

	return m, nil
}
