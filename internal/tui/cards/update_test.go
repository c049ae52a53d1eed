package cards

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/extman/internal/catalog"
	"github.com/alexisbeaulieu97/extman/internal/theme"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 100, m.help.Width)
}

func TestUpdate_SpinnerTickOnlyWhileLoading(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(spinner.TickMsg{})
	assert.NotNil(t, cmd)

	m = loadedModel(t, nil)
	_, cmd = m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestLoadCommandFetchesOnce(t *testing.T) {
	loader := &fakeLoader{items: sampleItems()}

	msg := loadItemsCmd(context.Background(), loader, "./data.json")()
	loaded, ok := msg.(ItemsLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded.Items, 4)
	assert.Equal(t, 1, loader.calls)
}

func TestLoadCommandFailure(t *testing.T) {
	loader := &fakeLoader{err: errors.New("HTTP error! status: 404")}

	msg := loadItemsCmd(context.Background(), loader, "./data.json")()
	failed, ok := msg.(LoadFailedMsg)
	require.True(t, ok)
	assert.EqualError(t, failed.Err, "HTTP error! status: 404")
}

func TestUpdate_ItemsLoadedRendersAllInOrder(t *testing.T) {
	m := loadedModel(t, sampleItems())

	assert.Equal(t, LoadDone, m.LoadState())
	assert.Equal(t, catalog.FilterAll, m.Filter())
	assert.Equal(t, []string{"DevLens", "StyleSpy", "SpeedBoost", "JSONWizard"}, cardNames(m))
	assert.True(t, m.Cards()[0].Checked)
	assert.False(t, m.Cards()[2].Checked)
}

func TestUpdate_ItemsLoadedEmpty(t *testing.T) {
	m := loadedModel(t, []catalog.Item{})

	assert.Equal(t, LoadDone, m.LoadState())
	assert.Empty(t, m.Cards())
}

func TestUpdate_LoadFailedLeavesListUnrendered(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, LoadFailedMsg{Err: errors.New("boom")})
	assert.Equal(t, LoadFailed, m.LoadState())
	assert.Empty(t, m.Cards())

	// controls are inert without a dataset
	m = send(t, m, runeKey("3"))
	assert.Equal(t, catalog.FilterAll, m.Filter())
}

func TestUpdate_KeysIgnoredBeforeLoad(t *testing.T) {
	m := newTestModel(t, sampleItems())

	m = send(t, m, runeKey("2"))
	m = send(t, m, runeKey("x"))
	assert.Equal(t, catalog.FilterAll, m.Filter())
	assert.Equal(t, LoadPending, m.LoadState())
}

func TestUpdate_FilterSubsets(t *testing.T) {
	m := loadedModel(t, sampleItems())

	m = send(t, m, FilterSelectedMsg{Filter: catalog.FilterActive})
	assert.Equal(t, []string{"DevLens", "StyleSpy", "JSONWizard"}, cardNames(m))
	assert.Equal(t, catalog.FilterActive, m.Filter())

	m = send(t, m, FilterSelectedMsg{Filter: catalog.FilterInactive})
	assert.Equal(t, []string{"SpeedBoost"}, cardNames(m))

	m = send(t, m, FilterSelectedMsg{Filter: catalog.FilterAll})
	assert.Len(t, m.Cards(), 4)
}

func TestUpdate_FilterKeys(t *testing.T) {
	m := loadedModel(t, sampleItems())

	m = send(t, m, runeKey("3"))
	assert.Equal(t, catalog.FilterInactive, m.Filter())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, catalog.FilterAll, m.Filter())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, catalog.FilterInactive, m.Filter())

	m = send(t, m, runeKey("2"))
	assert.Equal(t, catalog.FilterActive, m.Filter())

	m = send(t, m, runeKey("1"))
	assert.Equal(t, catalog.FilterAll, m.Filter())
}

func TestUpdate_ToggleKeepsCardVisible(t *testing.T) {
	m := loadedModel(t, sampleItems())
	m = send(t, m, FilterSelectedMsg{Filter: catalog.FilterActive})

	m = send(t, m, ToggleItemMsg{Name: "DevLens", Active: false})

	// still shown under Active until the next re-render
	assert.Equal(t, []string{"DevLens", "StyleSpy", "JSONWizard"}, cardNames(m))
	assert.False(t, m.Cards()[0].Checked)

	item, ok := m.store.Get("DevLens")
	require.True(t, ok)
	assert.False(t, item.IsActive)

	m = send(t, m, FilterSelectedMsg{Filter: catalog.FilterActive})
	assert.Equal(t, []string{"StyleSpy", "JSONWizard"}, cardNames(m))
}

func TestUpdate_ToggleKeyFlipsFocusedCard(t *testing.T) {
	m := loadedModel(t, sampleItems())
	m.MoveCursorDown()
	m.MoveCursorDown()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	item, ok := m.store.Get("SpeedBoost")
	require.True(t, ok)
	assert.True(t, item.IsActive)
	assert.True(t, m.Cards()[2].Checked)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	item, _ = m.store.Get("SpeedBoost")
	assert.False(t, item.IsActive)
}

func TestUpdate_ToggleUnknownNameIsNoop(t *testing.T) {
	m := loadedModel(t, sampleItems())
	before := m.store.Items()

	m = send(t, m, ToggleItemMsg{Name: "Missing", Active: false})
	assert.Equal(t, before, m.store.Items())
	assert.Len(t, m.Cards(), 4)
}

func TestUpdate_RemoveUnderAll(t *testing.T) {
	m := loadedModel(t, sampleItems())

	m = send(t, m, RemoveItemMsg{Name: "StyleSpy"})
	assert.Equal(t, []string{"DevLens", "SpeedBoost", "JSONWizard"}, cardNames(m))
	assert.Equal(t, 3, m.store.Len())
}

func TestUpdate_RemoveReRendersUnderActiveFilter(t *testing.T) {
	items := []catalog.Item{
		{Name: "A", IsActive: true},
		{Name: "B", IsActive: true},
		{Name: "C", IsActive: false},
	}
	m := loadedModel(t, items)
	m = send(t, m, FilterSelectedMsg{Filter: catalog.FilterActive})

	// A was deactivated but is still shown; removing B re-renders Active
	m = send(t, m, ToggleItemMsg{Name: "A", Active: false})
	assert.Equal(t, []string{"A", "B"}, cardNames(m))

	m = send(t, m, RemoveItemMsg{Name: "B"})
	assert.Empty(t, cardNames(m))
	assert.Equal(t, catalog.FilterActive, m.Filter())
	assert.Equal(t, 2, m.store.Len())
}

func TestUpdate_RemoveKeyTargetsFocusedCard(t *testing.T) {
	m := loadedModel(t, sampleItems())
	m.MoveCursorDown()

	m = send(t, m, runeKey("x"))
	assert.Equal(t, []string{"DevLens", "SpeedBoost", "JSONWizard"}, cardNames(m))
}

func TestUpdate_KeysDispatchMessages(t *testing.T) {
	m := loadedModel(t, sampleItems())
	m.MoveCursorDown()

	cases := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{name: "remove", key: runeKey("x"), want: RemoveItemMsg{Name: "StyleSpy"}},
		{name: "toggle", key: tea.KeyMsg{Type: tea.KeyEnter}, want: ToggleItemMsg{Name: "StyleSpy", Active: false}},
		{name: "filter", key: runeKey("3"), want: FilterSelectedMsg{Filter: catalog.FilterInactive}},
		{name: "next filter", key: tea.KeyMsg{Type: tea.KeyTab}, want: FilterStepMsg{Step: 1}},
		{name: "previous filter", key: tea.KeyMsg{Type: tea.KeyShiftTab}, want: FilterStepMsg{Step: -1}},
		{name: "theme", key: runeKey("t"), want: ToggleThemeMsg{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, cmd := m.Update(tc.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tc.want, cmd())
		})
	}

	// the key alone leaves the store untouched
	updated, _ := m.Update(runeKey("x"))
	assert.Equal(t, 4, updated.(Model).store.Len())
}

func TestUpdate_ToggleKeyFlipsCheckboxBeforeStore(t *testing.T) {
	m := loadedModel(t, sampleItems())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.False(t, m.Cards()[0].Checked)
	item, _ := m.store.Get("DevLens")
	assert.True(t, item.IsActive)

	m = send(t, m, cmd())
	item, _ = m.store.Get("DevLens")
	assert.False(t, item.IsActive)
}

func TestUpdate_RemoveUnknownNameIsNoop(t *testing.T) {
	m := loadedModel(t, sampleItems())

	m = send(t, m, RemoveItemMsg{Name: "Missing"})
	assert.Len(t, m.Cards(), 4)
	assert.Equal(t, 4, m.store.Len())
}

func TestUpdate_ThemeTogglePersists(t *testing.T) {
	ctrl, store := newThemeController(t)
	m := NewModel(Options{Theme: ctrl})
	require.Equal(t, theme.Light, m.Mode())

	m = send(t, m, runeKey("t"))
	assert.Equal(t, theme.Dark, m.Mode())

	value, ok, err := store.Get(context.Background(), theme.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)

	m = send(t, m, ToggleThemeMsg{})
	assert.Equal(t, theme.Light, m.Mode())
	value, _, _ = store.Get(context.Background(), theme.StorageKey)
	assert.Equal(t, "light", value)
}

func TestUpdate_ThemeToggleWorksBeforeLoad(t *testing.T) {
	m := newTestModel(t, sampleItems())

	m = send(t, m, runeKey("t"))
	assert.Equal(t, theme.Dark, m.Mode())
	assert.Equal(t, LoadPending, m.LoadState())
}

func TestUpdate_ThemeApplied(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, ThemeAppliedMsg{Mode: theme.Dark})
	assert.Equal(t, theme.Dark, m.Mode())
	assert.Equal(t, theme.PaletteFor(theme.Dark), m.styles.palette)
}

func TestUpdate_ToggleThemeDispatchesApplied(t *testing.T) {
	m := newTestModel(t, nil)

	updated, cmd := m.Update(ToggleThemeMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, ThemeAppliedMsg{Mode: theme.Dark}, cmd())
	assert.Equal(t, theme.Light, updated.(Model).Mode())
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runeKey("?"))
	assert.True(t, m.help.ShowAll)
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
