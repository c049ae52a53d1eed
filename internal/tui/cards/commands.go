package cards

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/extman/internal/catalog"
)

// ItemLoader fetches the item dataset.
type ItemLoader interface {
	Fetch(ctx context.Context, source string) ([]catalog.Item, error)
}

// loadItemsCmd performs the single startup fetch
func loadItemsCmd(ctx context.Context, l ItemLoader, source string) tea.Cmd {
	return func() tea.Msg {
		if l == nil {
			return LoadFailedMsg{Err: fmt.Errorf("no loader configured")}
		}

		items, err := l.Fetch(ctx, source)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}

		return ItemsLoadedMsg{Items: items}
	}
}

// dispatch delivers msg back to Update.
func dispatch(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
