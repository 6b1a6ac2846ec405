package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bookverse/bookverse/internal/catalog"
)

// loadCatalogCmd rebuilds the unified catalog. Load never fails; a
// missing canonical source just yields the custom books alone.
func loadCatalogCmd(loader *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		books := loader.Load(context.Background())
		return CatalogLoadedMsg{Books: books}
	}
}
