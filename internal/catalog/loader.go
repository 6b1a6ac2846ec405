package catalog

import (
	"context"
	"log/slog"

	"github.com/bookverse/bookverse/internal/domain"
)

// Loader builds the unified catalog: canonical entries first, custom
// registry entries after, in registry order. Each Load rebuilds the
// catalog from scratch; callers keep the result for as long as it suits
// them and call Load again when they need a fresh view.
type Loader struct {
	source domain.Source
	store  domain.Store
	logger *slog.Logger
}

// NewLoader creates a new catalog loader.
func NewLoader(source domain.Source, store domain.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{source: source, store: store, logger: logger}
}

// Load fetches the canonical catalog and appends the custom registry.
// A failed or unparseable canonical fetch degrades to an empty
// canonical portion; Load never returns an error.
func (l *Loader) Load(ctx context.Context) []domain.Book {
	canonical, err := l.source.FetchCatalog(ctx)
	if err != nil {
		l.logger.Warn("canonical catalog unavailable, using custom books only", "error", err)
		canonical = nil
	}

	custom, _ := l.store.GetCustomBooks()

	unified := make([]domain.Book, 0, len(canonical)+len(custom))
	unified = append(unified, canonical...)
	unified = append(unified, custom...)

	l.logger.Debug("loaded catalog", "canonical", len(canonical), "custom", len(custom))
	return unified
}
