package theme

import (
	"log/slog"

	"github.com/bookverse/bookverse/internal/domain"
)

// State holds the resolved theme. The preference is tri-state: explicit
// light, explicit dark, or unset (follow the ambient signal).
type State struct {
	store  domain.Store
	logger *slog.Logger

	isDark bool
}

// Resolve builds the theme state at startup. A persisted explicit value
// wins; otherwise the ambient signal decides, and that inferred value
// is NOT written back — only a user toggle makes the choice explicit.
func Resolve(store domain.Store, ambientDark bool, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	s := &State{store: store, logger: logger}

	if saved, ok := store.GetTheme(); ok {
		s.isDark = saved == domain.ThemeDark
		logger.Debug("theme from store", "dark", s.isDark)
		return s
	}

	s.isDark = ambientDark
	logger.Debug("theme from ambient signal", "dark", s.isDark)
	return s
}

// IsDark reports the currently applied theme.
func (s *State) IsDark() bool {
	return s.isDark
}

// Toggle flips the theme and persists the explicit choice.
func (s *State) Toggle() bool {
	s.isDark = !s.isDark
	value := domain.ThemeLight
	if s.isDark {
		value = domain.ThemeDark
	}
	if err := s.store.SaveTheme(value); err != nil {
		s.logger.Error("failed to save theme", "error", err)
	}
	return s.isDark
}
