package bookmarks

import (
	"log/slog"

	"github.com/bookverse/bookverse/internal/domain"
)

// Service is the persisted set of bookmarked book ids. The set is
// loaded once at construction and written back in full after every
// toggle; toggles are rare, user-driven events, so durability wins
// over batching.
type Service struct {
	store  domain.Store
	ids    map[int64]bool
	order  []int64
	logger *slog.Logger
}

// NewService loads the bookmark set from the store.
func NewService(store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, ids: make(map[int64]bool), logger: logger}
	saved, _ := store.GetBookmarks()
	for _, id := range saved {
		if s.ids[id] {
			continue // drop duplicates from a hand-edited store
		}
		s.ids[id] = true
		s.order = append(s.order, id)
	}
	return s
}

// IsBookmarked reports membership.
func (s *Service) IsBookmarked(id int64) bool {
	return s.ids[id]
}

// Toggle adds the id if absent or removes it if present, persists the
// updated set, and returns the new membership state.
func (s *Service) Toggle(id int64) bool {
	if s.ids[id] {
		delete(s.ids, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	} else {
		s.ids[id] = true
		s.order = append(s.order, id)
	}

	if err := s.store.SaveBookmarks(s.List()); err != nil {
		s.logger.Error("failed to save bookmarks", "error", err)
	}
	now := s.ids[id]
	s.logger.Debug("toggled bookmark", "id", id, "bookmarked", now)
	return now
}

// List returns the bookmarked ids in the order they were added.
func (s *Service) List() []int64 {
	out := make([]int64, len(s.order))
	copy(out, s.order)
	return out
}
