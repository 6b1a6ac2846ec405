package reader

import (
	"log/slog"

	"github.com/bookverse/bookverse/internal/bookmarks"
	"github.com/bookverse/bookverse/internal/domain"
)

// Font size bounds for the reader display.
const (
	DefaultFontSize = 18
	FontSizeStep    = 2
	MinFontSize     = 12
)

// Session tracks the single book currently open for reading. At most
// one session is active at a time; font size is a reader-wide
// preference that survives across books within a run but is never
// persisted.
type Session struct {
	bookmarks *bookmarks.Service
	logger    *slog.Logger

	active   *domain.Book
	fontSize int
}

// NewSession creates a reader session manager with no open book.
func NewSession(bm *bookmarks.Service, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{bookmarks: bm, logger: logger, fontSize: DefaultFontSize}
}

// Open sets the active book. Font size is deliberately left alone.
func (s *Session) Open(book domain.Book) {
	b := book
	s.active = &b
	s.logger.Debug("opened reader", "id", book.ID, "title", book.Title)
}

// Close clears the active book. The display collaborator stops any
// further loading; our contract is only that no book reports active.
func (s *Session) Close() {
	if s.active != nil {
		s.logger.Debug("closed reader", "id", s.active.ID)
	}
	s.active = nil
}

// Active returns the currently open book, or nil.
func (s *Session) Active() *domain.Book {
	return s.active
}

// FontSize returns the current display font size.
func (s *Session) FontSize() int {
	return s.fontSize
}

// AdjustFontSize changes the font size by delta and returns the new
// size. Decreases below the floor are silently ignored.
func (s *Session) AdjustFontSize(delta int) int {
	next := s.fontSize + delta
	if next < MinFontSize {
		return s.fontSize
	}
	s.fontSize = next
	return s.fontSize
}

// ToggleBookmark toggles the active book's bookmark and returns the new
// state. With no open book it is a no-op reporting false.
func (s *Session) ToggleBookmark() bool {
	if s.active == nil {
		s.logger.Debug("bookmark toggle ignored, no active book")
		return false
	}
	return s.bookmarks.Toggle(s.active.ID)
}

// IsBookmarked reports whether the active book is bookmarked. False
// when no book is open.
func (s *Session) IsBookmarked() bool {
	if s.active == nil {
		return false
	}
	return s.bookmarks.IsBookmarked(s.active.ID)
}
