package domain

// Theme preference literals as persisted in the store. Absence of a
// persisted value means "follow the ambient signal".
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store handles durable local state (BoltDB + memory).
// Reads are tolerant: a missing or unparseable value reports ok=false
// and callers treat that as an empty collection, never a failure.
type Store interface {
	// === Custom book registry ===
	GetCustomBooks() ([]Book, bool)
	SaveCustomBooks(books []Book) error

	// === Bookmarks ===
	GetBookmarks() ([]int64, bool)
	SaveBookmarks(ids []int64) error

	// === Theme preference ===
	GetTheme() (string, bool)
	SaveTheme(theme string) error
	DeleteTheme()

	Close() error
}
