package components

import (
	"strings"

	"github.com/bookverse/bookverse/internal/tui/styles"
)

// Sidebar is the category tab strip, rendered vertically. It mirrors
// the web app's category tabs: one entry per distinct category plus
// the "All" sentinel at the top.
type Sidebar struct {
	categories []string
	cursor     int
	width      int
	height     int
}

// NewSidebar creates an empty sidebar.
func NewSidebar() Sidebar {
	return Sidebar{}
}

// SetCategories replaces the category list, keeping the selection when
// the previously selected category still exists.
func (s *Sidebar) SetCategories(categories []string) {
	prev := s.Selected()
	s.categories = categories
	s.cursor = 0
	for i, c := range categories {
		if c == prev {
			s.cursor = i
			break
		}
	}
}

// Select moves the cursor to the named category if present.
func (s *Sidebar) Select(category string) {
	for i, c := range s.categories {
		if c == category {
			s.cursor = i
			return
		}
	}
}

// Next advances to the next category, wrapping around.
func (s *Sidebar) Next() {
	if len(s.categories) == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % len(s.categories)
}

// Prev moves to the previous category, wrapping around.
func (s *Sidebar) Prev() {
	if len(s.categories) == 0 {
		return
	}
	s.cursor = (s.cursor - 1 + len(s.categories)) % len(s.categories)
}

// Selected returns the current category, or the empty string when the
// sidebar has no entries yet.
func (s *Sidebar) Selected() string {
	if s.cursor < 0 || s.cursor >= len(s.categories) {
		return ""
	}
	return s.categories[s.cursor]
}

// SetSize updates the component dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// View renders the sidebar.
func (s Sidebar) View(theme *styles.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Categories"))
	b.WriteString("\n\n")

	for i, cat := range s.categories {
		line := cat
		if i == s.cursor {
			b.WriteString(theme.SelectedItem.Render(line))
		} else {
			b.WriteString(theme.NormalItem.Render(line))
		}
		b.WriteString("\n")
	}

	return theme.Sidebar.Width(s.width).Height(s.height).Render(b.String())
}
