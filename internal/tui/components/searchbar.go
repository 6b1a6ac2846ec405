package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bookverse/bookverse/internal/domain"
	"github.com/bookverse/bookverse/internal/search"
	"github.com/bookverse/bookverse/internal/tui/styles"
)

// SearchBar is the incremental search overlay. Results update on every
// keystroke; a blank query shows nothing rather than everything.
type SearchBar struct {
	input     textinput.Model
	results   []search.Result
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string
}

// NewSearchBar creates the search overlay component.
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search by title, author, or category..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "

	return SearchBar{input: ti}
}

// Show makes the overlay visible with a cleared query.
func (s *SearchBar) Show() {
	s.visible = true
	s.input.Focus()
	s.input.SetValue("")
	s.results = nil
	s.cursor = 0
	s.prevQuery = ""
}

// Hide dismisses the overlay.
func (s *SearchBar) Hide() {
	s.visible = false
	s.input.Blur()
}

// IsVisible reports whether the overlay is showing.
func (s SearchBar) IsVisible() bool { return s.visible }

// Query returns the current query text.
func (s SearchBar) Query() string { return s.input.Value() }

// QueryChanged reports whether the query changed since the last check.
func (s *SearchBar) QueryChanged() bool {
	current := s.input.Value()
	if current != s.prevQuery {
		s.prevQuery = current
		return true
	}
	return false
}

// SetResults replaces the result list.
func (s *SearchBar) SetResults(results []search.Result) {
	s.results = results
	s.cursor = 0
}

// Selected returns the highlighted result's book, or nil.
func (s SearchBar) Selected() *domain.Book {
	if len(s.results) == 0 || s.cursor >= len(s.results) {
		return nil
	}
	return &s.results[s.cursor].Book
}

// MoveUp moves the result cursor up.
func (s *SearchBar) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the result cursor down.
func (s *SearchBar) MoveDown() {
	if s.cursor < len(s.results)-1 {
		s.cursor++
	}
}

// SetSize updates the component dimensions.
func (s *SearchBar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = width - 10
}

// Init initializes the component.
func (s SearchBar) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the text input.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !s.visible {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the overlay: input line plus result rows with the
// matched title characters highlighted.
func (s SearchBar) View(theme *styles.Theme) string {
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	if s.Query() == "" {
		b.WriteString(theme.Dim.Render("Type to search."))
	} else if len(s.results) == 0 {
		b.WriteString(theme.Dim.Render("No matches."))
	}

	maxRows := s.height - 6
	if maxRows < 1 {
		maxRows = 1
	}
	for i, r := range s.results {
		if i >= maxRows {
			b.WriteString(theme.Dim.Render(fmt.Sprintf("… and %d more", len(s.results)-maxRows)))
			break
		}
		title := highlightTitle(r.Book.Title, r.MatchedIndexes, theme)
		line := fmt.Sprintf("%s  %s", title,
			theme.Subtitle.Render(r.Book.Author+" · "+r.Book.Category))
		if i == s.cursor {
			line = theme.Accent.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	box := theme.ActiveBorder.Width(s.width - 4).Render(b.String())
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, box)
}

// highlightTitle styles the matched rune positions within the title.
func highlightTitle(title string, matched []int, theme *styles.Theme) string {
	if len(matched) == 0 {
		return title
	}
	set := make(map[int]bool, len(matched))
	for _, idx := range matched {
		set[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(title) {
		if set[i] {
			b.WriteString(theme.Highlight.Render(string(r)))
		} else {
			b.WriteString(string(r))
		}
	}
	return b.String()
}
