package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bookverse/bookverse/internal/domain"
	"github.com/bookverse/bookverse/internal/tui/styles"
)

// BookRow pairs a book with its current bookmark state for rendering.
type BookRow struct {
	Book       domain.Book
	Bookmarked bool
}

// BookList renders the browsable grid of book cards as a scrolling
// list: title, author, category tag, and a truncated description.
type BookList struct {
	rows   []BookRow
	cursor int
	offset int
	width  int
	height int
}

// NewBookList creates an empty book list.
func NewBookList() BookList {
	return BookList{}
}

// SetRows replaces the list contents and clamps the cursor.
func (l *BookList) SetRows(rows []BookRow) {
	l.rows = rows
	if l.cursor >= len(rows) {
		l.cursor = 0
		l.offset = 0
	}
}

// Len returns the number of rows.
func (l *BookList) Len() int { return len(l.rows) }

// Selected returns the book under the cursor, or nil for an empty list.
func (l *BookList) Selected() *domain.Book {
	if l.cursor < 0 || l.cursor >= len(l.rows) {
		return nil
	}
	return &l.rows[l.cursor].Book
}

// MarkBookmark updates the bookmark flag for the given book id.
func (l *BookList) MarkBookmark(id int64, bookmarked bool) {
	for i := range l.rows {
		if l.rows[i].Book.ID == id {
			l.rows[i].Bookmarked = bookmarked
		}
	}
}

// MoveUp moves the cursor up one row.
func (l *BookList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.scrollIntoView()
}

// MoveDown moves the cursor down one row.
func (l *BookList) MoveDown() {
	if l.cursor < len(l.rows)-1 {
		l.cursor++
	}
	l.scrollIntoView()
}

// PageUp moves the cursor up one page.
func (l *BookList) PageUp() {
	l.cursor -= l.pageSize()
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.scrollIntoView()
}

// PageDown moves the cursor down one page.
func (l *BookList) PageDown() {
	l.cursor += l.pageSize()
	if l.cursor > len(l.rows)-1 {
		l.cursor = len(l.rows) - 1
	}
	l.scrollIntoView()
}

// SetSize updates the component dimensions.
func (l *BookList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.scrollIntoView()
}

// rowHeight is lines per book card: title, byline, gap.
const rowHeight = 3

func (l *BookList) pageSize() int {
	n := l.height / rowHeight
	if n < 1 {
		n = 1
	}
	return n
}

func (l *BookList) scrollIntoView() {
	page := l.pageSize()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+page {
		l.offset = l.cursor - page + 1
	}
}

// View renders the visible window of book cards.
func (l BookList) View(theme *styles.Theme) string {
	if len(l.rows) == 0 {
		return theme.Browser.Render(theme.Dim.Render("No books found in this category."))
	}

	var b strings.Builder
	page := l.pageSize()
	end := l.offset + page
	if end > len(l.rows) {
		end = len(l.rows)
	}

	for i := l.offset; i < end; i++ {
		row := l.rows[i]
		mark := styles.UnbookmarkedChar
		markStyle := theme.Dim
		if row.Bookmarked {
			mark = styles.BookmarkedChar
			markStyle = theme.Accent
		}

		title := truncate(row.Book.Title, l.width-8)
		line := fmt.Sprintf("%s %s", markStyle.Render(mark), title)
		if i == l.cursor {
			line = theme.SelectedItem.Render(fmt.Sprintf("%s %s", mark, title))
		} else {
			line = theme.NormalItem.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")

		byline := fmt.Sprintf("  %s · By %s",
			theme.CategoryTag.Render(row.Book.Category),
			row.Book.Author)
		b.WriteString(theme.Subtitle.Render(truncate(byline, l.width-4)))
		b.WriteString("\n\n")
	}

	footer := theme.Footer.Render(fmt.Sprintf("%d/%d", l.cursor+1, len(l.rows)))
	content := lipgloss.JoinVertical(lipgloss.Left, b.String(), footer)
	return theme.Browser.Width(l.width).Height(l.height).Render(content)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
