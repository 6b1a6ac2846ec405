package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bookverse/bookverse/internal/domain"
	"github.com/bookverse/bookverse/internal/reader"
	"github.com/bookverse/bookverse/internal/tui/styles"
)

// ReaderPane displays an open book. A terminal has no font sizes, so
// the reader maps the font-size preference to column width: bigger
// "font" means a narrower, more generously spaced column.
type ReaderPane struct {
	viewport viewport.Model
	book     *domain.Book
	fontSize int
	width    int
	height   int
}

// NewReaderPane creates the reader component.
func NewReaderPane() ReaderPane {
	return ReaderPane{viewport: viewport.New(0, 0), fontSize: reader.DefaultFontSize}
}

// SetBook loads a book into the pane, resetting scroll position.
func (p *ReaderPane) SetBook(book domain.Book) {
	b := book
	p.book = &b
	p.viewport.GotoTop()
	p.reflow()
}

// Clear drops the open book.
func (p *ReaderPane) Clear() {
	p.book = nil
}

// SetFontSize applies a new font-size preference and rewraps.
func (p *ReaderPane) SetFontSize(size int) {
	p.fontSize = size
	p.reflow()
}

// SetSize updates the component dimensions.
func (p *ReaderPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = width
	p.viewport.Height = height - 4 // header + footer chrome
	p.reflow()
}

// Update forwards scroll events to the viewport.
func (p ReaderPane) Update(msg tea.Msg) (ReaderPane, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// columnWidth maps the font size to a text column width.
func (p ReaderPane) columnWidth() int {
	if p.width == 0 {
		return 72
	}
	w := p.width * reader.DefaultFontSize / p.fontSize
	if w > p.width-4 {
		w = p.width - 4
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (p *ReaderPane) reflow() {
	if p.book == nil {
		return
	}

	text := p.book.ReaderText()
	if text == "" && p.book.HasSource() {
		text = "This book is available as an external document:\n\n" + p.book.PDFURL
	}
	if text == "" {
		text = "No content available for this book."
	}

	p.viewport.SetContent(wrapText(text, p.columnWidth()))
}

// View renders the reader chrome and content.
func (p ReaderPane) View(theme *styles.Theme, bookmarked bool) string {
	if p.book == nil {
		return ""
	}

	mark := styles.UnbookmarkedChar
	markStyle := theme.Dim
	if bookmarked {
		mark = styles.BookmarkedChar
		markStyle = theme.Accent
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		theme.Title.Render(p.book.Title),
		theme.Subtitle.Render("  by "+p.book.Author),
		"  ",
		markStyle.Render(mark),
	)

	footer := theme.Footer.Render(fmt.Sprintf("Aa %dpx · %3.0f%% · b bookmark · +/- text · esc close",
		p.fontSize, p.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Repeat("─", max(p.width, 1)),
		p.viewport.View(),
		footer,
	)
}

// wrapText wraps text to the given column width, preserving paragraph
// breaks.
func wrapText(text string, width int) string {
	var out strings.Builder
	for i, para := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(wrapLine(para, width))
	}
	return out.String()
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}

	var out strings.Builder
	lineLen := 0
	for i, word := range words {
		wordLen := len([]rune(word))
		if lineLen > 0 && lineLen+1+wordLen > width {
			out.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			out.WriteString(" ")
			lineLen++
		}
		out.WriteString(word)
		lineLen += wordLen
	}
	return out.String()
}
