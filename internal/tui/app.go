package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bookverse/bookverse/internal/bookmarks"
	"github.com/bookverse/bookverse/internal/catalog"
	"github.com/bookverse/bookverse/internal/domain"
	"github.com/bookverse/bookverse/internal/reader"
	"github.com/bookverse/bookverse/internal/search"
	"github.com/bookverse/bookverse/internal/theme"
	"github.com/bookverse/bookverse/internal/tui/components"
	"github.com/bookverse/bookverse/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateReading
	StateHelp
)

// Layout proportions
const (
	SidebarPercent  = 22
	MinSidebarWidth = 16
	ChromeHeight    = 1
)

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState
	Ready bool

	// Services
	Loader    *catalog.Loader
	SearchSvc *search.Service
	Session   *reader.Session
	Bookmarks *bookmarks.Service
	Theme     *theme.State

	// UI
	Keys      KeyMap
	Styles    *styles.Theme
	Sidebar   components.Sidebar
	BookList  components.BookList
	SearchBar components.SearchBar
	Reader    components.ReaderPane

	// Data
	books           []domain.Book
	status          string
	defaultCategory string

	width  int
	height int
}

// NewModel builds the application model from its services. The default
// category selects the starting sidebar tab once the catalog loads.
func NewModel(loader *catalog.Loader, searchSvc *search.Service, session *reader.Session, bm *bookmarks.Service, th *theme.State, defaultCategory string) Model {
	return Model{
		State:           StateBrowsing,
		Loader:          loader,
		SearchSvc:       searchSvc,
		Session:         session,
		Bookmarks:       bm,
		Theme:           th,
		Keys:            DefaultKeyMap(),
		Styles:          styles.NewTheme(th.IsDark()),
		Sidebar:         components.NewSidebar(),
		BookList:        components.NewBookList(),
		SearchBar:       components.NewSearchBar(),
		Reader:          components.NewReaderPane(),
		defaultCategory: defaultCategory,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCatalogCmd(m.Loader), m.SearchBar.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case CatalogLoadedMsg:
		firstLoad := m.books == nil
		m.books = msg.Books
		m.Sidebar.SetCategories(domain.Categories(m.books))
		if firstLoad && m.defaultCategory != "" {
			m.Sidebar.Select(m.defaultCategory)
		}
		m.refreshBookList()
		m.status = fmt.Sprintf("%d books", len(m.books))
		return m, nil

	case ErrMsg:
		m.status = msg.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Scroll and blink events for the active surface
	var cmd tea.Cmd
	switch m.State {
	case StateReading:
		m.Reader, cmd = m.Reader.Update(msg)
	case StateSearching:
		m.SearchBar, cmd = m.SearchBar.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateSearching:
		return m.handleSearchKeys(msg)
	case StateReading:
		return m.handleReaderKeys(msg)
	case StateHelp:
		m.State = StateBrowsing
		return m, nil
	}
	return m.handleBrowseKeys(msg)
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, m.Keys.Search):
		m.State = StateSearching
		m.SearchBar.Show()
		return m, nil

	case key.Matches(msg, m.Keys.ThemeToggle):
		m.applyTheme(m.Theme.Toggle())
		return m, nil

	case key.Matches(msg, m.Keys.Refresh):
		m.status = "reloading catalog..."
		return m, loadCatalogCmd(m.Loader)

	case key.Matches(msg, m.Keys.Up):
		m.BookList.MoveUp()
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		m.BookList.MoveDown()
		return m, nil

	case key.Matches(msg, m.Keys.PageUp):
		m.BookList.PageUp()
		return m, nil

	case key.Matches(msg, m.Keys.PageDown):
		m.BookList.PageDown()
		return m, nil

	case key.Matches(msg, m.Keys.PrevCat):
		m.Sidebar.Prev()
		m.refreshBookList()
		return m, nil

	case key.Matches(msg, m.Keys.NextCat):
		m.Sidebar.Next()
		m.refreshBookList()
		return m, nil

	case key.Matches(msg, m.Keys.Bookmark):
		if book := m.BookList.Selected(); book != nil {
			now := m.Bookmarks.Toggle(book.ID)
			m.BookList.MarkBookmark(book.ID, now)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Enter):
		if book := m.BookList.Selected(); book != nil {
			m.openReader(*book)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Escape):
		m.SearchBar.Hide()
		m.State = StateBrowsing
		return m, nil

	case msg.Type == tea.KeyUp:
		m.SearchBar.MoveUp()
		return m, nil

	case msg.Type == tea.KeyDown:
		m.SearchBar.MoveDown()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if book := m.SearchBar.Selected(); book != nil {
			m.SearchBar.Hide()
			m.openReader(*book)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	if m.SearchBar.QueryChanged() {
		m.SearchBar.SetResults(m.SearchSvc.Query(m.books, m.SearchBar.Query()))
	}
	return m, cmd
}

func (m Model) handleReaderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Escape), key.Matches(msg, m.Keys.Quit):
		m.Session.Close()
		m.Reader.Clear()
		m.State = StateBrowsing
		return m, nil

	case key.Matches(msg, m.Keys.Bookmark):
		now := m.Session.ToggleBookmark()
		if book := m.Session.Active(); book != nil {
			m.BookList.MarkBookmark(book.ID, now)
		}
		return m, nil

	case key.Matches(msg, m.Keys.ThemeToggle):
		m.applyTheme(m.Theme.Toggle())
		return m, nil

	case key.Matches(msg, m.Keys.FontUp):
		m.Reader.SetFontSize(m.Session.AdjustFontSize(reader.FontSizeStep))
		return m, nil

	case key.Matches(msg, m.Keys.FontDown):
		m.Reader.SetFontSize(m.Session.AdjustFontSize(-reader.FontSizeStep))
		return m, nil
	}

	var cmd tea.Cmd
	m.Reader, cmd = m.Reader.Update(msg)
	return m, cmd
}

// openReader starts a reading session for the book.
func (m *Model) openReader(book domain.Book) {
	m.Session.Open(book)
	m.Reader.SetBook(book)
	m.Reader.SetFontSize(m.Session.FontSize())
	m.State = StateReading
}

// refreshBookList applies the selected category filter to the catalog.
func (m *Model) refreshBookList() {
	filtered := catalog.FilterByCategory(m.books, m.Sidebar.Selected())
	rows := make([]components.BookRow, len(filtered))
	for i, b := range filtered {
		rows[i] = components.BookRow{Book: b, Bookmarked: m.Bookmarks.IsBookmarked(b.ID)}
	}
	m.BookList.SetRows(rows)
}

func (m *Model) applyTheme(dark bool) {
	m.Styles = styles.NewTheme(dark)
}

func (m *Model) updateLayout() {
	sidebarWidth := m.width * SidebarPercent / 100
	if sidebarWidth < MinSidebarWidth {
		sidebarWidth = MinSidebarWidth
	}
	contentHeight := m.height - ChromeHeight

	m.Sidebar.SetSize(sidebarWidth, contentHeight)
	m.BookList.SetSize(m.width-sidebarWidth, contentHeight)
	m.SearchBar.SetSize(m.width, contentHeight)
	m.Reader.SetSize(m.width, contentHeight)
}

func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	var body string
	switch m.State {
	case StateReading:
		body = m.Reader.View(m.Styles, m.Session.IsBookmarked())
	case StateSearching:
		body = m.SearchBar.View(m.Styles)
	case StateHelp:
		body = m.renderHelp()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.Sidebar.View(m.Styles),
			m.BookList.View(m.Styles),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

func (m Model) renderFooter() string {
	mode := "light"
	if m.Theme.IsDark() {
		mode = "dark"
	}
	help := "/ search · t theme · b bookmark · r reload · ? help · q quit"
	left := m.Styles.Footer.Render(help)
	right := m.Styles.Footer.Render(fmt.Sprintf("%s · %s", m.status, mode))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"j/k, ↑/↓", "move selection"},
		{"h/l, ←/→", "switch category"},
		{"enter", "open book in reader"},
		{"/", "search"},
		{"b", "toggle bookmark"},
		{"t", "toggle light/dark theme"},
		{"+/-", "reader text size"},
		{"r", "reload catalog"},
		{"esc", "close overlay / reader"},
		{"q", "quit"},
	}

	out := m.Styles.Title.Render("Bookverse keys") + "\n\n"
	for _, r := range rows {
		out += fmt.Sprintf("  %s  %s\n",
			m.Styles.Accent.Render(fmt.Sprintf("%-10s", r.key)),
			m.Styles.Subtitle.Render(r.desc))
	}
	out += "\n" + m.Styles.Dim.Render("press any key to close")

	box := m.Styles.ActiveBorder.Padding(1, 2).Render(out)
	return lipgloss.Place(m.width, m.height-ChromeHeight, lipgloss.Center, lipgloss.Center, box)
}
