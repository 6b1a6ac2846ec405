package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber      = lipgloss.Color("#D97706")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Ink        = lipgloss.Color("#111827")
	Paper      = lipgloss.Color("#E7E5E4")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// Bookmark indicator characters
const (
	BookmarkedChar   = "★"
	UnbookmarkedChar = "☆"
)

// Theme bundles the styles for one color scheme. Light and dark
// variants mirror the web app's two themes.
type Theme struct {
	Dark bool

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Highlight lipgloss.Style

	CategoryTag  lipgloss.Style
	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style

	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style

	Sidebar lipgloss.Style
	Browser lipgloss.Style
	Footer  lipgloss.Style
}

// NewTheme builds the style set for the given scheme.
func NewTheme(dark bool) *Theme {
	text := Ink
	subtle := SlateLight
	if dark {
		text = White
		subtle = LightGray
	}

	t := &Theme{Dark: dark}

	t.Title = lipgloss.NewStyle().Foreground(text).Bold(true)
	t.Subtitle = lipgloss.NewStyle().Foreground(subtle)
	t.Dim = lipgloss.NewStyle().Foreground(DimGray)
	t.Accent = lipgloss.NewStyle().Foreground(Amber)
	t.Error = lipgloss.NewStyle().Foreground(Red)
	t.Success = lipgloss.NewStyle().Foreground(Green)

	t.Highlight = lipgloss.NewStyle().
		Foreground(White).
		Background(Amber)

	t.CategoryTag = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.SelectedItem = lipgloss.NewStyle().
		Foreground(White).
		Background(SlateLight).
		Padding(0, 1)

	t.NormalItem = lipgloss.NewStyle().
		Foreground(subtle).
		Padding(0, 1)

	t.ActiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Amber)

	t.InactiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DimGray)

	t.Sidebar = lipgloss.NewStyle().Padding(1, 2)
	t.Browser = lipgloss.NewStyle().Padding(1, 2)
	t.Footer = lipgloss.NewStyle().Foreground(DimGray)

	return t
}
