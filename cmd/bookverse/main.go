package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/bookverse/bookverse/internal/bookmarks"
	"github.com/bookverse/bookverse/internal/catalog"
	"github.com/bookverse/bookverse/internal/config"
	"github.com/bookverse/bookverse/internal/log"
	"github.com/bookverse/bookverse/internal/reader"
	"github.com/bookverse/bookverse/internal/search"
	"github.com/bookverse/bookverse/internal/store"
	"github.com/bookverse/bookverse/internal/theme"
	"github.com/bookverse/bookverse/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("bookverse %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("bookverse requires an interactive terminal")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting bookverse", "version", Version)

	bookStore, err := store.NewBookStore(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer bookStore.Close()

	// Ambient theme signal, read once at startup. Only an explicit
	// user toggle persists a preference.
	ambientDark := lipgloss.HasDarkBackground()

	source := catalog.NewSource(cfg.Catalog.Source, logger)
	loader := catalog.NewLoader(source, bookStore, logger)
	searchSvc := search.NewService(logger)
	bookmarkSvc := bookmarks.NewService(bookStore, logger)
	session := reader.NewSession(bookmarkSvc, logger)
	themeState := theme.Resolve(bookStore, ambientDark, logger)

	model := tui.NewModel(loader, searchSvc, session, bookmarkSvc, themeState, cfg.UI.DefaultCategory)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
