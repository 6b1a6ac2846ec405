package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bookverse/bookverse/internal/catalog"
	"github.com/bookverse/bookverse/internal/config"
	"github.com/bookverse/bookverse/internal/domain"
	"github.com/bookverse/bookverse/internal/log"
	"github.com/bookverse/bookverse/internal/registry"
	"github.com/bookverse/bookverse/internal/store"
)

var (
	catalogSource string
	dataDir       string

	draftTitle       string
	draftAuthor      string
	draftCategory    string
	draftCover       string
	draftPDFURL      string
	draftDescription string
	draftContent     string

	exportDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookverse-admin",
	Short: "Manage custom Bookverse catalog entries",
	Long: `Bookverse Admin maintains the locally persisted custom book registry:
add and remove entries, list what is stored, and export the canonical
catalog merged with your custom books as a replacement books.json.`,
	SilenceUsage: true,
}

// addCmd appends a custom book to the registry
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom book to the registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		book := env.registry.Add(domain.Draft{
			Title:       draftTitle,
			Author:      draftAuthor,
			Category:    draftCategory,
			Cover:       draftCover,
			PDFURL:      draftPDFURL,
			Description: draftDescription,
			Content:     draftContent,
		})

		fmt.Printf("Added %q (id %d)\n", book.Title, book.ID)
		return nil
	},
}

// listCmd prints the registry contents in insertion order
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom books",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		books := env.registry.List()
		if len(books) == 0 {
			fmt.Println("No custom books added yet.")
			return nil
		}
		for _, b := range books {
			fmt.Printf("%d\t%s | %s | %s\n", b.ID, b.Title, b.Category, b.Author)
		}
		return nil
	},
}

// removeCmd deletes a custom book by id
var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a custom book by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		env.registry.Remove(id)
		fmt.Printf("Removed %d (if present)\n", id)
		return nil
	},
}

// exportCmd writes the merged canonical+custom catalog to books.json
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the merged catalog as books.json",
	Long: `Export refetches the canonical catalog, appends every custom book, and
writes the result as a replacement books.json. A failed canonical fetch
aborts the export; writing a partial catalog risks losing books when the
file is re-imported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		path, err := env.registry.WriteExport(cmd.Context(), exportDir)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote merged catalog to %s\n", path)
		return nil
	},
}

// env bundles the shared store/registry wiring for one command run.
type env struct {
	store    *store.BookStore
	registry *registry.Registry
	logger   *slog.Logger
}

func newEnv() (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if catalogSource != "" {
		cfg.Catalog.Source = catalogSource
	}
	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}

	logger, err := log.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		logger = log.NullLogger()
	}

	bookStore, err := store.NewBookStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	source := catalog.NewSource(cfg.Catalog.Source, logger)
	reg := registry.NewRegistry(bookStore, source, nil, logger)

	return &env{store: bookStore, registry: reg, logger: logger}, nil
}

func (e *env) close() {
	e.store.Close()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&catalogSource, "catalog", "", "canonical catalog URL or path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "local data directory (overrides config)")

	addCmd.Flags().StringVar(&draftTitle, "title", "", "book title")
	addCmd.Flags().StringVar(&draftAuthor, "author", "", "book author")
	addCmd.Flags().StringVar(&draftCategory, "category", "", "book category")
	addCmd.Flags().StringVar(&draftCover, "cover", "", "cover image URL")
	addCmd.Flags().StringVar(&draftPDFURL, "pdf-url", "", "source document URL")
	addCmd.Flags().StringVar(&draftDescription, "description", "", "short description")
	addCmd.Flags().StringVar(&draftContent, "content", "", "full text content")

	exportCmd.Flags().StringVar(&exportDir, "out", ".", "directory to write books.json into")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(exportCmd)
}
