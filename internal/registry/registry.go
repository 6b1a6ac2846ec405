package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bookverse/bookverse/internal/domain"
)

// ExportFilename is the suggested name for the merged export, chosen so
// the output can drop in as a replacement canonical catalog file.
const ExportFilename = "books.json"

// IDGenerator produces identifiers for new custom books. Pluggable so
// tests can supply deterministic ids.
type IDGenerator func() int64

// TimeID returns the production id generator: wall-clock milliseconds,
// nudged forward on collision so ids issued within one run are strictly
// increasing and never reused after a delete.
func TimeID() IDGenerator {
	var last int64
	return func() int64 {
		id := time.Now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		last = id
		return id
	}
}

// Registry is the mutable, persisted collection of user-added books.
// Every mutation writes through to the store immediately.
type Registry struct {
	store  domain.Store
	source domain.Source
	nextID IDGenerator
	logger *slog.Logger
}

// NewRegistry creates a new custom book registry. A nil nextID falls
// back to wall-clock ids.
func NewRegistry(store domain.Store, source domain.Source, nextID IDGenerator, logger *slog.Logger) *Registry {
	if nextID == nil {
		nextID = TimeID()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{store: store, source: source, nextID: nextID, logger: logger}
}

// Add assigns a fresh id to the draft, appends it to the registry, and
// persists. The draft's fields are stored as given.
func (r *Registry) Add(draft domain.Draft) domain.Book {
	book := domain.Book{
		ID:          r.nextID(),
		Title:       draft.Title,
		Author:      draft.Author,
		Category:    draft.Category,
		Cover:       draft.Cover,
		PDFURL:      draft.PDFURL,
		Description: draft.Description,
		Content:     draft.Content,
	}

	books, _ := r.store.GetCustomBooks()
	books = append(books, book)
	if err := r.store.SaveCustomBooks(books); err != nil {
		r.logger.Error("failed to save custom books", "error", err)
	}
	r.logger.Info("added custom book", "id", book.ID, "title", book.Title)
	return book
}

// Remove deletes the book with the given id, persisting the result.
// A missing id is a no-op.
func (r *Registry) Remove(id int64) {
	books, _ := r.store.GetCustomBooks()
	kept := make([]domain.Book, 0, len(books))
	removed := false
	for _, b := range books {
		if b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		r.logger.Debug("remove of unknown custom book ignored", "id", id)
		return
	}
	if err := r.store.SaveCustomBooks(kept); err != nil {
		r.logger.Error("failed to save custom books", "error", err)
	}
	r.logger.Info("removed custom book", "id", id)
}

// List returns the registry contents in insertion order.
func (r *Registry) List() []domain.Book {
	books, _ := r.store.GetCustomBooks()
	return books
}

// ExportMerged refetches the canonical catalog and returns it with all
// registry entries appended, in the canonical file shape. No
// deduplication is performed. Unlike catalog loading, a failed fetch is
// surfaced: exporting a partial catalog risks data loss on re-import.
func (r *Registry) ExportMerged(ctx context.Context) (domain.CatalogFile, error) {
	canonical, err := r.source.FetchCatalog(ctx)
	if err != nil {
		r.logger.Error("export fetch failed", "error", err)
		return domain.CatalogFile{}, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	custom := r.List()
	merged := make([]domain.Book, 0, len(canonical)+len(custom))
	merged = append(merged, canonical...)
	merged = append(merged, custom...)

	r.logger.Info("built merged export", "canonical", len(canonical), "custom", len(custom))
	return domain.CatalogFile{Books: merged}, nil
}

// WriteExport writes the merged export to dir/books.json, pretty
// printed like the original catalog file.
func (r *Registry) WriteExport(ctx context.Context, dir string) (string, error) {
	file, err := r.ExportMerged(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	path := filepath.Join(dir, ExportFilename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return path, nil
}
