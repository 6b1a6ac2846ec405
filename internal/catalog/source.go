package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bookverse/bookverse/internal/domain"
)

const defaultFetchTimeout = 15 * time.Second

// NewSource returns a catalog source for the given location: an HTTP
// source for http(s) URLs, a file source for anything else.
func NewSource(location string, logger *slog.Logger) domain.Source {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{
			url:    location,
			client: &http.Client{Timeout: defaultFetchTimeout},
			logger: logger,
		}
	}
	return &FileSource{path: location, logger: logger}
}

// HTTPSource fetches the canonical catalog over HTTP.
type HTTPSource struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func (s *HTTPSource) FetchCatalog(ctx context.Context) ([]domain.Book, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var file domain.CatalogFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	books := dropMalformed(file.Books, s.logger)
	s.logger.Debug("fetched canonical catalog", "url", s.url, "count", len(books))
	return books, nil
}

// FileSource reads the canonical catalog from a local file.
type FileSource struct {
	path   string
	logger *slog.Logger
}

func (s *FileSource) FetchCatalog(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var file domain.CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	books := dropMalformed(file.Books, s.logger)
	s.logger.Debug("read canonical catalog", "path", s.path, "count", len(books))
	return books, nil
}

// dropMalformed skips canonical entries without an id. A zero id means
// the field was absent or invalid in the source document.
func dropMalformed(books []domain.Book, logger *slog.Logger) []domain.Book {
	valid := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if b.ID == 0 {
			logger.Warn("skipping catalog entry without id", "title", b.Title)
			continue
		}
		valid = append(valid, b)
	}
	return valid
}
