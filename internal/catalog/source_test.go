package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookverse/bookverse/internal/domain"
)

const catalogJSON = `{
  "books": [
    {"id": 1, "title": "Dracula", "author": "Bram Stoker", "category": "Fiction"},
    {"id": 2, "title": "Frankenstein", "author": "Mary Shelley", "category": "Fiction"}
  ]
}`

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	src := NewSource(srv.URL, nil)
	books, err := src.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Dracula", books[0].Title)
	assert.Equal(t, "Mary Shelley", books[1].Author)
}

func TestHTTPSourceNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewSource(srv.URL, nil)
	_, err := src.FetchCatalog(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestHTTPSourceBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	src := NewSource(srv.URL, nil)
	_, err := src.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestFileSourceFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0644))

	src := NewSource(path, nil)
	books, err := src.FetchCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "nope.json"), nil)
	_, err := src.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestSourceSkipsEntriesWithoutID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "books": [
    {"id": 1, "title": "Dracula"},
    {"title": "No ID Here"},
    {"id": 2, "title": "Frankenstein"}
  ]
}`), 0644))

	src := NewSource(path, nil)
	books, err := src.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, int64(2), books[1].ID)
}

func TestNewSourcePicksTransport(t *testing.T) {
	_, isHTTP := NewSource("https://example.com/books.json", nil).(*HTTPSource)
	assert.True(t, isHTTP)

	_, isFile := NewSource("data/books.json", nil).(*FileSource)
	assert.True(t, isFile)
}
