package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	books := []Book{
		{ID: 1, Category: "Fiction"},
		{ID: 2, Category: "Poetry"},
		{ID: 3, Category: "Fiction"},
		{ID: 4, Category: ""},
		{ID: 5, Category: "History"},
	}

	cats := Categories(books)
	assert.Equal(t, []string{"All", "Fiction", "Poetry", "History"}, cats)
}

func TestCategoriesEmptyCatalog(t *testing.T) {
	assert.Equal(t, []string{"All"}, Categories(nil))
}

func TestHasSource(t *testing.T) {
	assert.True(t, Book{PDFURL: "https://example.com/book.pdf"}.HasSource())
	assert.False(t, Book{PDFURL: ""}.HasSource())
	assert.False(t, Book{PDFURL: "#"}.HasSource())
	assert.False(t, Book{PDFURL: "  "}.HasSource())
}

func TestBookJSONShape(t *testing.T) {
	b := Book{
		ID:       1,
		Title:    "Dracula",
		Author:   "Bram Stoker",
		Category: "Fiction",
		PDFURL:   "https://example.com/dracula.pdf",
	}

	data, err := json.Marshal(b)
	require.NoError(t, err)

	// The pdfUrl key and the content omission match the catalog file
	// format the browser app used.
	assert.Contains(t, string(data), `"pdfUrl"`)
	assert.NotContains(t, string(data), `"content"`)
}
