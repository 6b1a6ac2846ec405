package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookverse/bookverse/internal/domain"
)

func testBooks() []domain.Book {
	return []domain.Book{
		{ID: 1, Title: "Dracula", Author: "Bram Stoker", Category: "Fiction"},
		{ID: 2, Title: "Frankenstein", Author: "Mary Shelley", Category: "Fiction"},
		{ID: 3, Title: "Dubliners", Author: "James Joyce", Category: "Fiction"},
	}
}

func TestQueryBlankTermReturnsNothing(t *testing.T) {
	s := NewService(nil)
	assert.Nil(t, s.Query(testBooks(), ""))
	assert.Nil(t, s.Query(testBooks(), "  "))
}

func TestQueryKeepsMembershipContract(t *testing.T) {
	s := NewService(nil)

	// Author-only match still appears even though the title never
	// contains the term.
	results := s.Query(testBooks(), "shelley")
	require.Len(t, results, 1)
	assert.Equal(t, int64(2), results[0].Book.ID)
	assert.Equal(t, -1, results[0].Distance)
}

func TestQueryRanksTitleMatchesFirst(t *testing.T) {
	books := []domain.Book{
		{ID: 1, Title: "Collected Poems", Author: "Dylan Thomas", Category: "Poetry"},
		{ID: 2, Title: "Dylan", Author: "Someone Else", Category: "Fiction"},
	}
	s := NewService(nil)

	results := s.Query(books, "dylan")
	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].Book.ID)
	assert.GreaterOrEqual(t, results[0].Distance, 0)
	assert.Equal(t, -1, results[1].Distance)
}

func TestQueryAttachesTitleHighlights(t *testing.T) {
	s := NewService(nil)

	results := s.Query(testBooks(), "drac")
	require.Len(t, results, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, results[0].MatchedIndexes)
}

func TestQueryNoMatches(t *testing.T) {
	s := NewService(nil)
	assert.Nil(t, s.Query(testBooks(), "zzzz"))
}
