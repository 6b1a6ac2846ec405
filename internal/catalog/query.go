package catalog

import (
	"strings"

	"github.com/bookverse/bookverse/internal/domain"
	"golang.org/x/text/cases"
)

// foldCaser performs Unicode simple case folding for case-insensitive
// matching. Safe for concurrent use per x/text docs.
var foldCaser = cases.Fold()

// FilterByCategory returns the books whose category exactly equals the
// requested one, preserving order. The CategoryAll sentinel returns the
// catalog unchanged. Matching is case-sensitive; an empty result is a
// valid result.
func FilterByCategory(books []domain.Book, category string) []domain.Book {
	if category == domain.CategoryAll {
		return books
	}
	filtered := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if b.Category == category {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// Search returns the books whose title, author, or category contains
// the term, case-folded. A blank term returns no results: an absent
// query shows nothing, not everything.
func Search(books []domain.Book, term string) []domain.Book {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	needle := foldCaser.String(term)

	results := make([]domain.Book, 0)
	for _, b := range books {
		if containsFold(b.Title, needle) ||
			containsFold(b.Author, needle) ||
			containsFold(b.Category, needle) {
			results = append(results, b)
		}
	}
	return results
}

func containsFold(haystack, foldedNeedle string) bool {
	return strings.Contains(foldCaser.String(haystack), foldedNeedle)
}
