package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/bookverse/bookverse/internal/catalog"
	"github.com/bookverse/bookverse/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// Result is a search hit with match metadata for highlighting.
type Result struct {
	Book           domain.Book
	MatchedIndexes []int // rune positions in the title that matched
	Distance       int   // rank distance (lower = better, -1 = unranked)
}

// Service ranks catalog search results for display. The membership
// contract stays with catalog.Search (case-folded substring over
// title/author/category); this layer only decides presentation order
// and highlight positions.
type Service struct {
	logger *slog.Logger
}

// NewService creates a new search service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Query runs the substring search over the catalog and returns the hits
// ranked by title match quality. Books that matched on author or
// category but not title keep their catalog order after the ranked
// ones.
func (s *Service) Query(books []domain.Book, term string) []Result {
	hits := catalog.Search(books, term)
	if len(hits) == 0 {
		return nil
	}

	titles := make([]string, len(hits))
	for i, b := range hits {
		titles[i] = b.Title
	}

	// Rank titles by Levenshtein distance to the query
	distByTitle := make(map[string]int, len(hits))
	for _, rank := range fuzzy.RankFindFold(term, titles) {
		if d, ok := distByTitle[rank.Target]; !ok || rank.Distance < d {
			distByTitle[rank.Target] = rank.Distance
		}
	}

	results := make([]Result, len(hits))
	for i, b := range hits {
		dist := -1
		if d, ok := distByTitle[b.Title]; ok {
			dist = d
		}
		results[i] = Result{Book: b, Distance: dist}
	}

	// Stable sort: ranked titles first, best distance first
	sort.SliceStable(results, func(i, j int) bool {
		di, dj := results[i].Distance, results[j].Distance
		if (di < 0) != (dj < 0) {
			return di >= 0
		}
		return di < dj
	})

	s.attachHighlights(results, term)

	s.logger.Debug("ranked search results", "term", term, "count", len(results))
	return results
}

// attachHighlights computes matched character positions in each title
// for the list renderer.
func (s *Service) attachHighlights(results []Result, term string) {
	lowerTitles := make([]string, len(results))
	for i, r := range results {
		lowerTitles[i] = strings.ToLower(r.Book.Title)
	}

	for _, m := range sahilm.Find(strings.ToLower(term), lowerTitles) {
		results[m.Index].MatchedIndexes = m.MatchedIndexes
	}
}
