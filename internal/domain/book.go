package domain

import "strings"

// CategoryAll is the sentinel category that matches every book.
const CategoryAll = "All"

// Book represents a single catalog entry. Canonical and custom books
// share the same shape; custom books are distinguished only by living
// in the registry rather than the canonical catalog file.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Cover       string `json:"cover"`
	PDFURL      string `json:"pdfUrl"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`
}

// HasSource reports whether the book points at an external source
// document. Placeholder values like "#" count as no source.
func (b Book) HasSource() bool {
	u := strings.TrimSpace(b.PDFURL)
	return u != "" && u != "#"
}

// ReaderText returns the text the reader should display. Books with a
// source document defer to it; the content blob is the fallback.
func (b Book) ReaderText() string {
	return b.Content
}

// Draft holds the fields supplied by the admin form when creating a
// custom book. The registry accepts drafts verbatim; required-field
// validation is the form's concern, not ours.
type Draft struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Cover       string `json:"cover"`
	PDFURL      string `json:"pdfUrl"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// CatalogFile mirrors the canonical catalog document: an object with a
// single "books" field. The export routine emits the same shape so its
// output can replace the canonical file directly.
type CatalogFile struct {
	Books []Book `json:"books"`
}

// Categories returns the distinct categories present in the catalog, in
// first-seen order, with CategoryAll prepended.
func Categories(books []Book) []string {
	seen := make(map[string]bool, len(books))
	cats := []string{CategoryAll}
	for _, b := range books {
		if b.Category == "" || seen[b.Category] {
			continue
		}
		seen[b.Category] = true
		cats = append(cats, b.Category)
	}
	return cats
}
