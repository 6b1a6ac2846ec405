package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookverse/bookverse/internal/domain"
)

func TestAbsentKeysReadAsEmpty(t *testing.T) {
	s, err := NewBookStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	books, ok := s.GetCustomBooks()
	assert.False(t, ok)
	assert.Empty(t, books)

	ids, ok := s.GetBookmarks()
	assert.False(t, ok)
	assert.Empty(t, ids)

	_, ok = s.GetTheme()
	assert.False(t, ok)
}

func TestCustomBooksRoundTrip(t *testing.T) {
	s, err := NewBookStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	books := []domain.Book{
		{ID: 1, Title: "Dracula", Author: "Bram Stoker", Category: "Horror"},
		{ID: 1001, Title: "Leaves of Grass", Author: "Walt Whitman", Category: "Poetry"},
	}
	require.NoError(t, s.SaveCustomBooks(books))

	got, ok := s.GetCustomBooks()
	require.True(t, ok)
	assert.Equal(t, books, got)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBookStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveBookmarks([]int64{42, 7}))
	require.NoError(t, s.SaveTheme(domain.ThemeDark))
	require.NoError(t, s.Close())

	s, err = NewBookStore(dir)
	require.NoError(t, err)
	defer s.Close()

	ids, ok := s.GetBookmarks()
	require.True(t, ok)
	assert.Equal(t, []int64{42, 7}, ids)

	theme, ok := s.GetTheme()
	require.True(t, ok)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestMemoryOnlyMode(t *testing.T) {
	s, err := NewBookStore("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveBookmarks([]int64{5}))
	ids, ok := s.GetBookmarks()
	require.True(t, ok)
	assert.Equal(t, []int64{5}, ids)
}

func TestUnknownThemeValueReadsAsUnset(t *testing.T) {
	s, err := NewBookStore("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveTheme("sepia"))
	_, ok := s.GetTheme()
	assert.False(t, ok)
}

func TestDeleteTheme(t *testing.T) {
	s, err := NewBookStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveTheme(domain.ThemeLight))
	_, ok := s.GetTheme()
	require.True(t, ok)

	s.DeleteTheme()
	_, ok = s.GetTheme()
	assert.False(t, ok)
}
