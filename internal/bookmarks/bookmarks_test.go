package bookmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookverse/bookverse/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.BookStore) {
	t.Helper()
	st, err := store.NewBookStore("")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st, nil), st
}

func TestToggleIsSelfInverse(t *testing.T) {
	s, _ := newTestService(t)

	assert.False(t, s.IsBookmarked(42))
	assert.True(t, s.Toggle(42))
	assert.True(t, s.IsBookmarked(42))
	assert.False(t, s.Toggle(42))
	assert.False(t, s.IsBookmarked(42))
}

func TestToggleDoesNotAffectOtherIDs(t *testing.T) {
	s, _ := newTestService(t)

	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(1)

	assert.False(t, s.IsBookmarked(1))
	assert.True(t, s.IsBookmarked(2))
}

func TestTogglePersistsEveryChange(t *testing.T) {
	s, st := newTestService(t)

	s.Toggle(7)
	s.Toggle(42)

	ids, ok := st.GetBookmarks()
	require.True(t, ok)
	assert.Equal(t, []int64{7, 42}, ids)

	s.Toggle(7)
	ids, _ = st.GetBookmarks()
	assert.Equal(t, []int64{42}, ids)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s, _ := newTestService(t)

	s.Toggle(30)
	s.Toggle(10)
	s.Toggle(20)

	assert.Equal(t, []int64{30, 10, 20}, s.List())
}

func TestLoadsSavedSetOnConstruction(t *testing.T) {
	st, err := store.NewBookStore("")
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.SaveBookmarks([]int64{5, 9}))

	s := NewService(st, nil)
	assert.True(t, s.IsBookmarked(5))
	assert.True(t, s.IsBookmarked(9))
	assert.False(t, s.IsBookmarked(1))
}

func TestDropsDuplicatesFromStore(t *testing.T) {
	st, err := store.NewBookStore("")
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.SaveBookmarks([]int64{5, 5, 9, 5}))

	s := NewService(st, nil)
	assert.Equal(t, []int64{5, 9}, s.List())
}
