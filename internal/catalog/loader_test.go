package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookverse/bookverse/internal/domain"
	"github.com/bookverse/bookverse/internal/store"
)

type fakeSource struct {
	books []domain.Book
	err   error
}

func (f *fakeSource) FetchCatalog(ctx context.Context) ([]domain.Book, error) {
	return f.books, f.err
}

func TestLoadMergesCanonicalThenCustom(t *testing.T) {
	st, err := store.NewBookStore("")
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.SaveCustomBooks([]domain.Book{
		{ID: 1001, Title: "Leaves of Grass", Author: "Walt Whitman", Category: "Poetry"},
	}))

	src := &fakeSource{books: []domain.Book{
		{ID: 1, Title: "Dracula", Author: "Bram Stoker", Category: "Fiction"},
		{ID: 2, Title: "Frankenstein", Author: "Mary Shelley", Category: "Fiction"},
	}}

	loader := NewLoader(src, st, nil)
	books := loader.Load(context.Background())

	require.Len(t, books, 3)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, int64(2), books[1].ID)
	assert.Equal(t, int64(1001), books[2].ID)
}

func TestLoadDegradesWhenSourceFails(t *testing.T) {
	st, err := store.NewBookStore("")
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.SaveCustomBooks([]domain.Book{
		{ID: 1001, Title: "Leaves of Grass", Author: "Walt Whitman", Category: "Poetry"},
	}))

	src := &fakeSource{err: errors.New("connection refused")}
	loader := NewLoader(src, st, nil)

	books := loader.Load(context.Background())
	require.Len(t, books, 1)
	assert.Equal(t, "Leaves of Grass", books[0].Title)
}

func TestLoadWithEmptyRegistry(t *testing.T) {
	st, err := store.NewBookStore("")
	require.NoError(t, err)
	defer st.Close()

	src := &fakeSource{books: []domain.Book{{ID: 1, Title: "Dracula"}}}
	loader := NewLoader(src, st, nil)

	books := loader.Load(context.Background())
	assert.Len(t, books, 1)
}

func TestLoadRebuildsEachCall(t *testing.T) {
	st, err := store.NewBookStore("")
	require.NoError(t, err)
	defer st.Close()

	src := &fakeSource{books: []domain.Book{{ID: 1, Title: "Dracula"}}}
	loader := NewLoader(src, st, nil)

	assert.Len(t, loader.Load(context.Background()), 1)

	require.NoError(t, st.SaveCustomBooks([]domain.Book{{ID: 1001, Title: "Leaves of Grass"}}))
	assert.Len(t, loader.Load(context.Background()), 2)
}
