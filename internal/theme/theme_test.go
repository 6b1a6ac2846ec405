package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookverse/bookverse/internal/domain"
	"github.com/bookverse/bookverse/internal/store"
)

func newTestStore(t *testing.T) *store.BookStore {
	t.Helper()
	st, err := store.NewBookStore("")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestAmbientSignalDecidesWhenUnset(t *testing.T) {
	st := newTestStore(t)

	assert.True(t, Resolve(st, true, nil).IsDark())
	assert.False(t, Resolve(st, false, nil).IsDark())
}

func TestAmbientResolutionIsNotPersisted(t *testing.T) {
	st := newTestStore(t)

	Resolve(st, true, nil)
	_, ok := st.GetTheme()
	assert.False(t, ok)
}

func TestPersistedValueBeatsAmbient(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SaveTheme(domain.ThemeLight))

	s := Resolve(st, true, nil)
	assert.False(t, s.IsDark())

	require.NoError(t, st.SaveTheme(domain.ThemeDark))
	s = Resolve(st, false, nil)
	assert.True(t, s.IsDark())
}

func TestTogglePersistsExplicitChoice(t *testing.T) {
	st := newTestStore(t)

	s := Resolve(st, false, nil)
	assert.True(t, s.Toggle())

	saved, ok := st.GetTheme()
	require.True(t, ok)
	assert.Equal(t, domain.ThemeDark, saved)

	assert.False(t, s.Toggle())
	saved, _ = st.GetTheme()
	assert.Equal(t, domain.ThemeLight, saved)
}

func TestToggledChoiceWinsOnNextResolve(t *testing.T) {
	st := newTestStore(t)

	Resolve(st, true, nil).Toggle() // dark ambient, toggled to light

	s := Resolve(st, true, nil)
	assert.False(t, s.IsDark())
}
