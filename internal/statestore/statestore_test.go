package statestore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadMissingKey(t *testing.T) {
	s := openTestStore(t)

	var out testState
	found, err := s.Load("never-written", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, out.Items)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := testState{Items: []string{"a", "b"}, Count: 2}
	require.NoError(t, s.Save("cart-storage", in))

	var out testState
	found, err := s.Load("cart-storage", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save("k", testState{Count: 1}))
	require.NoError(t, s.Save("k", testState{Count: 2}))

	var out testState
	found, err := s.Load("k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, out.Count)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save("k", testState{Count: 1}))
	require.NoError(t, s.Delete("k"))
	require.NoError(t, s.Delete("k")) // absent key is a no-op

	var out testState
	found, err := s.Load("k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReopenKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("contact-storage", testState{Items: []string{"x"}, Count: 1}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var out testState
	found, err := s2.Load("contact-storage", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"x"}, out.Items)
}
