package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddAndList(t *testing.T) {
	s := newTestStore(t)

	e1, err := s.Add("cat.jpg", "a1b2c3d4e5f60718", 64)
	require.NoError(t, err)
	assert.NotEmpty(t, e1.ID)
	assert.Equal(t, "cat.jpg", e1.Filename)
	assert.False(t, e1.AddedAt.IsZero())

	_, err = s.Add("dog.jpg", "ffffffffffffffff", 64)
	require.NoError(t, err)

	entries, err := s.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)

	exact, err := s.Add("same.jpg", "00000000000000ff", 64)
	require.NoError(t, err)
	_, err = s.Add("near.jpg", "00000000000000fe", 64)
	require.NoError(t, err)
	_, err = s.Add("far.jpg", "ffffffffffffff00", 64)
	require.NoError(t, err)

	matches, err := s.Search("00000000000000ff", 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, exact.ID, matches[0].ID)
	assert.Zero(t, matches[0].Distance)

	matches, err = s.Search("00000000000000ff", 1)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestSearchSkipsMismatchedLengths(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add("short.jpg", "00ff", 16)
	require.NoError(t, err)
	_, err = s.Add("long.jpg", "0000000000000000", 64)
	require.NoError(t, err)

	matches, err := s.Search("0000", 16)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "short.jpg", matches[0].Filename)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	e, err := s.Add("gone.jpg", "0123456789abcdef", 64)
	require.NoError(t, err)
	require.NoError(t, s.Delete(e.ID))

	entries, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReopenKeepsEntries(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)
	_, err = s.Add("persist.jpg", "0123456789abcdef", 64)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = New(dir)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "persist.jpg", entries[0].Filename)
}
