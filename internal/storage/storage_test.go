package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "nested", "storage.json"))
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)

	var out string
	ok, err := s.Get("clips", &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestSetGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.Set("rec", record{Name: "hello", Count: 3}))

	var out record
	ok, err := s.Get("rec", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, record{Name: "hello", Count: 3}, out)
}

func TestKeysAreIndependent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("clips", []string{"a", "b"}))
	require.NoError(t, s.Set("theme", "dark"))

	var theme string
	ok, err := s.Get("theme", &theme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)

	var clips []string
	ok, err = s.Get("clips", &clips)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, clips)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("theme", "light"))
	require.NoError(t, s.Delete("theme"))

	var out string
	ok, err := s.Get("theme", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	// Absent key: no-op.
	require.NoError(t, s.Delete("theme"))
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	require.NoError(t, Open(path).Set("theme", "dark"))

	var out string
	ok, err := Open(path).Get("theme", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", out)
}

func TestCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var out string
	_, err := Open(path).Get("theme", &out)
	assert.Error(t, err)
}
