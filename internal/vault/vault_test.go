package vault

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/clipvault/internal/storage"
)

func newTestVault(t *testing.T) (*Vault, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storage.json")
	return New(storage.Open(path)), path
}

func TestAddAndListNewestFirst(t *testing.T) {
	v, _ := newTestVault(t)

	for _, text := range []string{"first", "second", "third"} {
		_, err := v.Add(text, Meta{})
		require.NoError(t, err)
	}

	clips, err := v.List()
	require.NoError(t, err)
	require.Len(t, clips, 3)
	assert.Equal(t, "third", clips[0].Text)
	assert.Equal(t, "second", clips[1].Text)
	assert.Equal(t, "first", clips[2].Text)
}

func TestListEmptyStore(t *testing.T) {
	v, _ := newTestVault(t)

	clips, err := v.List()
	require.NoError(t, err)
	assert.Empty(t, clips)
}

func TestAddTrimsText(t *testing.T) {
	v, _ := newTestVault(t)

	clip, err := v.Add("  hello world \n", Meta{})
	require.NoError(t, err)
	assert.Equal(t, "hello world", clip.Text)
}

func TestAddRejectsDuplicate(t *testing.T) {
	v, _ := newTestVault(t)

	_, err := v.Add("hello", Meta{})
	require.NoError(t, err)

	_, err = v.Add("hello", Meta{})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Trimmed-equal text is still a duplicate.
	_, err = v.Add("  hello  ", Meta{})
	assert.ErrorIs(t, err, ErrDuplicate)

	clips, err := v.List()
	require.NoError(t, err)
	assert.Len(t, clips, 1)
}

func TestAddRejectsWhitespaceOnly(t *testing.T) {
	v, _ := newTestVault(t)

	_, err := v.Add("   \n\t", Meta{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	clips, err := v.List()
	require.NoError(t, err)
	assert.Empty(t, clips)
}

func TestAddDefaultsToManualSource(t *testing.T) {
	v, _ := newTestVault(t)

	clip, err := v.Add("hello", Meta{})
	require.NoError(t, err)
	assert.Equal(t, SourceManual, clip.Source)
}

func TestAddPreservesPageMetadata(t *testing.T) {
	v, _ := newTestVault(t)

	clip, err := v.Add("quoted text", Meta{
		Source:    SourceSelection,
		PageURL:   "https://example.com",
		PageTitle: "Example",
	})
	require.NoError(t, err)
	assert.Equal(t, SourceSelection, clip.Source)
	assert.Equal(t, "https://example.com", clip.PageURL)
	assert.Equal(t, "Example", clip.PageTitle)

	// Metadata survives the round trip through storage.
	clips, err := v.List()
	require.NoError(t, err)
	require.Len(t, clips, 1)
	assert.Equal(t, "https://example.com", clips[0].PageURL)
	assert.Equal(t, "Example", clips[0].PageTitle)
	assert.Equal(t, clip.ID, clips[0].ID)
}

func TestRapidAddsGetDistinctIDs(t *testing.T) {
	v, _ := newTestVault(t)

	// Pin the clock so every add lands in the same millisecond.
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return now }

	a, err := v.Add("one", Meta{})
	require.NoError(t, err)
	b, err := v.Add("two", Meta{})
	require.NoError(t, err)
	c, err := v.Add("three", Meta{})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, c.ID)
	assert.Greater(t, b.ID, a.ID)
	assert.Greater(t, c.ID, b.ID)

	clips, err := v.List()
	require.NoError(t, err)
	assert.Len(t, clips, 3)
}

func TestGet(t *testing.T) {
	v, _ := newTestVault(t)

	saved, err := v.Add("hello", Meta{})
	require.NoError(t, err)

	got, err := v.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Text, got.Text)

	_, err = v.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove(t *testing.T) {
	v, _ := newTestVault(t)

	a, err := v.Add("keep", Meta{})
	require.NoError(t, err)
	b, err := v.Add("drop", Meta{})
	require.NoError(t, err)

	remaining, err := v.Remove(b.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, a.ID, remaining[0].ID)
}

func TestRemoveUnknownIDLeavesStoreUnchanged(t *testing.T) {
	v, path := newTestVault(t)

	_, err := v.Add("hello", Meta{})
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	remaining, err := v.Remove(42)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "unknown id must not rewrite the store")
}

func TestClear(t *testing.T) {
	v, _ := newTestVault(t)

	_, err := v.Add("one", Meta{})
	require.NoError(t, err)
	_, err = v.Add("two", Meta{})
	require.NoError(t, err)

	require.NoError(t, v.Clear())
	require.NoError(t, v.Clear()) // idempotent

	clips, err := v.List()
	require.NoError(t, err)
	assert.Empty(t, clips)
}

func TestSizeInBytes(t *testing.T) {
	v, _ := newTestVault(t)

	empty, err := v.SizeInBytes()
	require.NoError(t, err)
	assert.EqualValues(t, len("[]"), empty)

	_, err = v.Add("some text worth counting", Meta{})
	require.NoError(t, err)

	size, err := v.SizeInBytes()
	require.NoError(t, err)
	assert.Greater(t, size, empty)
}
