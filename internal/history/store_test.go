package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Record("avatar_a", "/in/avatar_a.vrm", "rigged_export", ""))
	require.NoError(t, store.Record("avatar_b", "/in/avatar_b.vrm", "failed", "no armature"))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "avatar_b", entries[0].Asset)
	assert.Equal(t, "failed", entries[0].Outcome)
	assert.Equal(t, "no armature", entries[0].Reason)
	assert.False(t, entries[0].CreatedAt.IsZero())

	assert.Equal(t, "avatar_a", entries[1].Asset)
	assert.Equal(t, "/in/avatar_a.vrm", entries[1].SourcePath)
	assert.Empty(t, entries[1].Reason)
}

func TestRecentLimit(t *testing.T) {
	store := testStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record("a", "/in/a.vrm", "fallback_export", ""))
	}

	entries, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestCounts(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Record("a", "", "rigged_export", ""))
	require.NoError(t, store.Record("b", "", "rigged_export", ""))
	require.NoError(t, store.Record("c", "", "failed", "import failed"))

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"rigged_export": 2, "failed": 1}, counts)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record("a", "", "failed", "x"))
	require.NoError(t, store.Close())

	// Reopening an existing database must not fail on the schema.
	store, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	entries, err := store.Recent(10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
