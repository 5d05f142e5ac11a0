package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverAssets(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.vrm", "a.VRM", "notes.txt", "c.fbx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.vrm"), 0755))

	got, err := discoverAssets(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.VRM"),
		filepath.Join(dir, "b.vrm"),
	}, got)
}

func TestDiscoverAssets_MissingDir(t *testing.T) {
	_, err := discoverAssets(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestMoveToStore(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "done")

	src := filepath.Join(srcDir, "avatar.vrm")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	dst, err := moveToStore(src, dstDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dstDir, "avatar.vrm"), dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.NoFileExists(t, src)
}

func TestMoveToStore_MissingSource(t *testing.T) {
	_, err := moveToStore(filepath.Join(t.TempDir(), "gone.vrm"), t.TempDir())
	assert.ErrorIs(t, err, ErrMoveFailed)
}
