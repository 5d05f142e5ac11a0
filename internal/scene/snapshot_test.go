package scene

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMainArmature(t *testing.T) {
	w := New(testLogger())
	small := w.AddObject(NewArmature("Small", "hips", "spine"))
	big := w.AddObject(NewArmature("Big", "hips", "spine", "chest", "neck", "head"))

	got := MainArmature(w)
	require.NotNil(t, got)
	assert.Equal(t, big, got)
	assert.NotEqual(t, small, got)
}

func TestMainArmature_TieKeepsFirst(t *testing.T) {
	w := New(testLogger())
	first := w.AddObject(NewArmature("First", "a", "b"))
	w.AddObject(NewArmature("Second", "c", "d"))

	assert.Equal(t, first, MainArmature(w))
}

func TestPrimaryMesh(t *testing.T) {
	w := New(testLogger())
	w.AddObject(NewMesh("Face", 1200))
	body := w.AddObject(NewMesh("Body", 24000))
	w.AddObject(NewMesh("Hair", 8000))

	got := PrimaryMesh(w)
	require.NotNil(t, got)
	assert.Equal(t, body, got)
}

func TestScaffold(t *testing.T) {
	w := New(testLogger())
	arm := w.AddObject(NewArmature("Armature", "hips", "spine", "head"))
	body := w.AddObject(NewMesh("Body", 24000))
	face := w.AddObject(NewMesh("Face", 1200))

	snap, err := Scaffold(w, testLogger())
	require.NoError(t, err)
	assert.Equal(t, arm, snap.Skeleton)
	assert.Equal(t, body, snap.Primary)
	assert.Equal(t, []*Object{body, face}, snap.Meshes)
}

func TestScaffold_NoArmature(t *testing.T) {
	w := New(testLogger())
	w.AddObject(NewMesh("Body", 100))

	_, err := Scaffold(w, testLogger())
	require.ErrorIs(t, err, ErrNoSkeleton)
}

func TestScaffold_NoMeshes(t *testing.T) {
	w := New(testLogger())
	w.AddObject(NewArmature("Armature", "hips"))

	_, err := Scaffold(w, testLogger())
	require.ErrorIs(t, err, ErrNoMeshes)
}
