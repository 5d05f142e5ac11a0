package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/avatarforge/internal/scene"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pngBytes encodes a tiny image for packed-texture tests.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRewriteMaterialFile_CopiesAndRewrites(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()

	texPath := filepath.Join(srcDir, "body.png")
	require.NoError(t, os.WriteFile(texPath, pngBytes(t), 0644))

	mtl := filepath.Join(outDir, "model.mtl")
	writeFile(t, mtl, strings.Join([]string{
		"newmtl Body",
		"Kd 1.0 1.0 1.0",
		"map_Kd " + texPath,
		"",
	}, "\n"))

	ws := scene.New(testLogger())
	r := NewRelocator(ws, testLogger())

	result, err := r.RewriteMaterialFile(mtl)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Copied)
	assert.Empty(t, result.Missing)
	assert.Equal(t, []string{"body.png"}, result.Written)

	assert.FileExists(t, filepath.Join(outDir, "body.png"))

	data, err := os.ReadFile(mtl)
	require.NoError(t, err)
	assert.Contains(t, string(data), "map_Kd body.png")
	assert.NotContains(t, string(data), srcDir)
	assert.Contains(t, string(data), "Kd 1.0 1.0 1.0", "non-map lines pass through")
}

func TestRewriteMaterialFile_WorkspaceNameMatch(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()

	texPath := filepath.Join(srcDir, "hair.png")
	require.NoError(t, os.WriteFile(texPath, pngBytes(t), 0644))

	mtl := filepath.Join(outDir, "model.mtl")
	writeFile(t, mtl, "map_Kd hair.png\n")

	ws := scene.New(testLogger())
	ws.AddImage(&scene.Image{Name: "hair.png", FilePath: texPath})
	r := NewRelocator(ws, testLogger())

	result, err := r.RewriteMaterialFile(mtl)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Copied)
	assert.FileExists(t, filepath.Join(outDir, "hair.png"))
}

func TestRewriteMaterialFile_PackedImage(t *testing.T) {
	outDir := t.TempDir()
	mtl := filepath.Join(outDir, "model.mtl")
	writeFile(t, mtl, "map_Kd skin.png\n")

	ws := scene.New(testLogger())
	ws.AddImage(&scene.Image{Name: "skin.png", Packed: pngBytes(t)})
	r := NewRelocator(ws, testLogger())

	result, err := r.RewriteMaterialFile(mtl)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Copied)
	assert.FileExists(t, filepath.Join(outDir, "skin.png"))

	data, err := os.ReadFile(mtl)
	require.NoError(t, err)
	assert.Contains(t, string(data), "map_Kd skin.png")
}

func TestRewriteMaterialFile_FuzzyNameMatch(t *testing.T) {
	outDir := t.TempDir()
	mtl := filepath.Join(outDir, "model.mtl")
	writeFile(t, mtl, "map_Kd Body_Albedo.png\n")

	// Import renamed the texture with a dedup counter.
	ws := scene.New(testLogger())
	ws.AddImage(&scene.Image{Name: "Body_Albedo.png.001", Packed: pngBytes(t)})
	r := NewRelocator(ws, testLogger())

	result, err := r.RewriteMaterialFile(mtl)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Copied)
	assert.Empty(t, result.Missing)
}

func TestRewriteMaterialFile_UnresolvedLeftUntouched(t *testing.T) {
	outDir := t.TempDir()
	mtl := filepath.Join(outDir, "model.mtl")
	writeFile(t, mtl, "map_Kd gone/nowhere.png\n")

	r := NewRelocator(scene.New(testLogger()), testLogger())

	result, err := r.RewriteMaterialFile(mtl)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Copied)
	assert.Equal(t, []string{"gone/nowhere.png"}, result.Missing)

	data, err := os.ReadFile(mtl)
	require.NoError(t, err)
	assert.Contains(t, string(data), "map_Kd gone/nowhere.png")
}

func TestRewriteMaterialFile_MissingFileIsNoop(t *testing.T) {
	r := NewRelocator(scene.New(testLogger()), testLogger())
	result, err := r.RewriteMaterialFile(filepath.Join(t.TempDir(), "absent.mtl"))
	require.NoError(t, err)
	assert.Zero(t, result.Copied)
	assert.Empty(t, result.Missing)
}

func TestRewriteMaterialFile_CollidingBasenames(t *testing.T) {
	srcA := t.TempDir()
	srcB := t.TempDir()
	outDir := t.TempDir()

	pathA := filepath.Join(srcA, "tex.png")
	pathB := filepath.Join(srcB, "tex.png")
	require.NoError(t, os.WriteFile(pathA, pngBytes(t), 0644))
	require.NoError(t, os.WriteFile(pathB, pngBytes(t), 0644))

	mtl := filepath.Join(outDir, "model.mtl")
	writeFile(t, mtl, "map_Kd "+pathA+"\nmap_Ks "+pathB+"\n")

	r := NewRelocator(scene.New(testLogger()), testLogger())
	result, err := r.RewriteMaterialFile(mtl)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Copied)
	assert.FileExists(t, filepath.Join(outDir, "tex.png"))
	assert.FileExists(t, filepath.Join(outDir, "tex__1.png"))

	data, err := os.ReadFile(mtl)
	require.NoError(t, err)
	assert.Contains(t, string(data), "map_Kd tex.png")
	assert.Contains(t, string(data), "map_Ks tex__1.png")
}

func TestRewriteMaterialFile_FlushesUnreferencedPacked(t *testing.T) {
	outDir := t.TempDir()
	mtl := filepath.Join(outDir, "model.mtl")
	writeFile(t, mtl, "newmtl Body\n")

	ws := scene.New(testLogger())
	ws.AddImage(&scene.Image{Name: "stray.png", Packed: pngBytes(t)})
	r := NewRelocator(ws, testLogger())

	result, err := r.RewriteMaterialFile(mtl)
	require.NoError(t, err)
	assert.Equal(t, []string{"stray.png"}, result.Written)
	assert.FileExists(t, filepath.Join(outDir, "stray.png"))
}
