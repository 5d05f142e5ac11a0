// Package texture resolves, relocates, and serializes texture references for
// the text-based material format. The legacy format only stores a filename,
// while the live scene may hold textures purely in memory or under different
// paths, so resolution and copying are two separate phases.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registered decoders for image.Decode.
	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/webp"

	"github.com/vmunix/avatarforge/internal/scene"
)

// imageExts are the extensions recognized as texture files.
var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true,
	".tga": true, ".tif": true, ".tiff": true, ".webp": true, ".exr": true,
}

// encodableExts are the extensions Serialize can write.
var encodableExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true,
	".tif": true, ".tiff": true, ".webp": true,
}

// HasImageExt reports whether the name ends in a recognized texture extension.
func HasImageExt(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// Decode reads any supported texture encoding.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Encode writes img in the encoding implied by ext.
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	case ".webp":
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("no encoder for %q", ext)
}

// DecodePacked decodes an in-memory image's raw bytes.
func DecodePacked(img *scene.Image) (image.Image, error) {
	if len(img.Packed) == 0 {
		return nil, fmt.Errorf("image %q has no packed data", img.Name)
	}
	return Decode(bytes.NewReader(img.Packed))
}

// PackedFilename synthesizes a destination filename for a memory-only image:
// spaces become underscores, and the extension falls back to .png when the
// original is unrecognized or has no encoder.
func PackedFilename(name string) string {
	if name == "" {
		name = "image"
	}
	base := filepath.Base(strings.ReplaceAll(name, " ", "_"))
	ext := strings.ToLower(filepath.Ext(base))
	if !imageExts[ext] {
		return base + ".png"
	}
	if !encodableExts[ext] {
		return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	}
	return base
}
