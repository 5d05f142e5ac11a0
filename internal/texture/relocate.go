package texture

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/avatarforge/internal/scene"
)

// mapDirectives are the recognized texture map keys of the legacy material
// format.
var mapDirectives = map[string]bool{
	"map_Kd": true, "map_Ks": true, "map_Bump": true, "map_d": true,
	"map_Ka": true, "map_Ns": true, "map_Ke": true, "map_refl": true,
}

// fuzzyThreshold is the minimum Jaro-Winkler similarity for matching a
// directive's basename against in-memory image names when nothing matches
// exactly.
const fuzzyThreshold = 0.92

// Result summarizes one material-file rewrite pass.
type Result struct {
	// Copied counts textures written into the destination folder.
	Copied int

	// Missing lists directive paths that could not be resolved.
	Missing []string

	// Written lists the destination filenames produced.
	Written []string
}

// Relocator rewrites texture references in a legacy material file so they
// point at files living next to it.
type Relocator struct {
	ws  *scene.Workspace
	log *slog.Logger
}

// NewRelocator creates a relocator over the given workspace.
func NewRelocator(ws *scene.Workspace, log *slog.Logger) *Relocator {
	if log == nil {
		log = slog.Default()
	}
	return &Relocator{ws: ws, log: log}
}

// resolution kinds.
type resolution struct {
	diskPath string       // non-empty when resolved to an on-disk file
	packed   *scene.Image // non-nil when resolved to a memory-only image
}

func (res resolution) unresolved() bool {
	return res.diskPath == "" && res.packed == nil
}

// RewriteMaterialFile parses the material file line by line, resolves each
// recognized map directive, copies or serializes the texture into the file's
// folder under a collision-free name, and rewrites the directive to reference
// that filename only. Unresolvable references are recorded as missing and
// left untouched. Memory-only images not referenced by the rewritten file are
// flushed afterwards as a safety net.
func (r *Relocator) RewriteMaterialFile(path string) (Result, error) {
	var result Result

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, fmt.Errorf("read material file: %w", err)
	}

	dir := filepath.Dir(path)
	namer := NewNamer()
	written := make(map[*scene.Image]bool)

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		key, value, ok := splitDirective(line)
		if !ok || !mapDirectives[key] {
			out = append(out, line)
			continue
		}

		res := r.resolve(value, dir)
		switch {
		case res.unresolved():
			result.Missing = append(result.Missing, value)
			out = append(out, line)

		case res.diskPath != "":
			name := namer.Unique(filepath.Base(res.diskPath))
			dst := filepath.Join(dir, name)
			if !samePath(res.diskPath, dst) {
				if err := copyFile(res.diskPath, dst); err != nil {
					r.log.Warn("could not copy texture", "name", name, "error", err)
					result.Missing = append(result.Missing, value)
				} else {
					result.Copied++
					result.Written = append(result.Written, name)
					r.log.Debug("copied texture", "name", name)
				}
			}
			out = append(out, key+" "+name)

		default:
			name := namer.Unique(PackedFilename(res.packed.Name))
			dst := filepath.Join(dir, name)
			if err := r.savePacked(res.packed, dst); err != nil {
				r.log.Warn("could not serialize packed texture", "name", name, "error", err)
				result.Missing = append(result.Missing, value)
			} else {
				result.Copied++
				result.Written = append(result.Written, name)
				r.log.Debug("serialized packed texture", "name", name)
			}
			written[res.packed] = true
			out = append(out, key+" "+name)
		}
	}

	// Flush memory-only images the rewritten file does not reference, so no
	// texture a material might still point at is left behind.
	for _, img := range r.ws.Images {
		if !img.IsPacked() || written[img] {
			continue
		}
		name := namer.Unique(PackedFilename(img.Name))
		dst := filepath.Join(dir, name)
		if err := r.savePacked(img, dst); err != nil {
			r.log.Warn("could not flush packed texture", "name", name, "error", err)
			continue
		}
		result.Written = append(result.Written, name)
		r.log.Debug("flushed packed texture", "name", name)
	}

	if err := os.WriteFile(path, []byte(strings.Join(out, "\n")), 0644); err != nil {
		return result, fmt.Errorf("rewrite material file: %w", err)
	}
	return result, nil
}

// resolve maps a directive path to a source, in order: absolute on-disk,
// relative to the material file's folder, then the workspace image set by
// path or name (exact first, fuzzy second).
func (r *Relocator) resolve(value, dir string) resolution {
	raw := strings.ReplaceAll(strings.TrimSpace(value), "\\", "/")
	if raw == "" {
		return resolution{}
	}
	base := filepath.Base(filepath.FromSlash(raw))

	if filepath.IsAbs(filepath.FromSlash(raw)) {
		p := filepath.FromSlash(raw)
		if fileExists(p) {
			return resolution{diskPath: p}
		}
		return resolution{}
	}

	if rel := filepath.Join(dir, filepath.FromSlash(raw)); fileExists(rel) {
		return resolution{diskPath: rel}
	}

	// Exact matches against workspace images.
	for _, img := range r.ws.Images {
		if img.FilePath != "" {
			fp := filepath.ToSlash(img.FilePath)
			if filepath.Base(img.FilePath) == base || strings.HasSuffix(fp, raw) {
				if fileExists(img.FilePath) {
					return resolution{diskPath: img.FilePath}
				}
			}
		}
		if img.Name == base || filepath.Base(img.Name) == base {
			if img.FilePath != "" && fileExists(img.FilePath) {
				return resolution{diskPath: img.FilePath}
			}
			if len(img.Packed) > 0 {
				return resolution{packed: img}
			}
		}
	}

	// Fuzzy name match as a last resort; avatar toolchains rename textures
	// on import (suffixes, deduplication counters).
	if img := r.fuzzyMatch(base); img != nil {
		if img.FilePath != "" && fileExists(img.FilePath) {
			return resolution{diskPath: img.FilePath}
		}
		if len(img.Packed) > 0 {
			return resolution{packed: img}
		}
	}
	return resolution{}
}

func (r *Relocator) fuzzyMatch(base string) *scene.Image {
	var best *scene.Image
	var bestScore float32
	for _, img := range r.ws.Images {
		candidates := []string{img.Name, filepath.Base(img.FilePath)}
		for _, cand := range candidates {
			if cand == "" || cand == "." {
				continue
			}
			score := edlib.JaroWinklerSimilarity(strings.ToLower(base), strings.ToLower(cand))
			if score > bestScore {
				bestScore = score
				best = img
			}
		}
	}
	if bestScore >= fuzzyThreshold {
		r.log.Debug("fuzzy texture match", "wanted", base, "matched", best.Name, "score", bestScore)
		return best
	}
	return nil
}

// savePacked decodes the in-memory bytes and re-encodes them into dst.
func (r *Relocator) savePacked(img *scene.Image, dst string) error {
	decoded, err := DecodePacked(img)
	if err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer func() { _ = f.Close() }()
	if err := Encode(f, decoded, filepath.Ext(dst)); err != nil {
		return fmt.Errorf("encode %s: %w", dst, err)
	}
	return nil
}

// splitDirective splits a material line into its key and value.
func splitDirective(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	fields := strings.SplitN(trimmed, " ", 2)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], strings.TrimSpace(fields[1]), true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func samePath(a, b string) bool {
	aa, errA := filepath.Abs(a)
	bb, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return aa == bb
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("copy content: %w", err)
	}
	return out.Sync()
}
