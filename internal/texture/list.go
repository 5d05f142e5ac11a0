package texture

import (
	"os"
	"path/filepath"
	"sort"
)

// ListDir returns the texture filenames directly inside dir, sorted. With
// recursive set, subdirectory entries are included with their relative path.
func ListDir(dir string, recursive bool) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			if recursive {
				for _, sub := range ListDir(filepath.Join(dir, e.Name()), true) {
					out = append(out, filepath.Join(e.Name(), sub))
				}
			}
			continue
		}
		if HasImageExt(e.Name()) {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}
