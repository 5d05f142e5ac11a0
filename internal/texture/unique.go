package texture

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Namer hands out collision-free destination filenames within one rewrite
// pass. Collisions get a numeric suffix before the extension.
type Namer struct {
	used map[string]bool
}

// NewNamer creates an empty namer.
func NewNamer() *Namer {
	return &Namer{used: make(map[string]bool)}
}

// Unique returns base if unused, otherwise stem__N.ext with the smallest
// free N. Two calls with the same base always return distinct names.
func (n *Namer) Unique(base string) string {
	if base == "" {
		base = "tex.png"
	}
	if !n.used[base] {
		n.used[base] = true
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 1; ; i++ {
		cand := fmt.Sprintf("%s__%d%s", stem, i, ext)
		if !n.used[cand] {
			n.used[cand] = true
			return cand
		}
	}
}
