package pipeline

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// defaultName is used when sanitization leaves nothing.
const defaultName = "export"

// foldMarks decomposes characters and strips combining marks, so accented
// letters survive the ASCII filter below as their base letters.
var foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CanonicalName derives the sanitized asset name from a source path: the
// base filename without extension, spaces replaced by underscores, reduced to
// alphanumerics, '_' and '-'. Never empty.
func CanonicalName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if folded, _, err := transform.String(foldMarks, base); err == nil {
		base = folded
	}
	base = strings.ReplaceAll(base, " ", "_")

	var b strings.Builder
	for _, r := range base {
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return defaultName
	}
	return b.String()
}
