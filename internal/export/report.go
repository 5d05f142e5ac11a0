package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vmunix/avatarforge/internal/host"
)

// Result is one format's outcome.
type Result struct {
	OK   bool
	Path string // output path on success
	Err  string // error description on failure
}

// Report records the per-format outcomes for one asset, plus the texture
// inventory of the folder-referencing targets. One format's failure never
// blocks the others.
type Report struct {
	Asset     string
	Generated time.Time
	Dirs      map[host.Format]string
	Formats   map[host.Format]Result

	OBJTextures []string
	DAETextures []string
	Warnings    []string
}

// NewReport creates an empty report for the named asset.
func NewReport(asset string) *Report {
	return &Report{
		Asset:     asset,
		Generated: time.Now(),
		Dirs:      make(map[host.Format]string),
		Formats:   make(map[host.Format]Result),
	}
}

// PrimaryOK reports overall export success: the primary embedded-texture
// format succeeded.
func (r *Report) PrimaryOK() bool {
	return r.Formats[host.FormatFBX].OK
}

// Render returns the human-readable report body.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Export report: %s\n", r.Asset)
	fmt.Fprintf(&b, "Generated: %s\n\n", r.Generated.Format("2006-01-02 15:04:05"))

	b.WriteString("Directories used:\n")
	for _, f := range host.Formats {
		fmt.Fprintf(&b, "  %s: %s\n", f, r.Dirs[f])
	}
	b.WriteString("\n")

	for _, f := range host.Formats {
		res, ok := r.Formats[f]
		if !ok {
			continue
		}
		status := "FAILED"
		detail := res.Err
		if res.OK {
			status = "SUCCESS"
			detail = res.Path
		}
		fmt.Fprintf(&b, "  %s: %s -> %s\n", f, status, detail)
	}

	writeFileList := func(title string, files []string) {
		fmt.Fprintf(&b, "\n%s:\n", title)
		if len(files) == 0 {
			b.WriteString("  (none)\n")
			return
		}
		for _, f := range files {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}
	writeFileList("OBJ texture files", r.OBJTextures)
	writeFileList("DAE texture files", r.DAETextures)

	if len(r.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  %s\n", w)
		}
	}
	return b.String()
}

// WriteFile persists the rendered report.
func (r *Report) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(r.Render()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
