// Package export sequences the four-format export of one asset: per-format
// material preparation, selection, invocation, verification, and the
// human-readable report.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmunix/avatarforge/internal/host"
	"github.com/vmunix/avatarforge/internal/material"
	"github.com/vmunix/avatarforge/internal/scene"
	"github.com/vmunix/avatarforge/internal/texture"
)

// Orchestrator runs the export pass for assets. Formats needing portable
// materials (GLB, OBJ) get the resolver+rewriter pass first; FBX and DAE
// export the scene's original materials.
type Orchestrator struct {
	reg     *host.Registry
	markers []string
	policy  material.Policy
	log     *slog.Logger
}

// NewOrchestrator creates an orchestrator over the capability registry.
func NewOrchestrator(reg *host.Registry, markers []string, policy material.Policy, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{reg: reg, markers: markers, policy: policy, log: log}
}

// ExportAll exports the skeleton and meshes to every target format under
// outDir/<format>/<name>/ and writes the per-asset report into outDir.
// Formats fail independently; check Report.PrimaryOK for overall success.
func (o *Orchestrator) ExportAll(ctx context.Context, w *scene.Workspace, skeleton *scene.Object, meshes []*scene.Object, name, outDir string) *Report {
	report := NewReport(name)
	rewriter := material.NewRewriter(o.markers, o.policy, o.log)

	for _, f := range host.Formats {
		dir := filepath.Join(outDir, f.Dir(), name)
		report.Dirs[f] = dir
		if err := os.MkdirAll(dir, 0755); err != nil {
			report.Formats[f] = Result{Err: fmt.Sprintf("create directory: %v", err)}
			continue
		}

		switch f {
		case host.FormatGLB:
			rewriter.Prepare(w, meshes, "glb")
			rewriter.ClassifyTransparency(meshes)
		case host.FormatOBJ:
			rewriter.Prepare(w, meshes, "obj")
		}

		report.Formats[f] = o.exportOne(ctx, w, f, skeleton, meshes, dir, name, report)
	}

	report.OBJTextures = texture.ListDir(report.Dirs[host.FormatOBJ], false)
	report.DAETextures = texture.ListDir(report.Dirs[host.FormatDAE], true)

	reportPath := filepath.Join(outDir, name+"_export_report.txt")
	if err := report.WriteFile(reportPath); err != nil {
		o.log.Warn("could not write export report", "path", reportPath, "error", err)
	} else {
		o.log.Info("export report written", "path", reportPath)
	}
	return report
}

func (o *Orchestrator) exportOne(ctx context.Context, w *scene.Workspace, f host.Format, skeleton *scene.Object, meshes []*scene.Object, dir, name string, report *Report) Result {
	exporter, ok := o.reg.Exporter(f)
	if !ok {
		o.log.Error("exporter not available", "format", f)
		return Result{Err: "exporter not available"}
	}

	sel := host.Selection{
		Active:        skeleton,
		Selected:      append([]*scene.Object{skeleton}, meshes...),
		Mode:          scene.ModeObject,
		RecalcNormals: f != host.FormatFBX,
	}
	sel.Apply(w)

	path := filepath.Join(dir, name+f.Ext())
	opts := host.ExportOptions{EmbedTextures: f == host.FormatFBX || f == host.FormatGLB}

	o.log.Info("exporting", "format", f, "path", path)
	if err := exporter.Export(ctx, w, sel, path, opts); err != nil {
		o.log.Error("export failed", "format", f, "error", err)
		return Result{Err: err.Error()}
	}
	if err := verifyOutput(path); err != nil {
		o.log.Error("export verification failed", "format", f, "path", path, "error", err)
		return Result{Err: err.Error()}
	}

	if f == host.FormatOBJ {
		mtlPath := filepath.Join(dir, name+".mtl")
		relocator := texture.NewRelocator(w, o.log)
		res, err := relocator.RewriteMaterialFile(mtlPath)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("material file rewrite: %v", err))
			o.log.Warn("material file rewrite failed", "path", mtlPath, "error", err)
		} else {
			o.log.Info("textures relocated", "copied", res.Copied, "missing", len(res.Missing))
			if len(res.Missing) > 0 {
				report.Warnings = append(report.Warnings, "missing textures: "+strings.Join(res.Missing, ", "))
			}
		}
	}

	o.log.Info("export succeeded", "format", f, "path", path)
	return Result{OK: true, Path: path}
}

// verifyOutput checks the exporter actually produced a non-empty file.
func verifyOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("output file missing: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("output file empty: %s", path)
	}
	return nil
}
