// Package pipeline sequences the per-asset conversion state machine and the
// batch loop around it: discover, import, scaffold, rig-bind, export,
// classify, relocate.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmunix/avatarforge/internal/export"
	"github.com/vmunix/avatarforge/internal/host"
	"github.com/vmunix/avatarforge/internal/material"
	"github.com/vmunix/avatarforge/internal/rig"
	"github.com/vmunix/avatarforge/internal/scene"
)

// Dirs are the four batch folders.
type Dirs struct {
	Input  string
	Output string
	Done   string
	Failed string
}

// Config for the batch runner.
type Config struct {
	Dirs Dirs

	// Interactive enables rig-binding. Without it every asset goes straight
	// to conversion-only export.
	Interactive bool

	ShaderMarkers []string
	Transparency  material.Policy
}

// Recorder persists terminal job outcomes. Implementations must tolerate
// being called once per processed asset.
type Recorder interface {
	Record(asset, sourcePath, outcome, reason string) error
}

// Summary aggregates a batch run.
type Summary struct {
	Total    int
	Rigged   int
	Fallback int
	Failed   int
}

// Runner processes assets strictly one at a time within the single shared
// workspace; there is no parallel asset processing because the underlying
// host's editable state is one global scene.
type Runner struct {
	reg      *host.Registry
	ws       *scene.Workspace
	orch     *export.Orchestrator
	cfg      Config
	recorder Recorder // nil if history is disabled
	log      *slog.Logger
}

// NewRunner creates a batch runner.
func NewRunner(reg *host.Registry, ws *scene.Workspace, cfg Config, recorder Recorder, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		reg:      reg,
		ws:       ws,
		orch:     export.NewOrchestrator(reg, cfg.ShaderMarkers, cfg.Transparency, log),
		cfg:      cfg,
		recorder: recorder,
		log:      log,
	}
}

// Run processes every asset in the input folder. An empty input folder is a
// clean no-op, not an error. Per-asset failures are isolated; the batch
// always continues to the next asset.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	files, err := discoverAssets(r.cfg.Dirs.Input)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		r.log.Info("no input files found", "input", r.cfg.Dirs.Input)
		return Summary{}, nil
	}

	r.log.Info("pipeline started",
		"files", len(files),
		"input", r.cfg.Dirs.Input,
		"output", r.cfg.Dirs.Output,
		"done", r.cfg.Dirs.Done,
		"failed", r.cfg.Dirs.Failed)

	rigTool, skipRig := r.probeRigTool()

	var summary Summary
	for idx, path := range files {
		if err := ctx.Err(); err != nil {
			r.log.Warn("batch interrupted", "processed", idx, "remaining", len(files)-idx)
			return summary, err
		}

		job := NewJob(path)
		summary.Total++
		r.log.Info("processing asset", "index", idx+1, "total", len(files), "file", path, "name", job.Name)

		r.process(ctx, job, rigTool, skipRig)

		switch job.Outcome {
		case OutcomeRigged:
			summary.Rigged++
		case OutcomeFallback:
			summary.Fallback++
		default:
			summary.Failed++
		}
		r.finish(job)
	}

	r.log.Info("pipeline complete",
		"total", summary.Total,
		"rigged", summary.Rigged,
		"fallback", summary.Fallback,
		"failed", summary.Failed)
	return summary, nil
}

// probeRigTool decides once per run whether rig-binding is attempted at all.
func (r *Runner) probeRigTool() (host.RigTool, bool) {
	tool, ok := r.reg.RigTool()
	switch {
	case !r.cfg.Interactive:
		r.log.Warn("rig-binding disabled; conversion-only export will be used")
		return nil, true
	case !r.ws.Interactive:
		r.log.Warn("no interactive viewing context; conversion-only export will be used")
		return nil, true
	case !ok:
		r.log.Warn("rig tool not available; conversion-only export will be used")
		return nil, true
	case !tool.Compatible():
		r.log.Warn("rig tool incompatible with host version; conversion-only export will be used")
		return nil, true
	}
	return tool, false
}

// process runs the state machine for one asset. Every failure below this
// level is reported as a job outcome, never an error: batch forward progress
// is preserved.
func (r *Runner) process(ctx context.Context, job *Job, rigTool host.RigTool, skipRig bool) {
	log := r.log.With("asset", job.Name)

	r.ws.Reset()

	job.transition(StateImporting, log)
	importer, ok := r.reg.Importer()
	if !ok {
		log.Error("scene importer capability missing")
		job.fail(reasonImporterMissing, log)
		return
	}
	if err := importer.Import(ctx, r.ws, job.SourcePath); err != nil {
		log.Error("import failed", "error", err)
		job.fail(reasonImportFailed, log)
		return
	}

	snap, err := scene.Scaffold(r.ws, log)
	if err != nil {
		switch {
		case errors.Is(err, scene.ErrNoSkeleton):
			job.fail(reasonNoSkeleton, log)
		case errors.Is(err, scene.ErrNoMeshes):
			job.fail(reasonNoMeshes, log)
		default:
			job.fail(err.Error(), log)
		}
		return
	}
	job.transition(StateScaffolded, log)

	r.ws.ApplyTransforms(append([]*scene.Object{snap.Skeleton}, snap.Meshes...)...)

	bound := false
	var producedRig *scene.Object
	if !skipRig {
		job.transition(StateRigBinding, log)
		engine := rig.NewEngine(rigTool, log)
		bound, producedRig = engine.Bind(ctx, r.ws, snap)
		if !bound {
			log.Warn("rig-binding failed; falling back to conversion-only export")
		}
	}

	// Re-collect meshes: binding may alter the mesh set.
	meshes := r.ws.Meshes()
	job.transition(StateExporting, log)

	if bound {
		report := r.orch.ExportAll(ctx, r.ws, producedRig, meshes, job.Name, r.cfg.Dirs.Output)
		if report.PrimaryOK() {
			job.succeed(OutcomeRigged, log)
			return
		}
		log.Warn("rigged export failed on primary format; retrying conversion-only")
		report = r.orch.ExportAll(ctx, r.ws, snap.Skeleton, meshes, job.Name, r.cfg.Dirs.Output)
		if report.PrimaryOK() {
			job.succeed(OutcomeFallback, log)
			return
		}
		job.fail(reasonAllExportFailed, log)
		return
	}

	report := r.orch.ExportAll(ctx, r.ws, snap.Skeleton, meshes, job.Name, r.cfg.Dirs.Output)
	if report.PrimaryOK() {
		job.succeed(OutcomeFallback, log)
		return
	}
	job.fail(reasonExportFailed, log)
}

// finish relocates the source file and records the outcome. Both are
// best-effort: a move or history failure never aborts the batch.
func (r *Runner) finish(job *Job) {
	store := r.cfg.Dirs.Done
	if job.Outcome == OutcomeFailed {
		store = r.cfg.Dirs.Failed
		r.log.Error("asset failed", "asset", job.Name, "reason", job.Reason)
	}

	dst, err := moveToStore(job.SourcePath, store)
	if err != nil {
		r.log.Warn("could not relocate source file", "asset", job.Name, "error", err)
	} else {
		r.log.Info("source file relocated", "asset", job.Name, "dest", dst, "outcome", job.Outcome)
	}

	if r.recorder != nil {
		if err := r.recorder.Record(job.Name, job.SourcePath, string(job.Outcome), job.Reason); err != nil {
			r.log.Warn("could not record history", "asset", job.Name, "error", err)
		}
	}
}
