package rig

import (
	"context"
	"log/slog"

	"github.com/vmunix/avatarforge/internal/host"
	"github.com/vmunix/avatarforge/internal/scene"
)

// Engine executes the rig-binding sequence. Each step must succeed before the
// next runs; the scale and skin-binding steps retry across the strategy list,
// the other two get one canonical attempt.
type Engine struct {
	tool host.RigTool
	log  *slog.Logger
}

// NewEngine creates an engine over the given rig tool.
func NewEngine(tool host.RigTool, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{tool: tool, log: log}
}

// Bind runs scale normalization, marker estimation, rig matching, and skin
// binding in order. It returns (true, producedRig) when every step succeeds;
// the produced rig is the newly appeared armature with the most bones, or the
// original skeleton when rig matching created none. A false result is not
// fatal to the asset: conversion-only export may still proceed.
func (e *Engine) Bind(ctx context.Context, w *scene.Workspace, snap *scene.Snapshot) (bool, *scene.Object) {
	skeleton, mesh := snap.Skeleton, snap.Primary

	e.log.Info("rig step 1/4", "step", host.RigStepAutoScale)
	if !e.runStep(ctx, w, host.RigStepAutoScale, skeleton, mesh, retryStrategies) {
		return false, nil
	}

	e.log.Info("rig step 2/4", "step", host.RigStepGuessMarkers)
	if !e.runStep(ctx, w, host.RigStepGuessMarkers, skeleton, mesh, canonical) {
		return false, nil
	}

	before := w.ArmatureNames()
	e.log.Info("rig step 3/4", "step", host.RigStepMatchToRig)
	if !e.runStep(ctx, w, host.RigStepMatchToRig, skeleton, mesh, canonical) {
		return false, nil
	}
	rig := e.producedRig(w, before, skeleton)

	e.log.Info("rig step 4/4", "step", host.RigStepBindToRig)
	if !e.runStep(ctx, w, host.RigStepBindToRig, rig, mesh, retryStrategies) {
		return false, nil
	}

	return true, rig
}

// runStep tries the step under each strategy in order, stopping at the first
// success.
func (e *Engine) runStep(ctx context.Context, w *scene.Workspace, step host.RigStep, skeleton, mesh *scene.Object, strategies []Strategy) bool {
	for _, strat := range strategies {
		sel := strat.Selection(skeleton, mesh)
		sel.Apply(w)
		e.log.Debug("rig attempt", "step", step, "strategy", strat.Label, "mode", strat.Mode)
		if err := e.tool.Run(ctx, w, step, sel); err != nil {
			e.log.Warn("rig step attempt failed", "step", step, "strategy", strat.Label, "error", err)
			continue
		}
		e.log.Info("rig step succeeded", "step", step, "strategy", strat.Label)
		return true
	}
	e.log.Error("rig step exhausted all strategies", "step", step, "strategies", len(strategies))
	return false
}

// producedRig diffs the armature set against the pre-matching snapshot and
// picks the new armature with the most bones, falling back to the original
// skeleton.
func (e *Engine) producedRig(w *scene.Workspace, before map[string]struct{}, original *scene.Object) *scene.Object {
	var best *scene.Object
	bestBones := -1
	for _, o := range w.Armatures() {
		if _, existed := before[o.Name]; existed {
			continue
		}
		if n := o.BoneCount(); n > bestBones {
			best = o
			bestBones = n
		}
	}
	if best != nil {
		e.log.Info("produced rig", "name", best.Name, "bones", bestBones)
		return best
	}
	e.log.Info("using original skeleton as rig", "name", original.Name)
	return original
}
