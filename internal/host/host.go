// Package host defines the capability interfaces the pipeline consumes from
// the scene host: asset import, rig-binding steps, and per-format exporters.
// Capabilities are probed through a Registry; absence is a normal outcome that
// drives fallback branches, not an error.
package host

import (
	"context"

	"github.com/vmunix/avatarforge/internal/scene"
)

//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

// Format is one of the four export targets.
type Format string

const (
	FormatFBX Format = "FBX"
	FormatGLB Format = "GLB"
	FormatDAE Format = "DAE"
	FormatOBJ Format = "OBJ"
)

// Formats lists the targets in export order. FBX is the primary format: its
// success defines overall per-asset export success.
var Formats = []Format{FormatFBX, FormatGLB, FormatDAE, FormatOBJ}

// Ext returns the output file extension including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatFBX:
		return ".fbx"
	case FormatGLB:
		return ".glb"
	case FormatDAE:
		return ".dae"
	case FormatOBJ:
		return ".obj"
	}
	return ""
}

// Dir returns the per-format subfolder name under the output root.
func (f Format) Dir() string {
	switch f {
	case FormatFBX:
		return "fbx"
	case FormatGLB:
		return "glb"
	case FormatDAE:
		return "dae"
	case FormatOBJ:
		return "obj"
	}
	return ""
}

// Selection describes the object selection and interaction mode an operation
// runs under.
type Selection struct {
	Active   *scene.Object
	Selected []*scene.Object
	Mode     scene.InteractionMode

	// RecalcNormals asks the operation to recalculate outward-facing normals
	// on the selected meshes first.
	RecalcNormals bool
}

// Apply pushes the selection into the workspace.
func (s Selection) Apply(w *scene.Workspace) {
	w.SelectOnly(s.Selected...)
	if s.Active != nil {
		w.SetActive(s.Active)
	}
	if s.Mode != "" {
		w.SetMode(s.Mode)
	}
}

// RigStep is one step of the auto-rig sequence, run strictly in order.
type RigStep string

const (
	RigStepAutoScale    RigStep = "auto_scale"
	RigStepGuessMarkers RigStep = "guess_markers"
	RigStepMatchToRig   RigStep = "match_to_rig"
	RigStepBindToRig    RigStep = "bind_to_rig"
)

// SceneImporter loads an asset file into the workspace.
type SceneImporter interface {
	Import(ctx context.Context, w *scene.Workspace, path string) error
}

// RigTool drives the auto-rig plugin. Run executes one step under the given
// selection; MatchToRig may create new armature objects in the workspace.
type RigTool interface {
	// Compatible reports whether the plugin supports the running host
	// version. Incompatible tools are skipped for the whole run.
	Compatible() bool

	Run(ctx context.Context, w *scene.Workspace, step RigStep, sel Selection) error
}

// ExportOptions tunes a single export invocation.
type ExportOptions struct {
	// EmbedTextures packs texture data into the output file (FBX, GLB).
	EmbedTextures bool
}

// Exporter writes the current selection to one target format.
type Exporter interface {
	Export(ctx context.Context, w *scene.Workspace, sel Selection, path string, opts ExportOptions) error
}
