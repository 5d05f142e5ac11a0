package scene

import (
	"fmt"
	"log/slog"
)

// InteractionMode is the host editing mode.
type InteractionMode string

const (
	ModeObject InteractionMode = "OBJECT"
	ModePose   InteractionMode = "POSE"
	ModeEdit   InteractionMode = "EDIT"
)

// Workspace is the single shared scene the pipeline mutates. Assets are
// processed one at a time; Reset must run between assets so no state leaks
// from one conversion into the next.
type Workspace struct {
	Objects     []*Object
	Materials   []*Material
	Images      []*Image
	Collections []string

	Mode   InteractionMode
	Active *Object

	// Interactive reports whether a usable interactive viewing context is
	// available. Rig-binding is skipped without one.
	Interactive bool

	log *slog.Logger
}

// New creates an empty workspace.
func New(log *slog.Logger) *Workspace {
	if log == nil {
		log = slog.Default()
	}
	return &Workspace{Mode: ModeObject, log: log}
}

// AddObject registers an object with the workspace.
func (w *Workspace) AddObject(o *Object) *Object {
	w.Objects = append(w.Objects, o)
	return o
}

// AddMaterial registers a material data-block.
func (w *Workspace) AddMaterial(m *Material) *Material {
	w.Materials = append(w.Materials, m)
	return m
}

// AddImage registers an image data-block.
func (w *Workspace) AddImage(img *Image) *Image {
	w.Images = append(w.Images, img)
	return img
}

// Object returns the named object, or nil.
func (w *Workspace) Object(name string) *Object {
	for _, o := range w.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Armatures returns all armature objects in scene order.
func (w *Workspace) Armatures() []*Object {
	var out []*Object
	for _, o := range w.Objects {
		if o.Type == ObjectArmature {
			out = append(out, o)
		}
	}
	return out
}

// Meshes returns all mesh objects in scene order.
func (w *Workspace) Meshes() []*Object {
	var out []*Object
	for _, o := range w.Objects {
		if o.Type == ObjectMesh {
			out = append(out, o)
		}
	}
	return out
}

// ArmatureNames returns the set of armature object names, used to diff the
// scene around rig matching.
func (w *Workspace) ArmatureNames() map[string]struct{} {
	out := make(map[string]struct{})
	for _, o := range w.Armatures() {
		out[o.Name] = struct{}{}
	}
	return out
}

// SelectOnly deselects everything, then selects the given objects and makes
// the first one active.
func (w *Workspace) SelectOnly(objs ...*Object) {
	for _, o := range w.Objects {
		o.Selected = false
	}
	for _, o := range objs {
		if o != nil {
			o.Selected = true
		}
	}
	if len(objs) > 0 {
		w.Active = objs[0]
	}
}

// SetActive marks the active object without changing selection.
func (w *Workspace) SetActive(o *Object) {
	w.Active = o
}

// SetMode switches the interaction mode.
func (w *Workspace) SetMode(m InteractionMode) {
	w.Mode = m
}

// ImageByName returns the named image, or nil.
func (w *Workspace) ImageByName(name string) *Image {
	for _, img := range w.Images {
		if img.Name == name {
			return img
		}
	}
	return nil
}

// Reset clears the workspace back to an empty object-mode scene. Each step is
// independently fault-tolerant: a failing step is logged as a warning and the
// remaining steps still run, to maximize cleanup coverage.
func (w *Workspace) Reset() {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"object mode", func() error {
			w.Mode = ModeObject
			return nil
		}},
		{"unhide and deselect", func() error {
			for _, o := range w.Objects {
				o.Hidden = false
				o.Selected = false
			}
			return nil
		}},
		{"remove objects", func() error {
			w.Objects = nil
			w.Active = nil
			return nil
		}},
		{"unlink collections", func() error {
			w.Collections = nil
			return nil
		}},
		{"purge orphans", func() error {
			w.PurgeOrphans()
			return nil
		}},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			w.log.Warn("workspace reset step failed", "step", step.name, "error", err)
		}
	}
	w.log.Debug("workspace reset")
}

// PurgeOrphans drops materials and images no longer referenced by any object.
func (w *Workspace) PurgeOrphans() {
	usedMats := make(map[*Material]bool)
	for _, o := range w.Objects {
		for _, m := range o.Materials() {
			usedMats[m] = true
		}
	}
	var mats []*Material
	for _, m := range w.Materials {
		if usedMats[m] {
			mats = append(mats, m)
		}
	}
	w.Materials = mats

	usedImgs := make(map[*Image]bool)
	for _, m := range w.Materials {
		collectGraphImages(m.Graph, usedImgs, make(map[*NodeGraph]bool))
	}
	var imgs []*Image
	for _, img := range w.Images {
		if usedImgs[img] {
			imgs = append(imgs, img)
		}
	}
	w.Images = imgs
}

func collectGraphImages(g *NodeGraph, into map[*Image]bool, visited map[*NodeGraph]bool) {
	if g == nil || visited[g] {
		return
	}
	visited[g] = true
	for _, n := range g.Nodes {
		if n.Image != nil {
			into[n.Image] = true
		}
		if n.Subgraph != nil {
			collectGraphImages(n.Subgraph, into, visited)
		}
	}
}

// ApplyTransforms normalizes object transforms before rig binding. The rig
// tool assumes unit scale and zero rotation on its inputs.
func (w *Workspace) ApplyTransforms(objs ...*Object) {
	for _, o := range objs {
		if o == nil {
			continue
		}
		o.Transform = Identity
		w.log.Debug("applied transforms", "object", o.Name)
	}
}

// String describes the workspace for logs.
func (w *Workspace) String() string {
	return fmt.Sprintf("workspace(objects=%d materials=%d images=%d)", len(w.Objects), len(w.Materials), len(w.Images))
}
