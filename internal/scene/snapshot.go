package scene

import (
	"errors"
	"log/slog"
)

var (
	// ErrNoSkeleton indicates the imported scene has no armature object.
	ErrNoSkeleton = errors.New("no armature in scene")

	// ErrNoMeshes indicates the imported scene has no mesh objects.
	ErrNoMeshes = errors.New("no meshes in scene")
)

// Snapshot captures the skeleton and mesh set of one imported asset.
type Snapshot struct {
	// Skeleton is the armature with the most bones (first encountered wins ties).
	Skeleton *Object

	// Meshes is every mesh object present at scaffold time.
	Meshes []*Object

	// Primary is the mesh with the most vertices, used as the rig tool's
	// reference body.
	Primary *Object
}

// Scaffold inspects the workspace after import and designates the skeleton
// and meshes for the current asset. A snapshot is only valid with a skeleton
// and a non-empty mesh set.
func Scaffold(w *Workspace, log *slog.Logger) (*Snapshot, error) {
	skeleton := MainArmature(w)
	if skeleton == nil {
		log.Error("no armature found in scene")
		return nil, ErrNoSkeleton
	}
	log.Info("main armature", "name", skeleton.Name, "bones", skeleton.BoneCount())

	meshes := w.Meshes()
	if len(meshes) == 0 {
		log.Error("no mesh found in scene")
		return nil, ErrNoMeshes
	}
	names := make([]string, len(meshes))
	for i, m := range meshes {
		names[i] = m.Name
	}
	log.Info("meshes found", "count", len(meshes), "names", names)

	primary := PrimaryMesh(w)
	log.Info("primary mesh", "name", primary.Name, "vertices", primary.VertexCount)

	return &Snapshot{Skeleton: skeleton, Meshes: meshes, Primary: primary}, nil
}

// MainArmature returns the armature with the greatest bone count, or nil.
// Ties keep the first-encountered object.
func MainArmature(w *Workspace) *Object {
	var best *Object
	bestBones := -1
	for _, o := range w.Armatures() {
		if n := o.BoneCount(); n > bestBones {
			best = o
			bestBones = n
		}
	}
	return best
}

// PrimaryMesh returns the mesh with the greatest vertex count, or nil.
func PrimaryMesh(w *Workspace) *Object {
	var best *Object
	bestVerts := -1
	for _, o := range w.Meshes() {
		if o.VertexCount > bestVerts {
			best = o
			bestVerts = o.VertexCount
		}
	}
	return best
}
