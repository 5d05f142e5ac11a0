// Package scene models the shared host scene workspace: objects, materials,
// images, and their node graphs. The workspace is the single mutable resource
// of the pipeline; it is reset between assets and passed explicitly into every
// component that touches it.
package scene

// ObjectType identifies what kind of scene object this is.
type ObjectType string

const (
	ObjectArmature ObjectType = "ARMATURE"
	ObjectMesh     ObjectType = "MESH"
)

// Transform is the object-level placement applied on top of the object data.
type Transform struct {
	Translation [3]float64
	Rotation    [3]float64 // Euler, radians
	Scale       [3]float64
}

// Identity is the applied, neutral transform.
var Identity = Transform{Scale: [3]float64{1, 1, 1}}

// Object is one scene object. Armatures carry bones; meshes carry vertices
// and material slots.
type Object struct {
	Name      string
	Type      ObjectType
	Transform Transform

	// Armature data.
	Bones []string

	// Mesh data.
	VertexCount int
	Slots       []*MaterialSlot

	Hidden   bool
	Selected bool
}

// MaterialSlot binds one material to a mesh. Exporters read the slot, so
// swapping slot.Material is how a derived material replaces the original.
type MaterialSlot struct {
	Material *Material
}

// BoneCount returns the number of bones (zero for meshes).
func (o *Object) BoneCount() int {
	return len(o.Bones)
}

// NewArmature creates an armature object with the given bone names.
func NewArmature(name string, bones ...string) *Object {
	return &Object{Name: name, Type: ObjectArmature, Transform: Identity, Bones: bones}
}

// NewMesh creates a mesh object.
func NewMesh(name string, vertexCount int, materials ...*Material) *Object {
	m := &Object{Name: name, Type: ObjectMesh, Transform: Identity, VertexCount: vertexCount}
	for _, mat := range materials {
		m.Slots = append(m.Slots, &MaterialSlot{Material: mat})
	}
	return m
}

// Materials returns the distinct materials referenced by the mesh slots.
func (o *Object) Materials() []*Material {
	seen := make(map[*Material]bool, len(o.Slots))
	var out []*Material
	for _, slot := range o.Slots {
		if slot.Material == nil || seen[slot.Material] {
			continue
		}
		seen[slot.Material] = true
		out = append(out, slot.Material)
	}
	return out
}
