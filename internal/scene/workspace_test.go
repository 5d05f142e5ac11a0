package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOnly(t *testing.T) {
	w := New(testLogger())
	a := w.AddObject(NewArmature("Rig", "hips"))
	b := w.AddObject(NewMesh("Body", 100))
	c := w.AddObject(NewMesh("Hair", 50))
	c.Selected = true

	w.SelectOnly(a, b)

	assert.True(t, a.Selected)
	assert.True(t, b.Selected)
	assert.False(t, c.Selected)
	assert.Equal(t, a, w.Active)
}

func TestReset_ClearsScene(t *testing.T) {
	w := New(testLogger())
	mat := w.AddMaterial(NewMaterial("Skin"))
	img := w.AddImage(&Image{Name: "skin.png", FilePath: "/tmp/skin.png"})
	mat.Graph = NewGraph("Skin")
	mat.Graph.AddNode(&Node{Name: "Tex", Type: NodeTexImage, Image: img})
	mesh := w.AddObject(NewMesh("Body", 100, mat))
	mesh.Hidden = true
	w.SetActive(mesh)
	w.SetMode(ModePose)
	w.Collections = []string{"VRM"}

	w.Reset()

	assert.Empty(t, w.Objects)
	assert.Empty(t, w.Materials, "orphaned material should be purged")
	assert.Empty(t, w.Images, "orphaned image should be purged")
	assert.Empty(t, w.Collections)
	assert.Nil(t, w.Active)
	assert.Equal(t, ModeObject, w.Mode)
}

func TestPurgeOrphans_KeepsReferenced(t *testing.T) {
	w := New(testLogger())

	used := w.AddMaterial(NewMaterial("Used"))
	w.AddMaterial(NewMaterial("Orphan"))
	w.AddObject(NewMesh("Body", 100, used))

	// Image referenced only through a nested group subgraph.
	nested := w.AddImage(&Image{Name: "nested.png"})
	w.AddImage(&Image{Name: "orphan.png"})
	used.Graph = NewGraph("Used")
	sub := NewGraph("Group")
	sub.AddNode(&Node{Name: "Tex", Type: NodeTexImage, Image: nested})
	used.Graph.AddNode(&Node{Name: "G", Type: NodeGroup, Subgraph: sub})

	w.PurgeOrphans()

	require.Len(t, w.Materials, 1)
	assert.Equal(t, used, w.Materials[0])
	require.Len(t, w.Images, 1)
	assert.Equal(t, nested, w.Images[0])
}

func TestPurgeOrphans_CyclicGroups(t *testing.T) {
	w := New(testLogger())
	mat := w.AddMaterial(NewMaterial("Cyclic"))
	img := w.AddImage(&Image{Name: "tex.png"})
	w.AddObject(NewMesh("Body", 10, mat))

	a := NewGraph("A")
	b := NewGraph("B")
	a.AddNode(&Node{Name: "ToB", Type: NodeGroup, Subgraph: b})
	b.AddNode(&Node{Name: "ToA", Type: NodeGroup, Subgraph: a})
	b.AddNode(&Node{Name: "Tex", Type: NodeTexImage, Image: img})
	mat.Graph = a

	// Must terminate and keep the image.
	w.PurgeOrphans()
	require.Len(t, w.Images, 1)
}

func TestApplyTransforms(t *testing.T) {
	w := New(testLogger())
	mesh := w.AddObject(NewMesh("Body", 10))
	mesh.Transform = Transform{Scale: [3]float64{0.01, 0.01, 0.01}, Rotation: [3]float64{1.57, 0, 0}}

	w.ApplyTransforms(mesh, nil)

	assert.Equal(t, Identity, mesh.Transform)
}

func TestMaterialsDedup(t *testing.T) {
	mat := NewMaterial("Shared")
	mesh := NewMesh("Body", 10, mat, mat)
	mesh.Slots = append(mesh.Slots, &MaterialSlot{})

	got := mesh.Materials()
	require.Len(t, got, 1)
	assert.Equal(t, mat, got[0])
}
