// Package material classifies toon-shaded materials and rewrites them into
// portable principled materials for export targets that cannot represent the
// proprietary shader.
package material

import (
	"strings"

	"github.com/vmunix/avatarforge/internal/scene"
)

// DefaultMarkers are the substrings that identify the proprietary toon shader
// in group names, node names, or the material name itself.
var DefaultMarkers = []string{"mtoon", "vrm"}

// IsToon reports whether the material uses the proprietary toon shader,
// detected by marker substrings in a group node's name, its referenced
// sub-graph's name, any node name, or the material's own name.
func IsToon(mat *scene.Material, markers []string) bool {
	if mat == nil {
		return false
	}
	if mat.UsesNodes() {
		for _, n := range mat.Graph.Nodes {
			if n.Type == scene.NodeGroup && n.Subgraph != nil && containsAny(n.Subgraph.Name, markers) {
				return true
			}
			if containsAny(n.Name, markers) {
				return true
			}
		}
	}
	return containsAny(mat.Name, markers)
}

// Resolved is the resolver output: the base-color image (if any), whether it
// carries alpha, and a candidate normal map.
type Resolved struct {
	BaseColor *scene.Image
	HasAlpha  bool
	Normal    *scene.Image
}

// Resolve locates the base-color and normal images of a material graph.
// It first walks backward from the final shader output (the precise semantic
// walk), then falls back to the first non-normal image found anywhere in the
// graph. The shader's internal wiring varies by addon version; the fallback
// trades precision for never producing a texture-less material.
func Resolve(mat *scene.Material) Resolved {
	if mat == nil || !mat.UsesNodes() {
		return Resolved{}
	}

	base, hasAlpha := findLitImage(mat.Graph, make(map[*scene.NodeGraph]bool))
	mains, normals := collectImages(mat.Graph, make(map[*scene.NodeGraph]bool))
	if base == nil && len(mains) > 0 {
		base = mains[0]
		hasAlpha = mains[0].HasAlpha
	}
	var normal *scene.Image
	if len(normals) > 0 {
		normal = normals[0]
	}
	return Resolved{BaseColor: base, HasAlpha: hasAlpha, Normal: normal}
}

// findLitImage follows links from the material output backward, preferring an
// image wired into a "Lit" or "Base Color" input. The visited set guards
// against cyclic group references.
func findLitImage(g *scene.NodeGraph, visited map[*scene.NodeGraph]bool) (*scene.Image, bool) {
	if g == nil || visited[g] {
		return nil, false
	}
	visited[g] = true

	out := g.Output()
	if out == nil {
		return nil, false
	}
	surf := g.Incoming(out, scene.SocketSurface)
	if surf == nil {
		return nil, false
	}

	shader := surf.FromNode
	switch shader.Type {
	case scene.NodeTexImage:
		if shader.Image != nil {
			return shader.Image, shader.Image.HasAlpha
		}
	case scene.NodePrincipled:
		if in := g.Incoming(shader, scene.SocketBaseColor); in != nil {
			if in.FromNode.Type == scene.NodeTexImage && in.FromNode.Image != nil {
				return in.FromNode.Image, in.FromNode.Image.HasAlpha
			}
		}
	case scene.NodeGroup:
		if shader.Subgraph != nil {
			return findGroupLitImage(shader.Subgraph, visited)
		}
	}
	return nil, false
}

// findGroupLitImage searches a group's output-socket bindings for an input
// named like lit/base color and follows its source, recursing into nested
// groups. If no named socket matches, any image feeding the group output is
// accepted.
func findGroupLitImage(grp *scene.NodeGraph, visited map[*scene.NodeGraph]bool) (*scene.Image, bool) {
	if grp == nil || visited[grp] {
		return nil, false
	}
	visited[grp] = true

	outs := grp.GroupOutputs()
	if len(outs) == 0 {
		return nil, false
	}
	gout := outs[0]

	for _, link := range grp.IncomingAll(gout) {
		if !isLitSocket(link.ToSocket) {
			continue
		}
		from := link.FromNode
		if from.Type == scene.NodeTexImage && from.Image != nil {
			return from.Image, from.Image.HasAlpha
		}
		if from.Type == scene.NodeGroup && from.Subgraph != nil {
			if img, alpha := findGroupLitImage(from.Subgraph, visited); img != nil {
				return img, alpha
			}
		}
	}
	// Permissive second pass: any image wired to the group output.
	for _, link := range grp.IncomingAll(gout) {
		if link.FromNode.Type == scene.NodeTexImage && link.FromNode.Image != nil {
			return link.FromNode.Image, link.FromNode.Image.HasAlpha
		}
	}
	return nil, false
}

func isLitSocket(name string) bool {
	low := strings.ToLower(name)
	if strings.Contains(low, "lit") {
		return true
	}
	if strings.Contains(low, "base") && strings.Contains(low, "color") {
		return true
	}
	return low == "color"
}

// collectImages gathers every image in the graph, split into main textures
// and normal-map candidates, recursing into group nodes with a visited guard.
func collectImages(g *scene.NodeGraph, visited map[*scene.NodeGraph]bool) (mains, normals []*scene.Image) {
	if g == nil || visited[g] {
		return nil, nil
	}
	visited[g] = true
	for _, n := range g.Nodes {
		if n.Type == scene.NodeTexImage && n.Image != nil {
			if IsNormalName(n.Image.Name) {
				normals = append(normals, n.Image)
			} else {
				mains = append(mains, n.Image)
			}
		}
		if n.Type == scene.NodeGroup && n.Subgraph != nil {
			m, nm := collectImages(n.Subgraph, visited)
			mains = append(mains, m...)
			normals = append(normals, nm...)
		}
	}
	return mains, normals
}

// IsNormalName reports whether an image name marks it as a normal map.
func IsNormalName(name string) bool {
	low := strings.ToLower(name)
	return strings.Contains(low, "normal") || strings.Contains(low, "nrm")
}

func containsAny(s string, subs []string) bool {
	low := strings.ToLower(s)
	for _, sub := range subs {
		if sub != "" && strings.Contains(low, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
