package material

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vmunix/avatarforge/internal/scene"
)

// Policy controls the name-based transparency classification applied to the
// real-time target. The substrings reflect typical avatar material naming;
// they are configuration, not fixed logic, because unconventional names can
// misclassify.
type Policy struct {
	ClipSubstrings []string
	AlphaThreshold float64
}

// DefaultPolicy returns the stock avatar-oriented classification.
func DefaultPolicy() Policy {
	return Policy{
		ClipSubstrings: []string{"face", "eyelash", "eye", "hair"},
		AlphaThreshold: 0.5,
	}
}

// Rewriter replaces toon materials on mesh slots with cached principled
// derivatives. The cache guarantees at most one derived material per original
// per export target; it is scoped to one asset, so create a fresh Rewriter
// per export pass.
type Rewriter struct {
	markers []string
	policy  Policy
	cache   map[string]*scene.Material
	log     *slog.Logger
}

// NewRewriter creates a rewriter with the given shader markers and policy.
func NewRewriter(markers []string, policy Policy, log *slog.Logger) *Rewriter {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	if log == nil {
		log = slog.Default()
	}
	return &Rewriter{
		markers: markers,
		policy:  policy,
		cache:   make(map[string]*scene.Material),
		log:     log,
	}
}

// Prepare rewrites every toon material on the given meshes for the target
// format (lowercase, e.g. "glb"). Standard materials pass through untouched
// except that back-face culling is disabled on every material, toon or not.
func (r *Rewriter) Prepare(w *scene.Workspace, meshes []*scene.Object, target string) {
	replaced := make(map[*scene.Material]*scene.Material)
	for _, mesh := range meshes {
		if mesh == nil || mesh.Type != scene.ObjectMesh {
			continue
		}
		for _, slot := range mesh.Slots {
			mat := slot.Material
			if mat == nil {
				continue
			}
			mat.BackfaceCulling = false

			if derived, ok := replaced[mat]; ok {
				slot.Material = derived
				continue
			}
			if !mat.UsesNodes() || !IsToon(mat, r.markers) {
				assignColorSpaces(mat)
				continue
			}

			derived := r.derive(w, mat, target)
			derived.BackfaceCulling = false
			assignColorSpaces(derived)
			replaced[mat] = derived
			slot.Material = derived
		}
	}
}

// derive builds (or fetches from cache) the principled replacement for a toon
// material, keyed by {original}_{target}_principled.
func (r *Rewriter) derive(w *scene.Workspace, orig *scene.Material, target string) *scene.Material {
	key := fmt.Sprintf("%s_%s_principled", orig.Name, strings.ToLower(target))
	if m, ok := r.cache[key]; ok {
		return m
	}

	resolved := Resolve(orig)

	m := scene.NewMaterial(key)
	g := scene.NewGraph(key)
	out := g.AddNode(&scene.Node{Name: "Material Output", Type: scene.NodeOutputMaterial})
	principled := g.AddNode(&scene.Node{Name: "Principled BSDF", Type: scene.NodePrincipled})
	g.Connect(principled, scene.SocketBSDF, out, scene.SocketSurface)

	if resolved.BaseColor != nil {
		tex := g.AddNode(&scene.Node{Name: "Base Color", Type: scene.NodeTexImage, Image: resolved.BaseColor})
		g.Connect(tex, scene.SocketColor, principled, scene.SocketBaseColor)
		if resolved.HasAlpha {
			g.Connect(tex, scene.SocketAlpha, principled, scene.SocketAlpha)
			m.Blend = scene.BlendHashed
		}
	}
	if resolved.Normal != nil {
		texN := g.AddNode(&scene.Node{Name: "Normal Texture", Type: scene.NodeTexImage, Image: resolved.Normal})
		nm := g.AddNode(&scene.Node{Name: "Normal Map", Type: scene.NodeNormalMap})
		g.Connect(texN, scene.SocketColor, nm, scene.SocketColor)
		g.Connect(nm, scene.SocketNormal, principled, scene.SocketNormal)
	}
	m.Graph = g

	w.AddMaterial(m)
	r.cache[key] = m
	r.log.Info("created principled material",
		"name", key,
		"from", orig.Name,
		"texture", imageName(resolved.BaseColor),
		"normal", imageName(resolved.Normal))
	return m
}

// ClassifyTransparency applies the name-based clip/opaque policy to every
// material on the given meshes, overriding the alpha wiring decision. Only
// the real-time target needs this; callers invoke it after Prepare.
func (r *Rewriter) ClassifyTransparency(meshes []*scene.Object) {
	seen := make(map[*scene.Material]bool)
	for _, mesh := range meshes {
		if mesh == nil || mesh.Type != scene.ObjectMesh {
			continue
		}
		for _, mat := range mesh.Materials() {
			if seen[mat] {
				continue
			}
			seen[mat] = true
			if containsAny(mat.Name, r.policy.ClipSubstrings) {
				mat.Blend = scene.BlendClip
				mat.AlphaThreshold = r.policy.AlphaThreshold
			} else {
				mat.Blend = scene.BlendOpaque
			}
		}
	}
}

// assignColorSpaces marks every image in the material graph as Non-Color or
// sRGB. Images feeding normal/data sockets, or named like normal maps, must
// not be gamma-decoded on read.
func assignColorSpaces(mat *scene.Material) {
	if !mat.UsesNodes() {
		return
	}
	assignGraphColorSpaces(mat.Graph, make(map[*scene.NodeGraph]bool))
}

var nonColorSockets = map[string]bool{
	scene.SocketNormal: true,
	scene.SocketAlpha:  true,
	"Metallic":         true,
	"Roughness":        true,
}

func assignGraphColorSpaces(g *scene.NodeGraph, visited map[*scene.NodeGraph]bool) {
	if g == nil || visited[g] {
		return
	}
	visited[g] = true
	for _, n := range g.Nodes {
		if n.Type == scene.NodeGroup && n.Subgraph != nil {
			assignGraphColorSpaces(n.Subgraph, visited)
			continue
		}
		if n.Type != scene.NodeTexImage || n.Image == nil {
			continue
		}
		nonColor := IsNormalName(n.Image.Name)
		if !nonColor {
			for _, l := range g.Links {
				if l.FromNode != n {
					continue
				}
				low := strings.ToLower(l.ToSocket)
				if nonColorSockets[l.ToSocket] || strings.Contains(low, "normal") || strings.Contains(low, "bump") {
					nonColor = true
					break
				}
			}
		}
		if nonColor {
			n.Image.ColorSpace = scene.ColorSpaceNonColor
		} else {
			n.Image.ColorSpace = scene.ColorSpaceSRGB
		}
	}
}

func imageName(img *scene.Image) string {
	if img == nil {
		return ""
	}
	return img.Name
}
