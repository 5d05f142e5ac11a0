// Package rig drives the auto-rig plugin through its four-step sequence,
// retrying the fragile steps across an ordered list of selection strategies.
package rig

import (
	"github.com/vmunix/avatarforge/internal/host"
	"github.com/vmunix/avatarforge/internal/scene"
)

// Role names an object slot a strategy selects; the engine resolves roles to
// live objects at attempt time.
type Role int

const (
	RoleSkeleton Role = iota
	RolePrimaryMesh
)

// Strategy is one immutable selection/mode descriptor. Strategies are data,
// tried in order by the engine, so new ones can be added without touching the
// driver.
type Strategy struct {
	Label    string
	Selected []Role
	Active   Role
	Mode     scene.InteractionMode
}

// retryStrategies is the fixed priority order for steps that retry. The first
// entry doubles as the canonical selection for single-attempt steps.
var retryStrategies = []Strategy{
	{Label: "skeleton active, [skeleton]", Selected: []Role{RoleSkeleton}, Active: RoleSkeleton, Mode: scene.ModeObject},
	{Label: "skeleton active, [skeleton, mesh]", Selected: []Role{RoleSkeleton, RolePrimaryMesh}, Active: RoleSkeleton, Mode: scene.ModeObject},
	{Label: "mesh active, [mesh, skeleton]", Selected: []Role{RolePrimaryMesh, RoleSkeleton}, Active: RolePrimaryMesh, Mode: scene.ModeObject},
	{Label: "skeleton active, [skeleton], pose", Selected: []Role{RoleSkeleton}, Active: RoleSkeleton, Mode: scene.ModePose},
}

// canonical is the single-attempt selection for the marker and matching steps.
var canonical = retryStrategies[:1]

// Selection resolves the strategy against concrete objects.
func (s Strategy) Selection(skeleton, mesh *scene.Object) host.Selection {
	resolve := func(r Role) *scene.Object {
		if r == RoleSkeleton {
			return skeleton
		}
		return mesh
	}
	sel := host.Selection{Active: resolve(s.Active), Mode: s.Mode}
	for _, role := range s.Selected {
		if o := resolve(role); o != nil {
			sel.Selected = append(sel.Selected, o)
		}
	}
	return sel
}
