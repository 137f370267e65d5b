package scene

import (
	"time"

	"github.com/Faultbox/midgard-gizmo/internal/engine/debug"
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/math"
)

// Draw replays every shape through d. Shapes without a color use fallback.
// A shape with its own duration overrides d.Duration for that shape only.
// Shapes missing the fields Validate requires are skipped.
func (s *Scene) Draw(d *gizmo.Drawer, fallback gizmo.Color) {
	base := d.Duration
	defer func() { d.Duration = base }()

	for _, sh := range s.Shapes {
		d.Duration = base
		if sh.Duration > 0 {
			d.Duration = sh.Duration
		}
		sh.draw(d, sh.color(fallback))
	}
}

func (sh Shape) draw(d *gizmo.Drawer, c gizmo.Color) {
	pos := sh.Position.vec()
	rot := sh.rotation()

	saved := d.Segments
	d.Segments = sh.segments(d)
	defer func() { d.Segments = saved }()

	switch sh.Kind {
	case KindLine, KindCapsule, KindCapsule3D:
		if sh.End == nil {
			return
		}
	case KindAABB:
		if sh.Box == nil {
			return
		}
	}

	switch sh.Kind {
	case KindLine:
		d.Line(pos, sh.End.vec(), c)
	case KindPoint:
		d.Marker(pos, rot, sh.size3(d.PointSize), c)
	case KindPoint2D:
		d.Marker2D(pos, rot, sh.size3(d.PointSize), c)
	case KindPlane:
		v := sh.size3(1)
		d.Plane(pos, rot, math.Vec2{X: v.X, Y: v.Y}, c)
	case KindCuboid:
		d.Cuboid(pos, rot, sh.size3(1), c)
	case KindCircle:
		d.Circle(pos, rot, sh.Diameter, c)
	case KindArc:
		d.Arc(pos, rot, sh.Diameter, d.Segments, sh.Start, sh.Stop, c)
	case KindSphere:
		d.Sphere(pos, sh.Diameter, c)
	case KindCapsule, KindCapsule3D:
		right := math.Right
		if sh.Right != nil {
			right = sh.Right.vec()
		}
		if sh.Kind == KindCapsule3D {
			d.Capsule3D(pos, sh.End.vec(), sh.Radius, right, c)
		} else {
			d.Capsule(pos, sh.End.vec(), sh.Radius, right, c)
		}
	case KindAABB:
		padding := float32(debug.DefaultBBoxPadding)
		if sh.Padding != nil {
			padding = *sh.Padding
		}
		debug.DrawAABB(d, *sh.Box, pos, sh.size3(1), padding, c)
	}
}

func (sh Shape) rotation() math.Quat {
	if sh.Normal != nil {
		return math.QuatLook(sh.Normal.vec())
	}
	return math.QuatFromEulerDegrees(sh.Rotation.vec())
}

func (sh Shape) color(fallback gizmo.Color) gizmo.Color {
	if sh.Color == "" {
		return fallback
	}
	c, err := gizmo.ParseColor(sh.Color)
	if err != nil {
		return fallback
	}
	return c
}

func (sh Shape) segments(d *gizmo.Drawer) int {
	if sh.Segments > 0 {
		return sh.Segments
	}
	return d.Segments
}

// size3 reads up to three size components; a single value is uniform and
// missing trailing components repeat def.
func (sh Shape) size3(def float32) math.Vec3 {
	switch len(sh.Size) {
	case 0:
		return math.Vec3{X: def, Y: def, Z: def}
	case 1:
		return math.Vec3{X: sh.Size[0], Y: sh.Size[0], Z: sh.Size[0]}
	case 2:
		return math.Vec3{X: sh.Size[0], Y: sh.Size[1], Z: def}
	default:
		return math.Vec3{X: sh.Size[0], Y: sh.Size[1], Z: sh.Size[2]}
	}
}

// MaxDuration returns the longest shape duration, or zero.
func (s *Scene) MaxDuration() time.Duration {
	var longest time.Duration
	for _, sh := range s.Shapes {
		longest = max(longest, sh.Duration)
	}
	return longest
}
