package debug

import (
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/math"
)

// DefaultBBoxPadding is the default padding for selection boxes.
const DefaultBBoxPadding = 1.0

// DrawAABB draws a model-space bounding box placed in the world.
// bbox is [minX, minY, minZ, maxX, maxY, maxZ]; each axis is scaled, then
// padded on all sides, then offset by position.
func DrawAABB(d *gizmo.Drawer, bbox [6]float32, position, scale math.Vec3, padding float32, c gizmo.Color) {
	lo := math.Vec3{X: bbox[0], Y: bbox[1], Z: bbox[2]}.Mul(scale)
	hi := math.Vec3{X: bbox[3], Y: bbox[4], Z: bbox[5]}.Mul(scale)

	// Handle negative scales
	if lo.X > hi.X {
		lo.X, hi.X = hi.X, lo.X
	}
	if lo.Y > hi.Y {
		lo.Y, hi.Y = hi.Y, lo.Y
	}
	if lo.Z > hi.Z {
		lo.Z, hi.Z = hi.Z, lo.Z
	}

	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	lo = lo.Sub(pad).Add(position)
	hi = hi.Add(pad).Add(position)

	d.Bounds(lo, hi, c)
}
