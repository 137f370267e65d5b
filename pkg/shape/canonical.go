// Package shape generates world-space points for wireframe debug shapes.
//
// Canonical shapes are unit-scale point tables. Every draw transforms a
// table with a position, rotation and scale into a caller-owned buffer, so
// repeated draws do not allocate.
package shape

import "github.com/Faultbox/midgard-gizmo/pkg/math"

// Point counts of the canonical tables.
const (
	CubePointCount   = 8
	QuadPointCount   = 4
	MarkerPointCount = 6
)

// Indices 0-3 are the back face (z = -1) and 4-7 the front face (z = +1),
// each wound top-left, top-right, bottom-right, bottom-left.
var cube = [CubePointCount]math.Vec3{
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: -1, Z: 1},
}

// Unit square in the local XY plane, one unit on each side.
var quad = [QuadPointCount]math.Vec3{
	{X: -0.5, Y: 0.5, Z: 0},
	{X: 0.5, Y: 0.5, Z: 0},
	{X: 0.5, Y: -0.5, Z: 0},
	{X: -0.5, Y: -0.5, Z: 0},
}

// Axis tips: up/down, left/right, back/forward.
var marker = [MarkerPointCount]math.Vec3{
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: 0, Y: 0, Z: 1},
}

// Cube returns a copy of the canonical cube corners.
func Cube() []math.Vec3 {
	out := cube
	return out[:]
}

// Quad returns a copy of the canonical quad corners.
func Quad() []math.Vec3 {
	out := quad
	return out[:]
}

// Marker returns a copy of the canonical marker axis tips.
func Marker() []math.Vec3 {
	out := marker
	return out[:]
}
