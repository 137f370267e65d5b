package shape

import (
	stdmath "math"

	"github.com/Faultbox/midgard-gizmo/pkg/math"
)

// TransformInto writes TRS(position, rotation, scale) * src[i] into dst[i]
// for every i below min(len(dst), len(src)) and returns that count.
// Entries of dst past the count are left untouched.
func TransformInto(dst, src []math.Vec3, position math.Vec3, rotation math.Quat, scale math.Vec3) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	m := math.TRS(position, rotation, scale)
	for i := 0; i < n; i++ {
		dst[i] = m.TransformVec3(src[i])
	}
	return n
}

// TransformToNew returns a freshly allocated copy of src transformed by
// TRS(position, rotation, scale).
func TransformToNew(src []math.Vec3, position math.Vec3, rotation math.Quat, scale math.Vec3) []math.Vec3 {
	dst := make([]math.Vec3, len(src))
	TransformInto(dst, src, position, rotation, scale)
	return dst
}

// RegularPolygon fills dst with len(dst) points evenly spaced on a circle of
// the given diameter. Point i sits at angle i*2π/n in the local XY plane
// before the rotation and translation are applied. dst is returned for
// chaining.
func RegularPolygon(dst []math.Vec3, position math.Vec3, rotation math.Quat, diameter float32) []math.Vec3 {
	n := len(dst)
	if n == 0 {
		return dst
	}
	radius := diameter / 2
	m := math.TRS(position, rotation, math.Vec3{X: radius, Y: radius, Z: radius})
	step := 2 * stdmath.Pi / float64(n)
	for i := range dst {
		theta := step * float64(i)
		local := math.Vec3{
			X: float32(stdmath.Cos(theta)),
			Y: float32(stdmath.Sin(theta)),
		}
		dst[i] = m.TransformVec3(local)
	}
	return dst
}

// CubePoints writes the corners of a box of full extent size centered on
// position. dst should hold CubePointCount points.
func CubePoints(dst []math.Vec3, position math.Vec3, rotation math.Quat, size math.Vec3) int {
	return TransformInto(dst, cube[:], position, rotation, size.Scale(0.5))
}

// QuadPoints writes the corners of a rectangle of full extent size in the
// rotated local XY plane. dst should hold QuadPointCount points.
func QuadPoints(dst []math.Vec3, position math.Vec3, rotation math.Quat, size math.Vec2) int {
	return TransformInto(dst, quad[:], position, rotation, size.Vec3(1))
}

// MarkerPoints writes the axis tips of a cross whose spokes span size end to
// end, per axis. dst should hold MarkerPointCount points.
func MarkerPoints(dst []math.Vec3, position math.Vec3, rotation math.Quat, size math.Vec3) int {
	return TransformInto(dst, marker[:], position, rotation, size.Scale(0.5))
}

// NewCubePoints is CubePoints into a new slice.
func NewCubePoints(position math.Vec3, rotation math.Quat, size math.Vec3) []math.Vec3 {
	dst := make([]math.Vec3, CubePointCount)
	CubePoints(dst, position, rotation, size)
	return dst
}

// NewQuadPoints is QuadPoints into a new slice.
func NewQuadPoints(position math.Vec3, rotation math.Quat, size math.Vec2) []math.Vec3 {
	dst := make([]math.Vec3, QuadPointCount)
	QuadPoints(dst, position, rotation, size)
	return dst
}

// NewMarkerPoints is MarkerPoints into a new slice.
func NewMarkerPoints(position math.Vec3, rotation math.Quat, size math.Vec3) []math.Vec3 {
	dst := make([]math.Vec3, MarkerPointCount)
	MarkerPoints(dst, position, rotation, size)
	return dst
}

// NewPolygon returns n points of a regular polygon. A negative n yields no
// points.
func NewPolygon(position math.Vec3, rotation math.Quat, diameter float32, n int) []math.Vec3 {
	return RegularPolygon(make([]math.Vec3, max(n, 0)), position, rotation, diameter)
}
