// Package gizmo draws wireframe debug shapes as line segments.
//
// A Drawer turns shape parameters into points with package shape and hands
// each outline edge to a LineRenderer supplied by the host engine.
package gizmo

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gizmo/pkg/math"
	"github.com/Faultbox/midgard-gizmo/pkg/shape"
)

// LineRenderer draws a transient world-space line segment. The host decides
// how long a line with duration d stays visible; zero means a single frame.
type LineRenderer interface {
	DrawLine(a, b math.Vec3, c Color, d time.Duration)
}

// LineRendererFunc adapts a function to LineRenderer.
type LineRendererFunc func(a, b math.Vec3, c Color, d time.Duration)

// DrawLine calls f.
func (f LineRendererFunc) DrawLine(a, b math.Vec3, c Color, d time.Duration) {
	f(a, b, c, d)
}

// Options configures a Drawer.
type Options struct {
	Segments  int           // points per full circle
	PointSize float32       // span of Point markers
	Duration  time.Duration // lifetime passed with every line
	Logger    *zap.Logger
}

// DefaultOptions returns the settings used when none are configured.
func DefaultOptions() Options {
	return Options{
		Segments:  30,
		PointSize: 0.1,
	}
}

// Drawer emits debug shapes to a LineRenderer.
//
// A Drawer owns scratch point buffers that every call overwrites, so it is
// not safe for concurrent use. Use one Drawer per goroutine.
type Drawer struct {
	r   LineRenderer
	log *zap.Logger

	Segments  int
	PointSize float32
	Duration  time.Duration

	cube   [shape.CubePointCount]math.Vec3
	quad   [shape.QuadPointCount]math.Vec3
	marker [shape.MarkerPointCount]math.Vec3
	circle []math.Vec3
}

// New creates a Drawer that draws through r.
func New(r LineRenderer, opts Options) *Drawer {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Drawer{
		r:         r,
		log:       log,
		Segments:  opts.Segments,
		PointSize: opts.PointSize,
		Duration:  opts.Duration,
	}
}

// Line draws a single segment.
func (d *Drawer) Line(a, b math.Vec3, c Color) {
	d.r.DrawLine(a, b, c, d.Duration)
}

// Edges draws every edge of a topology table over points. Edges that name
// an index outside points are skipped.
func (d *Drawer) Edges(points []math.Vec3, edges []shape.Edge, c Color) {
	for _, e := range edges {
		if e[0] < 0 || e[0] >= len(points) || e[1] < 0 || e[1] >= len(points) {
			d.log.Debug("skipping edge outside point buffer",
				zap.Int("from", e[0]), zap.Int("to", e[1]), zap.Int("points", len(points)))
			continue
		}
		d.r.DrawLine(points[e[0]], points[e[1]], c, d.Duration)
	}
}

// Marker draws a 3D cross whose spokes span size end to end, per axis.
func (d *Drawer) Marker(position math.Vec3, rotation math.Quat, size math.Vec3, c Color) {
	shape.MarkerPoints(d.marker[:], position, rotation, size)
	d.Edges(d.marker[:], shape.MarkerEdges, c)
}

// Marker2D draws the vertical and horizontal spokes of a marker only.
func (d *Drawer) Marker2D(position math.Vec3, rotation math.Quat, size math.Vec3, c Color) {
	shape.MarkerPoints(d.marker[:], position, rotation, size)
	d.Edges(d.marker[:], shape.Marker2DEdges, c)
}

// Point draws an axis-aligned marker of the default point size.
func (d *Drawer) Point(position math.Vec3, c Color) {
	d.PointSized(position, math.One.Scale(d.PointSize), c)
}

// PointSized draws an axis-aligned marker with a separate span per axis.
func (d *Drawer) PointSized(position, size math.Vec3, c Color) {
	d.Marker(position, math.QuatIdentity(), size, c)
}

// Point2D draws a flat marker of the default point size facing rotation.
func (d *Drawer) Point2D(position math.Vec3, rotation math.Quat, c Color) {
	d.Marker2D(position, rotation, math.One.Scale(d.PointSize), c)
}

// Plane draws a rectangle of full extent size in the rotated XY plane.
func (d *Drawer) Plane(position math.Vec3, rotation math.Quat, size math.Vec2, c Color) {
	shape.QuadPoints(d.quad[:], position, rotation, size)
	d.Edges(d.quad[:], shape.QuadEdges, c)
}

// PlaneNormal draws a rectangle facing along normal.
func (d *Drawer) PlaneNormal(position, normal math.Vec3, size math.Vec2, c Color) {
	d.Plane(position, math.QuatLook(normal), size, c)
}

// Cuboid draws an oriented box of full extent size centered on position.
func (d *Drawer) Cuboid(position math.Vec3, rotation math.Quat, size math.Vec3, c Color) {
	shape.CubePoints(d.cube[:], position, rotation, size)
	d.Edges(d.cube[:], shape.CuboidEdges, c)
}

// CuboidEuler draws a box rotated by Euler angles in degrees.
func (d *Drawer) CuboidEuler(position, size, degrees math.Vec3, c Color) {
	d.Cuboid(position, math.QuatFromEulerDegrees(degrees), size, c)
}

// Bounds draws the axis-aligned box spanning lo to hi.
func (d *Drawer) Bounds(lo, hi math.Vec3, c Color) {
	center := lo.Add(hi).Scale(0.5)
	d.Cuboid(center, math.QuatIdentity(), hi.Sub(lo), c)
}

// Circle draws a circle with the default segment count. The circle lies in
// the rotated XY plane.
func (d *Drawer) Circle(position math.Vec3, rotation math.Quat, diameter float32, c Color) {
	d.CircleSegments(position, rotation, diameter, d.Segments, c)
}

// CircleNormal draws a circle facing along normal.
func (d *Drawer) CircleNormal(position, normal math.Vec3, diameter float32, c Color) {
	d.Circle(position, math.QuatLook(normal), diameter, c)
}

// CircleSegments draws a closed polygon with the given number of points.
func (d *Drawer) CircleSegments(position math.Vec3, rotation math.Quat, diameter float32, segments int, c Color) {
	points := d.polygon(position, rotation, diameter, segments)
	d.Edges(points, shape.PolygonEdges(len(points)), c)
}

// Arc draws the part of a segments-point circle between point indices start
// and end. Both indices are clamped to the circle.
func (d *Drawer) Arc(position math.Vec3, rotation math.Quat, diameter float32, segments, start, end int, c Color) {
	points := d.polygon(position, rotation, diameter, segments)
	if s, e := shape.ClampArc(len(points), start, end); s != start || e != end {
		d.log.Debug("arc range clamped",
			zap.Int("start", start), zap.Int("end", end),
			zap.Int("clampedStart", s), zap.Int("clampedEnd", e))
	}
	d.Edges(points, shape.ArcEdges(len(points), start, end), c)
}

// ArcNormal draws an arc on a circle facing along normal.
func (d *Drawer) ArcNormal(position, normal math.Vec3, diameter float32, segments, start, end int, c Color) {
	d.Arc(position, math.QuatLook(normal), diameter, segments, start, end, c)
}

// Sphere draws three orthogonal circles around center.
func (d *Drawer) Sphere(center math.Vec3, diameter float32, c Color) {
	d.CircleNormal(center, math.Right, diameter, c)
	d.CircleNormal(center, math.Up, diameter, c)
	d.CircleNormal(center, math.Forward, diameter, c)
}

// Capsule outlines a capsule between the cap centers start and end: a circle
// around each cap, two side lines offset by radius along right and the
// half-circle cap profiles in the same plane. right is made perpendicular to
// the capsule axis first.
func (d *Drawer) Capsule(start, end math.Vec3, radius float32, right math.Vec3, c Color) {
	axis, side := d.capsuleFrame(start, end, right)
	d.CircleNormal(start, axis, 2*radius, c)
	d.CircleNormal(end, axis, 2*radius, c)
	d.capsuleProfile(start, end, axis, side, radius, c)
}

// Capsule3D is Capsule plus a second profile rotated 90 degrees about the
// capsule axis.
func (d *Drawer) Capsule3D(start, end math.Vec3, radius float32, right math.Vec3, c Color) {
	axis, side := d.capsuleFrame(start, end, right)
	d.CircleNormal(start, axis, 2*radius, c)
	d.CircleNormal(end, axis, 2*radius, c)
	d.capsuleProfile(start, end, axis, side, radius, c)
	d.capsuleProfile(start, end, axis, axis.Cross(side), radius, c)
}

func (d *Drawer) capsuleFrame(start, end, right math.Vec3) (axis, side math.Vec3) {
	axis = end.Sub(start).Normalize()
	if axis == (math.Vec3{}) {
		d.log.Debug("capsule with coincident caps, using up axis")
		axis = math.Up
	}
	side = right.Sub(axis.Scale(right.Dot(axis))).Normalize()
	if side == (math.Vec3{}) {
		side = axis.Perpendicular()
	}
	return axis, side
}

// capsuleProfile draws the two side lines at ±side and the cap arcs that
// bulge outward past each end.
func (d *Drawer) capsuleProfile(start, end, axis, side math.Vec3, radius float32, c Color) {
	offset := side.Scale(radius)
	d.Line(start.Add(offset), end.Add(offset), c)
	d.Line(start.Sub(offset), end.Sub(offset), c)

	segments := d.Segments + d.Segments%2
	half := segments / 2

	// Local X runs along side and local Y points out of the cap, so the
	// first half of the circle is the outer half.
	out := axis
	d.Arc(end, math.QuatFromBasis(side, out, side.Cross(out)), 2*radius, segments, 0, half, c)
	out = axis.Neg()
	d.Arc(start, math.QuatFromBasis(side, out, side.Cross(out)), 2*radius, segments, 0, half, c)
}

// polygon fills the scratch circle buffer, growing it when needed.
func (d *Drawer) polygon(position math.Vec3, rotation math.Quat, diameter float32, segments int) []math.Vec3 {
	if segments <= 0 {
		d.log.Debug("polygon with no segments", zap.Int("segments", segments))
		return nil
	}
	if cap(d.circle) < segments {
		d.circle = make([]math.Vec3, segments)
	}
	return shape.RegularPolygon(d.circle[:segments], position, rotation, diameter)
}
