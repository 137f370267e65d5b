// Package debug collects debug lines into vertex arrays for the renderer.
package debug

import (
	"time"

	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/math"
)

// LineVertex is one end of a debug line, ready for upload.
type LineVertex struct {
	X, Y, Z    float32 // Position
	R, G, B, A float32 // Color
}

// FloatsPerVertex is the number of float32 values in a LineVertex.
const FloatsPerVertex = 7

type timedLine struct {
	a, b math.Vec3
	c    gizmo.Color
	left time.Duration
}

// LineBatch records lines drawn through it and keeps each one alive for its
// duration. It implements gizmo.LineRenderer and is not safe for concurrent
// use.
type LineBatch struct {
	lines []timedLine
}

// NewLineBatch creates an empty batch.
func NewLineBatch() *LineBatch {
	return &LineBatch{}
}

// DrawLine queues a line. A zero or negative duration keeps the line until
// the next Advance.
func (b *LineBatch) DrawLine(p, q math.Vec3, c gizmo.Color, d time.Duration) {
	b.lines = append(b.lines, timedLine{a: p, b: q, c: c, left: d})
}

// Advance ages every line by dt and drops the ones whose time ran out.
// Single-frame lines are always dropped.
func (b *LineBatch) Advance(dt time.Duration) {
	kept := b.lines[:0]
	for _, l := range b.lines {
		l.left -= dt
		if l.left > 0 {
			kept = append(kept, l)
		}
	}
	// Clear the tail so dropped entries are not retained.
	for i := len(kept); i < len(b.lines); i++ {
		b.lines[i] = timedLine{}
	}
	b.lines = kept
}

// Len returns the number of live lines.
func (b *LineBatch) Len() int {
	return len(b.lines)
}

// Segment is a live line as seen by callers.
type Segment struct {
	A, B  math.Vec3
	Color gizmo.Color
}

// Segments returns a copy of the live lines in draw order.
func (b *LineBatch) Segments() []Segment {
	out := make([]Segment, len(b.lines))
	for i, l := range b.lines {
		out[i] = Segment{A: l.a, B: l.b, Color: l.c}
	}
	return out
}

// Vertices returns two vertices per live line, suitable for GL_LINES.
func (b *LineBatch) Vertices() []LineVertex {
	out := make([]LineVertex, 0, len(b.lines)*2)
	for _, l := range b.lines {
		out = append(out, vertex(l.a, l.c), vertex(l.b, l.c))
	}
	return out
}

// Floats returns Vertices flattened to [x, y, z, r, g, b, a] per vertex.
func (b *LineBatch) Floats() []float32 {
	out := make([]float32, 0, len(b.lines)*2*FloatsPerVertex)
	for _, v := range b.Vertices() {
		out = append(out, v.X, v.Y, v.Z, v.R, v.G, v.B, v.A)
	}
	return out
}

func vertex(p math.Vec3, c gizmo.Color) LineVertex {
	return LineVertex{p.X, p.Y, p.Z, c.R, c.G, c.B, c.A}
}
