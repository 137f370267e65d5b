package main

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-gizmo/internal/config"
	"github.com/Faultbox/midgard-gizmo/internal/engine/debug"
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/math"
	"github.com/Faultbox/midgard-gizmo/pkg/shape"
)

// printer writes command results as aligned text or YAML documents.
type printer struct {
	w    io.Writer
	yaml bool
	prec int
}

func newPrinter(w io.Writer, cfg config.OutputConfig) *printer {
	return &printer{w: w, yaml: cfg.Format == "yaml", prec: cfg.Precision}
}

type pointsDoc struct {
	Shape  string       `yaml:"shape"`
	Points [][3]float32 `yaml:"points"`
	Edges  [][2]int     `yaml:"edges,omitempty"`
}

type segmentDoc struct {
	A     [3]float32 `yaml:"a"`
	B     [3]float32 `yaml:"b"`
	Color string     `yaml:"color"`
}

type vertexRow = [debug.FloatsPerVertex]float32

type vertexDoc struct {
	Vertices []vertexRow `yaml:"vertices"`
}

type frameDoc struct {
	Frame    int          `yaml:"frame"`
	Time     string       `yaml:"time"`
	Segments []segmentDoc `yaml:"segments,omitempty"`
	Vertices []vertexRow  `yaml:"vertices,omitempty"`
}

// drawnFrame is the batch content after a frame. Floats is set instead of
// Segments for vertex output.
type drawnFrame struct {
	At       time.Duration
	Segments []debug.Segment
	Floats   []float32
}

func (p *printer) table(name string, points []math.Vec3, edges []shape.Edge) error {
	if p.yaml {
		doc := pointsDoc{Shape: name, Points: triples(points)}
		for _, e := range edges {
			doc.Edges = append(doc.Edges, [2]int(e))
		}
		return p.encode(doc)
	}

	fmt.Fprintf(p.w, "%s (%d points, %d edges)\n", name, len(points), len(edges))
	for i, pt := range points {
		fmt.Fprintf(p.w, "  %2d  %s\n", i, p.vec(pt))
	}
	for _, e := range edges {
		fmt.Fprintf(p.w, "  %d-%d", e[0], e[1])
	}
	fmt.Fprintln(p.w)
	return nil
}

func (p *printer) points(name string, points []math.Vec3) error {
	if p.yaml {
		return p.encode(pointsDoc{Shape: name, Points: triples(points)})
	}
	for i, pt := range points {
		fmt.Fprintf(p.w, "%4d  %s\n", i, p.vec(pt))
	}
	return nil
}

func (p *printer) frames(frames []drawnFrame) error {
	if len(frames) == 1 {
		return p.frame(frames[0])
	}
	if p.yaml {
		docs := make([]frameDoc, len(frames))
		for i, f := range frames {
			docs[i] = frameDoc{
				Frame:    i,
				Time:     f.At.String(),
				Segments: segmentDocs(f.Segments),
				Vertices: vertexRows(f.Floats),
			}
		}
		return p.encode(docs)
	}
	for i, f := range frames {
		fmt.Fprintf(p.w, "frame %d (t=%v)\n", i, f.At)
		if err := p.frame(f); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) frame(f drawnFrame) error {
	if f.Floats != nil {
		return p.vertices(f.Floats)
	}
	return p.segments(f.Segments)
}

func (p *printer) segments(segs []debug.Segment) error {
	if p.yaml {
		return p.encode(segmentDocs(segs))
	}
	for _, s := range segs {
		fmt.Fprintf(p.w, "%s -> %s  %s\n", p.vec(s.A), p.vec(s.B), s.Color.Hex())
	}
	fmt.Fprintf(p.w, "%d lines\n", len(segs))
	return nil
}

func (p *printer) vertices(floats []float32) error {
	rows := vertexRows(floats)
	if p.yaml {
		return p.encode(vertexDoc{Vertices: rows})
	}
	for _, r := range rows {
		c := gizmo.Color{R: r[3], G: r[4], B: r[5], A: r[6]}
		fmt.Fprintf(p.w, "%s  %s\n", p.vec(math.Vec3{X: r[0], Y: r[1], Z: r[2]}), c.Hex())
	}
	fmt.Fprintf(p.w, "%d vertices\n", len(rows))
	return nil
}

func (p *printer) encode(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func (p *printer) vec(v math.Vec3) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", p.prec, v.X, p.prec, v.Y, p.prec, v.Z)
}

func triple(v math.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func triples(points []math.Vec3) [][3]float32 {
	out := make([][3]float32, len(points))
	for i, pt := range points {
		out[i] = triple(pt)
	}
	return out
}

func segmentDocs(segs []debug.Segment) []segmentDoc {
	docs := make([]segmentDoc, len(segs))
	for i, s := range segs {
		docs[i] = segmentDoc{A: triple(s.A), B: triple(s.B), Color: s.Color.Hex()}
	}
	return docs
}

// vertexRows splits flat vertex data into one row per vertex.
func vertexRows(floats []float32) []vertexRow {
	rows := make([]vertexRow, 0, len(floats)/debug.FloatsPerVertex)
	for i := 0; i+debug.FloatsPerVertex <= len(floats); i += debug.FloatsPerVertex {
		rows = append(rows, vertexRow(floats[i:i+debug.FloatsPerVertex]))
	}
	return rows
}
