package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-gizmo/internal/config"
	"github.com/Faultbox/midgard-gizmo/internal/engine/debug"
	"github.com/Faultbox/midgard-gizmo/internal/logger"
	"github.com/Faultbox/midgard-gizmo/internal/scene"
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/math"
	"github.com/Faultbox/midgard-gizmo/pkg/shape"
)

func cmdShapes(out *printer) error {
	tables := []struct {
		name   string
		points []math.Vec3
		edges  []shape.Edge
	}{
		{"cube", shape.Cube(), shape.CuboidEdges},
		{"quad", shape.Quad(), shape.QuadEdges},
		{"marker", shape.Marker(), shape.MarkerEdges},
	}

	for _, t := range tables {
		if err := out.table(t.name, t.points, t.edges); err != nil {
			return err
		}
	}
	return nil
}

func cmdPoints(cfg *config.Config, out *printer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: points <cube|quad|marker|polygon> [options]")
	}
	kind := args[0]

	fs := flag.NewFlagSet("points", flag.ContinueOnError)
	pos := fs.String("pos", "0,0,0", "Position x,y,z")
	rot := fs.String("rot", "0,0,0", "Euler rotation in degrees x,y,z")
	size := fs.String("size", "", "Size (cube and marker x,y,z; quad x,y; one value for all axes)")
	n := fs.Int("n", cfg.Draw.Segments, "Polygon point count")
	diameter := fs.Float64("diameter", 1, "Polygon diameter")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	p, err := parseVec3(*pos)
	if err != nil {
		return fmt.Errorf("-pos: %w", err)
	}
	angles, err := parseVec3(*rot)
	if err != nil {
		return fmt.Errorf("-rot: %w", err)
	}
	q := math.QuatFromEulerDegrees(angles)

	var points []math.Vec3
	switch kind {
	case "cube":
		s, err := parseSize(*size, 3)
		if err != nil {
			return fmt.Errorf("-size: %w", err)
		}
		points = make([]math.Vec3, shape.CubePointCount)
		shape.CubePoints(points, p, q, math.Vec3{X: s[0], Y: s[1], Z: s[2]})
	case "quad":
		s, err := parseSize(*size, 2)
		if err != nil {
			return fmt.Errorf("-size: %w", err)
		}
		points = make([]math.Vec3, shape.QuadPointCount)
		shape.QuadPoints(points, p, q, math.Vec2{X: s[0], Y: s[1]})
	case "marker":
		s, err := parseSize(*size, 3)
		if err != nil {
			return fmt.Errorf("-size: %w", err)
		}
		points = shape.NewMarkerPoints(p, q, math.Vec3{X: s[0], Y: s[1], Z: s[2]})
	case "polygon", "circle":
		if *n < 0 {
			return fmt.Errorf("-n must not be negative, got %d", *n)
		}
		points = shape.NewPolygon(p, q, float32(*diameter), *n)
	default:
		return fmt.Errorf("unknown shape %q", kind)
	}

	return out.points(kind, points)
}

func cmdDraw(cfg *config.Config, out *printer, args []string) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	frames := fs.Int("frames", 1, "Number of frames to print")
	dt := fs.Duration("dt", 0, "Time between frames (default: longest duration spread over the frames)")
	vertices := fs.Bool("vertices", false, "Print GL_LINES vertex data instead of segments")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: draw [options] <scene.yaml>")
	}
	if *frames < 1 {
		return fmt.Errorf("-frames must be at least 1, got %d", *frames)
	}

	s, err := scene.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	batch := debug.NewLineBatch()
	opts := cfg.DrawerOptions()
	opts.Logger = logger.Named("gizmo")
	d := gizmo.New(batch, opts)

	s.Draw(d, cfg.DrawColor())
	logger.Sugar.Debugf("scene %q produced %d lines", s.Name, batch.Len())

	step := *dt
	if step == 0 && *frames > 1 {
		span := max(s.MaxDuration(), cfg.Draw.Duration)
		step = span / time.Duration(*frames-1)
	}

	drawn := make([]drawnFrame, 0, *frames)
	for i := 0; i < *frames; i++ {
		if i > 0 {
			batch.Advance(step)
		}
		f := drawnFrame{At: time.Duration(i) * step}
		if *vertices {
			f.Floats = batch.Floats()
		} else {
			f.Segments = batch.Segments()
		}
		drawn = append(drawn, f)
	}

	return out.frames(drawn)
}

func cmdConfig(cfg *config.Config, w io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: config <show|save> [path]")
	}

	switch args[0] {
	case "show":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "save":
		path := config.DefaultPath()
		var err error
		if len(args) > 1 {
			path = args[1]
			err = cfg.SaveTo(path)
		} else {
			err = cfg.Save()
		}
		if err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", path))
		fmt.Fprintf(w, "Saved %s\n", path)
		return nil
	default:
		return fmt.Errorf("unknown config command %q", args[0])
	}
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (math.Vec3, error) {
	v, err := parseFloats(s)
	if err != nil {
		return math.Vec3{}, err
	}
	if len(v) != 3 {
		return math.Vec3{}, fmt.Errorf("expected 3 values, got %d", len(v))
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// parseSize parses up to n comma separated values. An empty string means 1
// on every axis and a single value is applied to every axis.
func parseSize(s string, n int) ([]float32, error) {
	out := make([]float32, n)
	if s == "" {
		for i := range out {
			out[i] = 1
		}
		return out, nil
	}
	v, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	switch len(v) {
	case 1:
		for i := range out {
			out[i] = v[0]
		}
	case n:
		copy(out, v)
	default:
		return nil, fmt.Errorf("expected 1 or %d values, got %d", n, len(v))
	}
	return out, nil
}

func parseFloats(s string) ([]float32, error) {
	parts := strings.Split(s, ",")
	out := make([]float32, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out = append(out, float32(f))
	}
	return out, nil
}
