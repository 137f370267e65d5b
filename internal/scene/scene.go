// Package scene loads debug shape lists from YAML and replays them.
package scene

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/math"
)

// Shape kinds understood in scene files.
const (
	KindLine      = "line"
	KindPoint     = "point"
	KindPoint2D   = "point2d"
	KindPlane     = "plane"
	KindCuboid    = "cuboid"
	KindCircle    = "circle"
	KindArc       = "arc"
	KindSphere    = "sphere"
	KindCapsule   = "capsule"
	KindCapsule3D = "capsule3d"
	KindAABB      = "aabb"
)

var (
	// ErrUnknownShape is returned for a shape kind the scene cannot draw.
	ErrUnknownShape = errors.New("unknown shape kind")
	// ErrBadColor is returned when a shape color cannot be parsed.
	ErrBadColor = errors.New("invalid color")
)

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float32

func (v Vec3) vec() math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Shape is one entry of a scene file. Which fields matter depends on Kind.
type Shape struct {
	Kind     string        `yaml:"kind"`
	Position Vec3          `yaml:"position"`
	End      *Vec3         `yaml:"end,omitempty"`      // line, capsule
	Rotation Vec3          `yaml:"rotation"`           // euler degrees
	Normal   *Vec3         `yaml:"normal,omitempty"`   // overrides rotation
	Right    *Vec3         `yaml:"right,omitempty"`    // capsule
	Size     []float32     `yaml:"size,omitempty"`     // 1, 2 or 3 values
	Diameter float32       `yaml:"diameter,omitempty"` // circle, arc, sphere
	Radius   float32       `yaml:"radius,omitempty"`   // capsule
	Segments int           `yaml:"segments,omitempty"`
	Start    int           `yaml:"start,omitempty"` // arc
	Stop     int           `yaml:"stop,omitempty"`  // arc
	Box      *[6]float32   `yaml:"box,omitempty"`     // aabb: min xyz, max xyz
	Padding  *float32      `yaml:"padding,omitempty"` // aabb
	Color    string        `yaml:"color,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
}

// Scene is an ordered list of shapes.
type Scene struct {
	Name   string  `yaml:"name"`
	Shapes []Shape `yaml:"shapes"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every shape kind and color.
func (s *Scene) Validate() error {
	for i, sh := range s.Shapes {
		if !knownKind(sh.Kind) {
			return fmt.Errorf("shape %d: %w: %q", i, ErrUnknownShape, sh.Kind)
		}
		if sh.Color != "" {
			if _, err := gizmo.ParseColor(sh.Color); err != nil {
				return fmt.Errorf("shape %d: %w: %v", i, ErrBadColor, err)
			}
		}
		if (sh.Kind == KindLine || sh.Kind == KindCapsule || sh.Kind == KindCapsule3D) && sh.End == nil {
			return fmt.Errorf("shape %d: %s needs an end point", i, sh.Kind)
		}
		if sh.Kind == KindAABB && sh.Box == nil {
			return fmt.Errorf("shape %d: %s needs a box", i, sh.Kind)
		}
	}
	return nil
}

func knownKind(k string) bool {
	switch k {
	case KindLine, KindPoint, KindPoint2D, KindPlane, KindCuboid,
		KindCircle, KindArc, KindSphere, KindCapsule, KindCapsule3D, KindAABB:
		return true
	}
	return false
}
