package shape

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/midgard-gizmo/pkg/math"
)

var canonicalTables = []struct {
	name   string
	points []math.Vec3
}{
	{"cube", Cube()},
	{"quad", Quad()},
	{"marker", Marker()},
}

func TestTransformIntoIdentity(t *testing.T) {
	for _, tc := range canonicalTables {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]math.Vec3, len(tc.points))
			n := TransformInto(dst, tc.points, math.Vec3{}, math.QuatIdentity(), math.One)
			if n != len(tc.points) {
				t.Fatalf("wrote %d points, want %d", n, len(tc.points))
			}
			for i := range dst {
				if dst[i] != tc.points[i] {
					t.Errorf("point %d: got %v, want %v", i, dst[i], tc.points[i])
				}
			}
		})
	}
}

func TestTransformIntoTranslation(t *testing.T) {
	positions := []math.Vec3{{X: 1, Y: 2, Z: 3}, {X: -10, Y: 0.5, Z: 7}, {X: 0, Y: 0, Z: -100}}
	for _, tc := range canonicalTables {
		for _, p := range positions {
			dst := TransformToNew(tc.points, p, math.QuatIdentity(), math.One)
			for i := range dst {
				want := tc.points[i].Add(p)
				if dst[i] != want {
					t.Errorf("%s at %v, point %d: got %v, want %v", tc.name, p, i, dst[i], want)
				}
			}
		}
	}
}

func TestTransformIntoScale(t *testing.T) {
	scales := []math.Vec3{{X: 2, Y: 3, Z: 4}, {X: 0.5, Y: -1, Z: 10}, {X: 0, Y: 0, Z: 0}}
	for _, tc := range canonicalTables {
		for _, s := range scales {
			dst := TransformToNew(tc.points, math.Vec3{}, math.QuatIdentity(), s)
			for i := range dst {
				want := tc.points[i].Mul(s)
				if dst[i] != want {
					t.Errorf("%s scaled %v, point %d: got %v, want %v", tc.name, s, i, dst[i], want)
				}
			}
		}
	}
}

func TestTransformIntoRotation(t *testing.T) {
	rot := math.QuatFromAxisAngle(math.Up, float32(stdmath.Pi/2))
	dst := TransformToNew(Marker(), math.Vec3{}, rot, math.One)

	// Forward tip swings to the right.
	if !dst[5].ApproxEqual(math.Right, 1e-5) {
		t.Errorf("forward tip: got %v, want %v", dst[5], math.Right)
	}
	// Up tip is on the axis and stays put.
	if !dst[0].ApproxEqual(math.Up, 1e-5) {
		t.Errorf("up tip: got %v, want %v", dst[0], math.Up)
	}
}

func TestTransformIntoShortBuffer(t *testing.T) {
	dst := make([]math.Vec3, 3)
	n := TransformInto(dst, Cube(), math.Vec3{X: 1}, math.QuatIdentity(), math.One)
	if n != 3 {
		t.Fatalf("wrote %d points, want 3", n)
	}
	for i := range dst {
		if want := Cube()[i].Add(math.Vec3{X: 1}); dst[i] != want {
			t.Errorf("point %d: got %v, want %v", i, dst[i], want)
		}
	}
}

func TestTransformIntoLongBuffer(t *testing.T) {
	sentinel := math.Vec3{X: 42, Y: 42, Z: 42}
	dst := make([]math.Vec3, 10)
	for i := range dst {
		dst[i] = sentinel
	}

	n := TransformInto(dst, Quad(), math.Vec3{}, math.QuatIdentity(), math.One)
	if n != QuadPointCount {
		t.Fatalf("wrote %d points, want %d", n, QuadPointCount)
	}
	for i := QuadPointCount; i < len(dst); i++ {
		if dst[i] != sentinel {
			t.Errorf("trailing point %d was overwritten: %v", i, dst[i])
		}
	}
}

func TestTransformIntoEmpty(t *testing.T) {
	if n := TransformInto(nil, Cube(), math.Vec3{}, math.QuatIdentity(), math.One); n != 0 {
		t.Errorf("nil dst: wrote %d points", n)
	}
	if n := TransformInto(make([]math.Vec3, 4), nil, math.Vec3{}, math.QuatIdentity(), math.One); n != 0 {
		t.Errorf("nil src: wrote %d points", n)
	}
}

func TestTransformToNewLength(t *testing.T) {
	got := TransformToNew(Cube(), math.Vec3{}, math.QuatIdentity(), math.One)
	if len(got) != CubePointCount {
		t.Errorf("len = %d, want %d", len(got), CubePointCount)
	}
}

func TestCanonicalTablesAreCopies(t *testing.T) {
	c := Cube()
	c[0] = math.Vec3{X: 99}
	if Cube()[0] == c[0] {
		t.Error("mutating Cube() result changed the canonical table")
	}
}

func TestCubePoints(t *testing.T) {
	var dst [CubePointCount]math.Vec3
	CubePoints(dst[:], math.Vec3{}, math.QuatIdentity(), math.Vec3{X: 2, Y: 2, Z: 2})

	want := [CubePointCount]math.Vec3{
		{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1},
	}
	if dst != want {
		t.Errorf("CubePoints = %v, want %v", dst, want)
	}
}

func TestQuadPoints(t *testing.T) {
	var dst [QuadPointCount]math.Vec3
	QuadPoints(dst[:], math.Vec3{Z: 5}, math.QuatIdentity(), math.Vec2{X: 4, Y: 2})

	want := [QuadPointCount]math.Vec3{{X: -2, Y: 1, Z: 5}, {X: 2, Y: 1, Z: 5}, {X: 2, Y: -1, Z: 5}, {X: -2, Y: -1, Z: 5}}
	if dst != want {
		t.Errorf("QuadPoints = %v, want %v", dst, want)
	}
}

func TestTransformToNewQuadFullSize(t *testing.T) {
	got := TransformToNew(Quad(), math.Vec3{Z: 5}, math.QuatIdentity(), math.Vec3{X: 4, Y: 2, Z: 1})

	want := []math.Vec3{{X: -2, Y: 1, Z: 5}, {X: 2, Y: 1, Z: 5}, {X: 2, Y: -1, Z: 5}, {X: -2, Y: -1, Z: 5}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if w := got[1].X - got[0].X; w != 4 {
		t.Errorf("width = %v, want 4", w)
	}
	if h := got[0].Y - got[3].Y; h != 2 {
		t.Errorf("height = %v, want 2", h)
	}
}

func TestMarkerPoints(t *testing.T) {
	var dst [MarkerPointCount]math.Vec3
	MarkerPoints(dst[:], math.Vec3{X: 1, Y: 1, Z: 1}, math.QuatIdentity(), math.One)

	if dst[0] != (math.Vec3{X: 1, Y: 1.5, Z: 1}) {
		t.Errorf("up tip = %v", dst[0])
	}
	if dst[4] != (math.Vec3{X: 1, Y: 1, Z: 0.5}) {
		t.Errorf("back tip = %v", dst[4])
	}
}

func TestMarkerPointsPerAxis(t *testing.T) {
	dst := NewMarkerPoints(math.Vec3{}, math.QuatIdentity(), math.Vec3{X: 2, Y: 4, Z: 6})

	want := []math.Vec3{{X: 0, Y: 2, Z: 0}, {X: 0, Y: -2, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -3}, {X: 0, Y: 0, Z: 3}}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("tip %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestNewPointsMatchInPlace(t *testing.T) {
	pos := math.Vec3{X: 1, Y: -2, Z: 3}
	rot := math.QuatFromEulerDegrees(math.Vec3{X: 30, Y: 45})

	var cube [CubePointCount]math.Vec3
	CubePoints(cube[:], pos, rot, math.Vec3{X: 1, Y: 2, Z: 3})
	if got := NewCubePoints(pos, rot, math.Vec3{X: 1, Y: 2, Z: 3}); [CubePointCount]math.Vec3(got) != cube {
		t.Errorf("NewCubePoints = %v, want %v", got, cube)
	}

	var quad [QuadPointCount]math.Vec3
	QuadPoints(quad[:], pos, rot, math.Vec2{X: 3, Y: 1})
	if got := NewQuadPoints(pos, rot, math.Vec2{X: 3, Y: 1}); [QuadPointCount]math.Vec3(got) != quad {
		t.Errorf("NewQuadPoints = %v, want %v", got, quad)
	}

	poly := RegularPolygon(make([]math.Vec3, 7), pos, rot, 2)
	got := NewPolygon(pos, rot, 2, 7)
	if len(got) != 7 {
		t.Fatalf("NewPolygon returned %d points, want 7", len(got))
	}
	for i := range got {
		if got[i] != poly[i] {
			t.Errorf("polygon point %d: got %v, want %v", i, got[i], poly[i])
		}
	}
	if got := NewPolygon(pos, rot, 2, -1); len(got) != 0 {
		t.Errorf("negative count returned %d points", len(got))
	}
}

func TestRegularPolygonSquare(t *testing.T) {
	dst := RegularPolygon(make([]math.Vec3, 4), math.Vec3{}, math.QuatIdentity(), 2)

	want := []math.Vec3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}}
	for i := range want {
		if !dst[i].ApproxEqual(want[i], 1e-5) {
			t.Errorf("point %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestRegularPolygonProperties(t *testing.T) {
	center := math.Vec3{X: 3, Y: -2, Z: 1}
	const diameter = 5.0

	for _, n := range []int{3, 4, 7, 30, 360} {
		dst := RegularPolygon(make([]math.Vec3, n), center, math.QuatIdentity(), diameter)
		step := 2 * stdmath.Pi / float64(n)

		var turning float64
		for i := 0; i < n; i++ {
			if r := dst[i].Distance(center); stdmath.Abs(float64(r)-diameter/2) > 1e-4 {
				t.Errorf("n=%d point %d: radius %v, want %v", n, i, r, diameter/2.0)
			}

			a := dst[i].Sub(center)
			b := dst[(i+1)%n].Sub(center)
			angle := stdmath.Atan2(float64(a.Cross(b).Z), float64(a.Dot(b)))
			if stdmath.Abs(angle-step) > 1e-4 {
				t.Errorf("n=%d points %d,%d: separated by %v, want %v", n, i, (i+1)%n, angle, step)
			}

			e1 := dst[(i+1)%n].Sub(dst[i])
			e2 := dst[(i+2)%n].Sub(dst[(i+1)%n])
			turning += stdmath.Atan2(float64(e1.Cross(e2).Z), float64(e1.Dot(e2)))
		}
		if stdmath.Abs(turning-2*stdmath.Pi) > 1e-3 {
			t.Errorf("n=%d: total turning %v, want 2π", n, turning)
		}
	}
}

func TestRegularPolygonRotated(t *testing.T) {
	// Looking along +X puts the circle in the YZ plane.
	rot := math.QuatLook(math.Right)
	dst := RegularPolygon(make([]math.Vec3, 16), math.Vec3{}, rot, 2)
	for i, p := range dst {
		if stdmath.Abs(float64(p.X)) > 1e-5 {
			t.Errorf("point %d: %v not in the YZ plane", i, p)
		}
	}
}

func TestRegularPolygonEmpty(t *testing.T) {
	if got := RegularPolygon(nil, math.Vec3{}, math.QuatIdentity(), 1); len(got) != 0 {
		t.Errorf("expected no points, got %d", len(got))
	}
}
