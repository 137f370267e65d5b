package math

// Vec2 is a 2D vector. Plane and quad sizes use it.
type Vec2 struct {
	X, Y float32
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Vec3 lifts v into the XY plane with the given Z.
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}
