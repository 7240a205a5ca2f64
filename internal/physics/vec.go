package physics

import "math"

const (
	// G is the Newtonian gravitational constant.
	G = 6.67430e-11

	// Dt is the fixed integration time step, in arbitrary simulation time.
	Dt = 0.001
)

// Vec2 is a 2D vector. Arithmetic methods are value methods and return
// a new vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the direction of v, or the zero
// vector when v has zero length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Vec2) float64 {
	return p.Sub(q).Len()
}
