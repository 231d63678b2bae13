// Package physics provides the kinematics and collision primitives for the
// breakout simulation. Everything here is pure arithmetic on plain records:
// no I/O, no allocation on the hot path, no dependency on the platform layer.
package physics

// Vector2D is a 2D position, velocity or acceleration in world units.
type Vector2D struct {
	X, Y float64
}

// Vec is shorthand for Vector2D{X: x, Y: y}.
func Vec(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// LengthSq returns the squared length.
func (v Vector2D) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}
