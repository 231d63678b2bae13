package physics

import "math"

// BoundaryCollision describes how a circle relates to one axis' limits.
type BoundaryCollision struct {
	HitMin      bool
	HitMax      bool
	MinBoundary float64 // Lowest legal center position
	MaxBoundary float64 // Highest legal center position
}

// CheckBoundary tests a circle of radius size centered at position against
// the interval [min, max] on a single axis. Touching a limit counts as a hit.
// Inverted limits or a negative size are not rejected; the flags simply
// follow the arithmetic.
func CheckBoundary(position, size, min, max float64) BoundaryCollision {
	return BoundaryCollision{
		HitMin:      position-size <= min,
		HitMax:      position+size >= max,
		MinBoundary: min + size,
		MaxBoundary: max - size,
	}
}

// ResolveBoundary clamps *pos to the legal boundary that was hit and
// reflects *vel away from that wall, keeping restitution of its speed.
// Returns true if a wall was hit.
func ResolveBoundary(pos, vel *float64, bc BoundaryCollision, restitution float64) bool {
	switch {
	case bc.HitMin:
		*pos = bc.MinBoundary
		*vel = math.Abs(*vel) * restitution
	case bc.HitMax:
		*pos = bc.MaxBoundary
		*vel = -math.Abs(*vel) * restitution
	default:
		return false
	}
	return true
}

// CircleRectCollision is the result of a closest-point test.
// DistanceX/DistanceY point from the closest point on the rectangle to the
// circle center and serve as an unnormalized contact normal.
type CircleRectCollision struct {
	IsColliding bool
	ClosestX    float64
	ClosestY    float64
	DistanceX   float64
	DistanceY   float64
}

// CheckCircleRect tests a circle against an axis-aligned rectangle.
// The circle center is clamped into the rectangle's span to find the
// closest point; the shapes collide iff that point is strictly closer than
// the radius. A tangent circle does not collide.
func CheckCircleRect(center Vector2D, radius float64, rect Rect) CircleRectCollision {
	closestX := math.Max(rect.Position.X, math.Min(center.X, rect.Right()))
	closestY := math.Max(rect.Position.Y, math.Min(center.Y, rect.Bottom()))

	d := center.Sub(Vec(closestX, closestY))

	return CircleRectCollision{
		IsColliding: d.LengthSq() < radius*radius,
		ClosestX:    closestX,
		ClosestY:    closestY,
		DistanceX:   d.X,
		DistanceY:   d.Y,
	}
}

// CheckBallBlock runs CheckCircleRect for a ball against a block.
func CheckBallBlock(b Ball, blk Block) CircleRectCollision {
	return CheckCircleRect(b.Position, b.Size, blk.Rect())
}

// Axis names a velocity component to reflect.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ReflectAxis picks the axis to reflect after a circle-rectangle hit.
// A larger horizontal offset means the circle struck a side face; otherwise
// it struck the top or bottom face. A center inside the rectangle
// (zero offset on both axes) reflects vertically.
func ReflectAxis(c CircleRectCollision) Axis {
	if math.Abs(c.DistanceX) > math.Abs(c.DistanceY) {
		return AxisX
	}
	return AxisY
}

// Bounce reflects the ball off a rectangle it is colliding with and moves it
// out to the contact face so the next tick does not register the same hit.
// Restitution is not applied: blocks and paddles are treated as rigid.
func Bounce(b *Ball, c CircleRectCollision) Axis {
	axis := ReflectAxis(c)
	switch axis {
	case AxisX:
		if s := sign(c.DistanceX); s != 0 {
			b.Velocity.X = s * math.Abs(b.Velocity.X)
			b.Position.X = c.ClosestX + s*b.Size
		} else {
			b.Velocity.X = -b.Velocity.X
		}
	case AxisY:
		if s := sign(c.DistanceY); s != 0 {
			b.Velocity.Y = s * math.Abs(b.Velocity.Y)
			b.Position.Y = c.ClosestY + s*b.Size
		} else {
			b.Velocity.Y = -b.Velocity.Y
		}
	}
	return axis
}

func sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
