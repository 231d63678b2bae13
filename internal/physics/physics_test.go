package physics

import (
	"math"
	"testing"
)

func TestIntegrateUniformMotion(t *testing.T) {
	tests := []struct {
		name  string
		pos   Vector2D
		vel   Vector2D
		steps int
	}{
		{"at rest", Vec(3, 4), Vec(0, 0), 25},
		{"horizontal", Vec(0, 0), Vec(2, 0), 10},
		{"diagonal", Vec(-10, 7), Vec(1.5, -0.5), 40},
		{"no steps", Vec(1, 1), Vec(9, 9), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Position: tc.pos, Velocity: tc.vel, Size: 1, Restitution: 1}
			for range tc.steps {
				Integrate(&b)
			}

			want := tc.pos.Add(tc.vel.Scale(float64(tc.steps)))
			if math.Abs(b.Position.X-want.X) > 1e-9 || math.Abs(b.Position.Y-want.Y) > 1e-9 {
				t.Errorf("position = %+v, expected %+v", b.Position, want)
			}
			if b.Velocity != tc.vel {
				t.Errorf("velocity changed to %+v without acceleration", b.Velocity)
			}
		})
	}
}

func TestIntegrateSemiImplicit(t *testing.T) {
	b := Ball{Velocity: Vec(1, 0), Acceleration: Vec(0, 2)}
	Integrate(&b)

	// Position uses the velocity after acceleration was applied.
	if b.Velocity != Vec(1, 2) {
		t.Errorf("velocity = %+v, expected {1 2}", b.Velocity)
	}
	if b.Position != Vec(1, 2) {
		t.Errorf("position = %+v, expected {1 2}", b.Position)
	}

	Integrate(&b)
	if b.Position != Vec(2, 6) {
		t.Errorf("position after 2 steps = %+v, expected {2 6}", b.Position)
	}
}

func TestStepMatchesIntegrate(t *testing.T) {
	start := Ball{Position: Vec(5, 5), Velocity: Vec(1, -3), Acceleration: Vec(0.1, 0.2), Size: 2, Restitution: 0.5}

	mutated := start
	value := start
	for range 50 {
		Integrate(&mutated)
		value = Step(value)
	}

	if mutated != value {
		t.Errorf("Step diverged from Integrate: %+v vs %+v", value, mutated)
	}
	if start.Position != Vec(5, 5) {
		t.Error("Step must not modify its argument")
	}
}

func TestVectorArithmetic(t *testing.T) {
	a, b := Vec(3, 4), Vec(1, -2)

	if got := a.Add(b); got != Vec(4, 2) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != Vec(2, 6) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != Vec(6, 8) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v, expected 25", got)
	}
}

func TestCheckBoundary(t *testing.T) {
	tests := []struct {
		name             string
		pos, size        float64
		min, max         float64
		hitMin, hitMax   bool
		minBound, maxBnd float64
	}{
		{"middle", 50, 5, 0, 100, false, false, 5, 95},
		{"touching min", 5, 5, 0, 100, true, false, 5, 95},
		{"past min", 2, 5, 0, 100, true, false, 5, 95},
		{"touching max", 95, 5, 0, 100, false, true, 5, 95},
		{"past max", 120, 5, 0, 100, false, true, 5, 95},
		{"zero size", 0, 0, 0, 10, true, false, 0, 10},
		{"too narrow", 5, 6, 0, 10, true, true, 6, 4},
		{"inverted limits", 5, 1, 10, 0, true, true, 11, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bc := CheckBoundary(tc.pos, tc.size, tc.min, tc.max)
			if bc.HitMin != tc.hitMin || bc.HitMax != tc.hitMax {
				t.Errorf("hits = (%v, %v), expected (%v, %v)", bc.HitMin, bc.HitMax, tc.hitMin, tc.hitMax)
			}
			if bc.MinBoundary != tc.minBound || bc.MaxBoundary != tc.maxBnd {
				t.Errorf("boundaries = (%v, %v), expected (%v, %v)", bc.MinBoundary, bc.MaxBoundary, tc.minBound, tc.maxBnd)
			}
		})
	}
}

func TestCheckBoundaryProperty(t *testing.T) {
	for pos := -20.0; pos <= 120; pos += 2.5 {
		for _, size := range []float64{0, 1, 5, 12.5} {
			bc := CheckBoundary(pos, size, 0, 100)
			if bc.HitMin != (pos-size <= 0) {
				t.Fatalf("HitMin mismatch at pos=%v size=%v", pos, size)
			}
			if bc.HitMax != (pos+size >= 100) {
				t.Fatalf("HitMax mismatch at pos=%v size=%v", pos, size)
			}
		}
	}
}

func TestFallingBallHitsFloor(t *testing.T) {
	b := Ball{Position: Vec(50, 50), Velocity: Vec(0, 5), Size: 5, Restitution: 1}
	for range 10 {
		Integrate(&b)
	}

	if b.Position.Y != 100 {
		t.Fatalf("position.y = %v, expected 100", b.Position.Y)
	}
	if !CheckBoundary(b.Position.Y, b.Size, 0, 100).HitMax {
		t.Error("expected HitMax after reaching y=100")
	}
}

func TestResolveBoundary(t *testing.T) {
	pos, vel := 98.0, 4.0
	bc := CheckBoundary(pos, 5, 0, 100)
	if !ResolveBoundary(&pos, &vel, bc, 0.5) {
		t.Fatal("expected a wall hit")
	}
	if pos != 95 || vel != -2 {
		t.Errorf("after max hit pos=%v vel=%v, expected 95, -2", pos, vel)
	}

	pos, vel = 3, -4
	ResolveBoundary(&pos, &vel, CheckBoundary(pos, 5, 0, 100), 1)
	if pos != 5 || vel != 4 {
		t.Errorf("after min hit pos=%v vel=%v, expected 5, 4", pos, vel)
	}

	// Already moving away keeps its direction.
	pos, vel = 3, 4
	ResolveBoundary(&pos, &vel, CheckBoundary(pos, 5, 0, 100), 1)
	if vel != 4 {
		t.Errorf("vel = %v, expected 4", vel)
	}

	pos, vel = 50, 4
	if ResolveBoundary(&pos, &vel, CheckBoundary(pos, 5, 0, 100), 1) {
		t.Error("no wall should be hit in the middle")
	}
}

func TestCheckCircleRect(t *testing.T) {
	rect := Rect{Position: Vec(10, 10), Width: 20, Height: 10}

	tests := []struct {
		name      string
		center    Vector2D
		radius    float64
		colliding bool
		closest   Vector2D
	}{
		{"center inside", Vec(15, 15), 5, true, Vec(15, 15)},
		{"overlapping top", Vec(20, 7), 5, true, Vec(20, 10)},
		{"tangent bottom", Vec(15, 25), 5, false, Vec(15, 20)},
		{"tangent left", Vec(5, 15), 5, false, Vec(10, 15)},
		{"just inside tangent", Vec(15, 24.999), 5, true, Vec(15, 20)},
		{"far away", Vec(100, 100), 5, false, Vec(30, 20)},
		{"corner miss", Vec(34, 24), 5, false, Vec(30, 20)},
		{"corner hit", Vec(33, 23), 5, true, Vec(30, 20)},
		{"zero radius inside", Vec(15, 15), 0, false, Vec(15, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := CheckCircleRect(tc.center, tc.radius, rect)
			if c.IsColliding != tc.colliding {
				t.Errorf("IsColliding = %v, expected %v", c.IsColliding, tc.colliding)
			}
			if c.ClosestX != tc.closest.X || c.ClosestY != tc.closest.Y {
				t.Errorf("closest = (%v, %v), expected %+v", c.ClosestX, c.ClosestY, tc.closest)
			}
			if c.DistanceX != tc.center.X-c.ClosestX || c.DistanceY != tc.center.Y-c.ClosestY {
				t.Errorf("distance = (%v, %v) inconsistent with closest point", c.DistanceX, c.DistanceY)
			}
		})
	}
}

func TestCheckCircleRectDegenerate(t *testing.T) {
	point := Rect{Position: Vec(10, 10)}

	if !CheckCircleRect(Vec(11, 10), 2, point).IsColliding {
		t.Error("zero-area rect within radius should collide")
	}
	// A negative radius squares to a positive one.
	if !CheckCircleRect(Vec(10, 10), -1, point).IsColliding {
		t.Error("negative radius should follow radius² arithmetic")
	}
	if CheckCircleRect(Vec(10, 10), 0, point).IsColliding {
		t.Error("zero radius never collides")
	}
}

func TestCheckBallBlock(t *testing.T) {
	b := Ball{Position: Vec(15, 15), Size: 5}
	blk := Block{Position: Vec(10, 10), Width: 20, Height: 10, Alive: true}

	c := CheckBallBlock(b, blk)
	if !c.IsColliding || c.DistanceX != 0 || c.DistanceY != 0 {
		t.Errorf("got %+v, expected a hit with zero distance", c)
	}
}

func TestReflectAxis(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Axis
	}{
		{"from above", 0, -3, AxisY},
		{"from below", 1, 4, AxisY},
		{"from left", -4, 0, AxisX},
		{"from right", 3, 1, AxisX},
		{"inside", 0, 0, AxisY},
		{"exact corner", 2, 2, AxisY},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ReflectAxis(CircleRectCollision{DistanceX: tc.dx, DistanceY: tc.dy})
			if got != tc.want {
				t.Errorf("ReflectAxis = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestBounce(t *testing.T) {
	rect := Rect{Position: Vec(10, 10), Width: 20, Height: 10}

	// Falling onto the top face.
	b := Ball{Position: Vec(20, 7), Velocity: Vec(1, 3), Size: 5}
	c := CheckCircleRect(b.Position, b.Size, rect)
	if axis := Bounce(&b, c); axis != AxisY {
		t.Fatalf("axis = %v, expected y", axis)
	}
	if b.Velocity != Vec(1, -3) {
		t.Errorf("velocity = %+v, expected {1 -3}", b.Velocity)
	}
	if b.Position.Y != 5 {
		t.Errorf("position.y = %v, expected 5 (pushed out of the face)", b.Position.Y)
	}
	if CheckCircleRect(b.Position, b.Size, rect).IsColliding {
		t.Error("ball still colliding after Bounce")
	}

	// Hitting the right face while moving left.
	b = Ball{Position: Vec(33, 15), Velocity: Vec(-2, 1), Size: 5}
	c = CheckCircleRect(b.Position, b.Size, rect)
	if axis := Bounce(&b, c); axis != AxisX {
		t.Fatalf("axis = %v, expected x", axis)
	}
	if b.Velocity != Vec(2, 1) || b.Position.X != 35 {
		t.Errorf("got pos=%+v vel=%+v", b.Position, b.Velocity)
	}

	// Center inside: plain vertical flip.
	b = Ball{Position: Vec(15, 15), Velocity: Vec(1, -2), Size: 5}
	Bounce(&b, CheckCircleRect(b.Position, b.Size, rect))
	if b.Velocity != Vec(1, 2) || b.Position != Vec(15, 15) {
		t.Errorf("got pos=%+v vel=%+v", b.Position, b.Velocity)
	}
}

func TestBallValidate(t *testing.T) {
	tests := []struct {
		name string
		ball Ball
		ok   bool
	}{
		{"valid", Ball{Size: 5, Restitution: 0.8}, true},
		{"elastic", Ball{Size: 1, Restitution: 1}, true},
		{"zero size", Ball{Size: 0, Restitution: 1}, false},
		{"zero restitution", Ball{Size: 1, Restitution: 0}, false},
		{"energy gain", Ball{Size: 1, Restitution: 1.2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ball.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}
