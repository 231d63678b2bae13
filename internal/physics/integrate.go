package physics

// Integrate advances the ball by one unit time step using semi-implicit
// Euler: velocity accumulates acceleration first, then position accumulates
// the updated velocity.
func Integrate(b *Ball) {
	b.Velocity.X += b.Acceleration.X
	b.Velocity.Y += b.Acceleration.Y
	b.Position.X += b.Velocity.X
	b.Position.Y += b.Velocity.Y
}

// Step is the value form of Integrate: it returns the advanced ball and
// leaves the argument untouched.
func Step(b Ball) Ball {
	Integrate(&b)
	return b
}
