package physics

// RGB is an opaque display color carried by the physics core.
type RGB struct {
	R, G, B uint8
}

// Body is a Verlet particle. Velocity is implicit: v = Pos - Old.
// Inertia and MoveAcc drive the anti-pressure model: a body that was
// shoved a lot last step resolves as heavier next step.
type Body struct {
	Pos     Vec2
	Old     Vec2
	Acc     Vec2
	Radius  float32
	Color   RGB
	Inertia float32
	MoveAcc float32
}

// NewBody creates a body at rest: Old = pos, zero acceleration.
func NewBody(pos Vec2, radius float32, color RGB) Body {
	return Body{
		Pos:     pos,
		Old:     pos,
		Radius:  radius,
		Color:   color,
		Inertia: 1,
	}
}

// Accelerate adds acc to the accumulated acceleration for this step.
func (b *Body) Accelerate(acc Vec2) {
	b.Acc = b.Acc.Add(acc)
}

// Velocity returns the implicit per-step velocity Pos - Old.
func (b *Body) Velocity() Vec2 {
	return b.Pos.Sub(b.Old)
}

// SetVelocity rewrites Old so the implicit velocity becomes v.
func (b *Body) SetVelocity(v Vec2, dt float32) {
	b.Old = b.Pos.Sub(v.Scale(dt))
}

// Shift translates Pos without touching Old, so the implicit velocity
// changes by +d/dt. The displacement magnitude accumulates into
// MoveAcc, feeding the next step's inertia.
func (b *Body) Shift(d Vec2) {
	b.Pos = b.Pos.Add(d)
	b.MoveAcc += absf(d.X) + absf(d.Y)
}

// Integrate advances one plain Verlet step and resets acceleration.
func (b *Body) Integrate(dt float32) {
	v := b.Pos.Sub(b.Old)
	b.Old = b.Pos
	b.Pos = b.Pos.Add(v).Add(b.Acc.Scale(dt * dt))
	b.Acc = Vec2{}
}

// IntegrateDamped advances one Verlet step with the anti-pressure
// model: inertia grows with the displacement accumulated through Shift,
// MoveAcc decays by half, an explicit -v*damping drag is applied, and
// the acceleration is scaled by (1/inertia)².
func (b *Body) IntegrateDamped(dt, damping float32) {
	v := b.Pos.Sub(b.Old)
	b.Inertia = 1 + b.MoveAcc/(v.Length()+1)
	b.MoveAcc *= 0.5
	b.Acc = b.Acc.Add(v.Scale(-damping))
	scale := 1 / (b.Inertia * b.Inertia)
	b.Old = b.Pos
	b.Pos = b.Pos.Add(v).Add(b.Acc.Scale(scale * dt * dt))
	b.Acc = Vec2{}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
