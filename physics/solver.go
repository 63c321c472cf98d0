package physics

import (
	"fmt"
	"time"

	"github.com/pthm-cable/grains/workpool"
)

// collisionEps is the squared-distance floor below which a pair is
// skipped to avoid dividing by a vanishing axis length.
const collisionEps = 0.01

// Params configures a Solver. World dimensions, gravity and the tuning
// constants are all per-instance; there is no process-global state.
type Params struct {
	CellSize    float32 // grid cell edge, must be >= 2*MaxRadius
	WorldWidth  float32
	WorldHeight float32
	MaxRadius   float32 // largest body radius the caller will spawn

	Gravity      Vec2
	FrameDT      float32 // seconds per Update call
	SubSteps     int     // sub-iterations per Update, >= 1
	Workers      int     // narrow-phase worker threads
	Cohesion     float32 // velocity exchange factor on collision
	Damping      float32 // explicit velocity drag (anti-pressure mode)
	AntiPressure bool    // inertia-weighted integration
}

// StepTimings holds accumulated per-phase durations of the last Update.
type StepTimings struct {
	Gravity     time.Duration
	Constraint  time.Duration
	BroadPhase  time.Duration
	NarrowPhase time.Duration
	Integrate   time.Duration
}

// Solver advances a caller-owned body slice one frame at a time:
// gravity, wall constraint, broad phase, parallel narrow phase, a
// second constraint pass, then Verlet integration. The body slice is
// borrowed for the duration of Update only.
type Solver struct {
	gravity      Vec2
	frameDT      float32
	subSteps     int
	cohesion     float32
	damping      float32
	antiPressure bool

	worldW float32
	worldH float32

	grid *Grid
	pool *workpool.Pool

	timings  StepTimings
	lastStep time.Duration
}

// NewSolver validates p and builds the grid and worker pool.
func NewSolver(p Params) (*Solver, error) {
	if p.CellSize < 2*p.MaxRadius {
		return nil, fmt.Errorf("cell size %.2f smaller than max body diameter %.2f", p.CellSize, 2*p.MaxRadius)
	}
	if p.SubSteps < 1 {
		p.SubSteps = 1
	}

	grid := NewGrid(p.CellSize, p.WorldWidth, p.WorldHeight)
	if grid.Cols() < 1 || grid.Rows() < 1 {
		return nil, fmt.Errorf("world %gx%g too small for cell size %g", p.WorldWidth, p.WorldHeight, p.CellSize)
	}

	// Each worker slab must span at least two columns so the two-pass
	// schedule keeps concurrently processed columns non-adjacent.
	workers := p.Workers
	if limit := grid.Cols() / 2; workers > limit {
		workers = limit
	}
	if workers < 1 {
		workers = 1
	}

	return &Solver{
		gravity:      p.Gravity,
		frameDT:      p.FrameDT,
		subSteps:     p.SubSteps,
		cohesion:     p.Cohesion,
		damping:      p.Damping,
		antiPressure: p.AntiPressure,
		worldW:       p.WorldWidth,
		worldH:       p.WorldHeight,
		grid:         grid,
		pool:         workpool.New(workers),
	}, nil
}

// Close shuts down the worker pool.
func (s *Solver) Close() {
	s.pool.Close()
}

// Update advances the simulation one frame, mutating bodies in place.
func (s *Solver) Update(bodies []Body) {
	start := time.Now()
	s.timings = StepTimings{}

	subDT := s.frameDT / float32(s.subSteps)
	for i := 0; i < s.subSteps; i++ {
		mark := time.Now()
		s.applyGravity(bodies)
		s.timings.Gravity += time.Since(mark)

		mark = time.Now()
		s.applyConstraint(bodies)
		s.timings.Constraint += time.Since(mark)

		mark = time.Now()
		s.rebuildGrid(bodies)
		s.timings.BroadPhase += time.Since(mark)

		mark = time.Now()
		s.solveCollisions(bodies)
		s.timings.NarrowPhase += time.Since(mark)

		mark = time.Now()
		s.applyConstraint(bodies)
		s.timings.Constraint += time.Since(mark)

		mark = time.Now()
		s.integrate(bodies, subDT)
		s.timings.Integrate += time.Since(mark)
	}

	s.lastStep = time.Since(start)
}

// SetBodyVelocity sets a body's initial velocity using the solver's
// frame time step.
func (s *Solver) SetBodyVelocity(b *Body, v Vec2) {
	b.SetVelocity(v, s.frameDT)
}

// LastStep returns the wall-clock duration of the last Update.
func (s *Solver) LastStep() time.Duration {
	return s.lastStep
}

// Timings returns the per-phase breakdown of the last Update.
func (s *Solver) Timings() StepTimings {
	return s.timings
}

// Gravity returns the current gravity vector.
func (s *Solver) Gravity() Vec2 { return s.gravity }

// SetGravity replaces the gravity vector.
func (s *Solver) SetGravity(g Vec2) { s.gravity = g }

// Cohesion returns the collision velocity-exchange factor.
func (s *Solver) Cohesion() float32 { return s.cohesion }

// SetCohesion replaces the collision velocity-exchange factor.
func (s *Solver) SetCohesion(c float32) { s.cohesion = c }

// Damping returns the anti-pressure drag coefficient.
func (s *Solver) Damping() float32 { return s.damping }

// SetDamping replaces the anti-pressure drag coefficient.
func (s *Solver) SetDamping(d float32) { s.damping = d }

// Workers returns the effective narrow-phase worker count.
func (s *Solver) Workers() int { return s.pool.Size() }

func (s *Solver) applyGravity(bodies []Body) {
	for i := range bodies {
		bodies[i].Accelerate(s.gravity)
	}
}

// applyConstraint clamps every body into [r, W-r] x [r, H-r]. The
// translation goes through Shift so it feeds the anti-pressure
// accumulator like any other positional correction.
func (s *Solver) applyConstraint(bodies []Body) {
	for i := range bodies {
		b := &bodies[i]
		r := b.Radius
		if b.Pos.X < r {
			b.Shift(Vec2{X: r - b.Pos.X})
		} else if b.Pos.X > s.worldW-r {
			b.Shift(Vec2{X: s.worldW - r - b.Pos.X})
		}
		if b.Pos.Y < r {
			b.Shift(Vec2{Y: r - b.Pos.Y})
		} else if b.Pos.Y > s.worldH-r {
			b.Shift(Vec2{Y: s.worldH - r - b.Pos.Y})
		}
	}
}

func (s *Solver) rebuildGrid(bodies []Body) {
	s.grid.Clear()
	for i := range bodies {
		s.grid.Insert(bodies[i].Pos.X, bodies[i].Pos.Y, int32(i))
	}
}

func (s *Solver) integrate(bodies []Body, dt float32) {
	if s.antiPressure {
		for i := range bodies {
			bodies[i].IntegrateDamped(dt, s.damping)
		}
		return
	}
	for i := range bodies {
		bodies[i].Integrate(dt)
	}
}
