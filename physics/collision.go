package physics

// The narrow phase mutates the shared body slice from every worker
// without locks. Safety comes from the schedule, not the container:
// each grid cell is visited by exactly one worker, pair resolution only
// touches bodies inside one cell, and the two passes keep concurrently
// live workers on column ranges separated by at least half a slab.
// Changing this partitioning invalidates the whole soundness argument.

// solveCollisions runs the two-pass column schedule over the grid.
//
// With C columns and T workers, each worker owns a slab of W = C/T
// columns. Pass one covers the first half of every slab; after the
// join, pass two covers the second half, the last worker also taking
// the C mod T leftover columns. Within either pass, the ranges of
// neighboring workers are separated by at least half a slab, and the
// adjacent columns at a slab boundary (worker k's last, worker k+1's
// first) sit in different passes, so they are never live together.
func (s *Solver) solveCollisions(bodies []Body) {
	t := s.pool.Size()
	cols := s.grid.Cols()
	slab := cols / t
	half := slab / 2

	s.pool.ExecuteOnAll(func(k int) {
		s.resolveColumns(bodies, k*slab, k*slab+half)
	})
	s.pool.WaitAll()

	s.pool.ExecuteOnAll(func(k int) {
		end := (k + 1) * slab
		if k == t-1 {
			end = cols
		}
		s.resolveColumns(bodies, k*slab+half, end)
	})
	s.pool.WaitAll()
}

// resolveColumns resolves every intra-cell pair in columns [x0, x1).
// Pairs straddling two cells are not resolved this sub-step; they are
// caught on a later one once the bodies drift into a shared cell.
func (s *Solver) resolveColumns(bodies []Body, x0, x1 int) {
	rows := s.grid.Rows()
	for x := x0; x < x1; x++ {
		for y := 0; y < rows; y++ {
			cell := s.grid.Cell(x, y)
			for i := 0; i < len(cell); i++ {
				for j := i + 1; j < len(cell); j++ {
					s.resolvePair(&bodies[cell[i]], &bodies[cell[j]])
				}
			}
		}
	}
}

// resolvePair pushes two overlapping bodies apart along the center
// axis, splitting the correction by inertia, and exchanges a fraction
// of the relative velocity through Old to discourage shearing.
func (s *Solver) resolvePair(a, b *Body) {
	axis := a.Pos.Sub(b.Pos)
	d2 := axis.LengthSq()
	rsum := a.Radius + b.Radius
	if d2 >= rsum*rsum || d2 <= collisionEps {
		return
	}

	dist := axis.Length()
	n := axis.Scale(1 / dist)
	delta := 0.5 * (rsum - dist)

	total := a.Inertia + b.Inertia
	fa := a.Inertia / total
	fb := b.Inertia / total
	a.Shift(n.Scale(delta * fb))
	b.Shift(n.Scale(-delta * fa))

	dv := a.Velocity().Sub(b.Velocity())
	a.SetVelocity(dv.Scale(-s.cohesion), s.frameDT)
	b.SetVelocity(dv.Scale(s.cohesion), s.frameDT)
}
