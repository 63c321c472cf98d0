package physics

import (
	"math/rand"
	"testing"
)

func TestGridShape(t *testing.T) {
	g := NewGrid(10, 1000, 500)

	if g.Cols() != 100 || g.Rows() != 50 {
		t.Fatalf("shape = %dx%d, want 100x50", g.Cols(), g.Rows())
	}
	if g.CellSize() != 10 {
		t.Errorf("CellSize() = %f, want 10", g.CellSize())
	}
}

func TestInsertMapsToCenterCell(t *testing.T) {
	g := NewGrid(10, 100, 100)

	g.Insert(25, 37, 7)

	cell := g.Cell(2, 3)
	if len(cell) != 1 || cell[0] != 7 {
		t.Fatalf("Cell(2,3) = %v, want [7]", cell)
	}
}

func TestGridRebuild(t *testing.T) {
	// S4: 1,000 distinct insertions partition into the grid exactly once.
	g := NewGrid(10, 1000, 1000)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		x := rng.Float32() * 999
		y := rng.Float32() * 999
		g.Insert(x, y, int32(i))
	}

	if got := g.Count(); got != 1000 {
		t.Fatalf("Count() = %d, want 1000", got)
	}

	g.Clear()
	if got := g.Count(); got != 0 {
		t.Fatalf("Count() after Clear = %d, want 0", got)
	}
}

func TestClearIdempotent(t *testing.T) {
	g := NewGrid(10, 100, 100)
	g.Insert(50, 50, 1)
	g.Insert(55, 55, 2)

	g.Clear()
	g.Clear()

	if got := g.Count(); got != 0 {
		t.Fatalf("Count() after double Clear = %d, want 0", got)
	}
	if len(g.Cell(5, 5)) != 0 {
		t.Error("Cell(5,5) not empty after Clear")
	}
}

func TestOutOfBoundsInsertIsNoOp(t *testing.T) {
	g := NewGrid(10, 100, 100)

	g.Insert(-5, 50, 0)
	g.Insert(50, -5, 1)
	g.Insert(150, 50, 2)
	g.Insert(50, 150, 3)

	if got := g.Count(); got != 0 {
		t.Fatalf("Count() = %d, want 0 after out-of-bounds inserts", got)
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	g := NewGrid(10, 100, 100)
	for i := int32(0); i < 16; i++ {
		g.Insert(15, 15, i)
	}

	before := cap(g.Cell(1, 1))
	g.Clear()
	after := cap(g.Cell(1, 1))

	if after != before {
		t.Errorf("cell capacity changed across Clear: %d -> %d", before, after)
	}
}
