package physics

import "github.com/pthm-cable/grains/array2d"

// Grid is the uniform-grid broad phase. Each cell holds the indices of
// the bodies whose center falls inside it; the grid never touches body
// state. It is cleared and fully rebuilt every sub-step.
type Grid struct {
	cells    *array2d.Array2D[[]int32]
	cellSize float32
}

// NewGrid allocates a ⌊width/cellSize⌋ x ⌊height/cellSize⌋ grid.
func NewGrid(cellSize, width, height float32) *Grid {
	cols := int(width / cellSize)
	rows := int(height / cellSize)
	return &Grid{
		cells:    array2d.New[[]int32](cols, rows),
		cellSize: cellSize,
	}
}

// Clear empties every cell in place, keeping allocated capacity.
func (g *Grid) Clear() {
	data := g.cells.Data()
	for i := range data {
		data[i] = data[i][:0]
	}
}

// Insert appends idx to the cell containing (x, y). Centers outside
// the grid are rejected silently; the wall constraint keeps that from
// happening in normal operation.
func (g *Grid) Insert(x, y float32, idx int32) {
	if x < 0 || y < 0 {
		// Truncation would fold small negatives into column 0.
		return
	}
	cx := int(x / g.cellSize)
	cy := int(y / g.cellSize)
	if cell, ok := g.cells.TryGet(cx, cy); ok {
		*cell = append(*cell, idx)
	}
}

// Cell returns the index sequence of cell (cx, cy).
func (g *Grid) Cell(cx, cy int) []int32 {
	return *g.cells.Get(cx, cy)
}

// Cols returns the column count.
func (g *Grid) Cols() int {
	return g.cells.Width()
}

// Rows returns the row count.
func (g *Grid) Rows() int {
	return g.cells.Height()
}

// CellSize returns the cell edge length in world units.
func (g *Grid) CellSize() float32 {
	return g.cellSize
}

// Count returns the total number of stored indices, for diagnostics.
func (g *Grid) Count() int {
	n := 0
	for _, cell := range g.cells.Data() {
		n += len(cell)
	}
	return n
}
