package layout

// Floor is one level of a bus: a rectangular Rows x Columns grid of cells
// addressed by 1-based (row, column) coordinates. Cells live in a flat
// row-major arena; the 0-based offset math stays private to this file.
type Floor struct {
	Number  int
	Rows    int
	Columns int
	cells   []Cell
}

// NewFloor builds a fully populated floor where every cell is Empty at its
// correct position. Calling it twice with the same arguments yields
// cell-for-cell identical results. Dimensions and the floor number must be
// at least 1; product maxima are enforced one level up via Settings.
func NewFloor(number, rows, columns int) (*Floor, error) {
	if number < 1 || rows < 1 || columns < 1 {
		return nil, ErrBadDimensions
	}
	f := &Floor{
		Number:  number,
		Rows:    rows,
		Columns: columns,
		cells:   make([]Cell, rows*columns),
	}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= columns; c++ {
			f.cells[f.index(r, c)] = Cell{Row: r, Column: c, Kind: KindEmpty}
		}
	}
	return f, nil
}

// index maps a 1-based coordinate to the arena offset.
func (f *Floor) index(row, column int) int {
	return (row-1)*f.Columns + (column - 1)
}

// InBounds reports whether the coordinate addresses a cell of this floor.
func (f *Floor) InBounds(row, column int) bool {
	return row >= 1 && row <= f.Rows && column >= 1 && column <= f.Columns
}

// CellAt looks up the cell at a coordinate. Not-found is only possible for
// out-of-bounds coordinates, which indicates a caller bug (e.g. stale
// coordinates held across a resize).
func (f *Floor) CellAt(row, column int) (Cell, error) {
	if !f.InBounds(row, column) {
		return Cell{}, ErrOutOfBounds
	}
	return f.cells[f.index(row, column)].clone(), nil
}

// Cells returns the grid in row-major order as independent copies, so
// callers can render or serialize without aliasing engine state.
func (f *Floor) Cells() []Cell {
	out := make([]Cell, len(f.cells))
	for i, c := range f.cells {
		out[i] = c.clone()
	}
	return out
}

// SeatCount counts the Seat-kind cells on this floor.
func (f *Floor) SeatCount() int {
	n := 0
	for _, c := range f.cells {
		if c.IsSeat() {
			n++
		}
	}
	return n
}

// clone copies the floor including a deep copy of the cell arena.
func (f *Floor) clone() *Floor {
	return &Floor{Number: f.Number, Rows: f.Rows, Columns: f.Columns, cells: f.Cells()}
}

// Resize builds a fresh newRows x newColumns grid and copies every cell in
// the overlap region from the old grid, kind and attributes intact. Cells
// that fall outside the new bounds are discarded; positions that are newly
// in bounds stay Empty from initialization. A surviving cell keeps its
// (row, column) identity exactly, user-overridden seat numbers included.
func (f *Floor) Resize(newRows, newColumns int) (*Floor, error) {
	next, err := NewFloor(f.Number, newRows, newColumns)
	if err != nil {
		return nil, err
	}
	copyRows := min(f.Rows, newRows)
	copyCols := min(f.Columns, newColumns)
	for r := 1; r <= copyRows; r++ {
		for c := 1; c <= copyCols; c++ {
			next.cells[next.index(r, c)] = f.cells[f.index(r, c)].clone()
		}
	}
	return next, nil
}
