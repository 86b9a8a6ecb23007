package layout

// Tool is one of the editor's cell tools: placing a seat of a given class
// or turning a cell into an empty, blocked or driver slot. Use PlaceSeat
// for the seat tool and the package-level values for the rest.
type Tool struct {
	Kind  CellKind
	Class SeatClass
}

// PlaceSeat returns the seat tool for a class. An empty class defaults to
// Standard when the tool is applied.
func PlaceSeat(class SeatClass) Tool { return Tool{Kind: KindSeat, Class: class} }

var (
	// MakeEmpty turns a cell into an aisle/empty slot.
	MakeEmpty = Tool{Kind: KindEmpty}
	// MakeBlocked turns a cell into a blocked slot.
	MakeBlocked = Tool{Kind: KindBlocked}
	// MakeDriver marks a cell as the driver position.
	MakeDriver = Tool{Kind: KindDriver}
)

// Engine evaluates layout operations against a Settings value. It is
// stateless between calls: every operation consumes a Floor or Layout and
// returns a new one.
type Engine struct {
	settings Settings
}

// NewEngine builds an engine, filling unset Settings fields from
// DefaultSettings.
func NewEngine(s Settings) *Engine {
	return &Engine{settings: s.normalized()}
}

// Settings exposes the normalized configuration the engine runs with.
func (e *Engine) Settings() Settings { return e.settings }

// ApplyTool applies a tool to exactly one cell and returns the updated
// floor. Every application is a full kind transition, not an attribute
// merge: PlaceSeat regenerates the seat number from the position and resets
// class, multiplier (from the configured class defaults) and availability,
// while the other tools discard any prior seat attributes. Applying the
// same tool twice yields the same cell, since the generated number depends
// only on position.
func (e *Engine) ApplyTool(f *Floor, row, column int, tool Tool) (*Floor, error) {
	if !f.InBounds(row, column) {
		return nil, ErrOutOfBounds
	}
	cell := Cell{Row: row, Column: column, Kind: tool.Kind}
	switch tool.Kind {
	case KindSeat:
		class, err := ParseSeatClass(string(tool.Class))
		if err != nil {
			return nil, err
		}
		number, err := SeatNumber(row, column)
		if err != nil {
			return nil, err
		}
		cell.Seat = &SeatAttrs{
			SeatNumber:      number,
			Class:           class,
			PriceMultiplier: e.settings.priceDefault(class),
			IsAvailable:     true,
		}
	case KindEmpty, KindBlocked, KindDriver:
		// no kind-specific attributes
	default:
		return nil, ErrBadSeatClass
	}
	next := f.clone()
	next.cells[next.index(row, column)] = cell
	return next, nil
}

// SeatPatch is a partial update of seat-only attributes. Nil fields are
// left untouched.
type SeatPatch struct {
	SeatNumber      *string
	Class           *SeatClass
	PriceMultiplier *float64
	IsAvailable     *bool
}

// UpdateSeat merges a patch into the seat cell at (row, column) without
// changing its kind or position. Patching a non-Seat cell is reported as
// ErrNotSeat, and a multiplier outside the configured window is rejected
// with ErrMultiplierRange; in both cases the original floor is returned
// unchanged to the caller in the error path.
func (e *Engine) UpdateSeat(f *Floor, row, column int, patch SeatPatch) (*Floor, error) {
	if !f.InBounds(row, column) {
		return nil, ErrOutOfBounds
	}
	cur := f.cells[f.index(row, column)]
	if !cur.IsSeat() {
		return nil, ErrNotSeat
	}
	attrs := *cur.Seat
	if patch.SeatNumber != nil {
		attrs.SeatNumber = *patch.SeatNumber
	}
	if patch.Class != nil {
		class, err := ParseSeatClass(string(*patch.Class))
		if err != nil {
			return nil, err
		}
		attrs.Class = class
	}
	if patch.PriceMultiplier != nil {
		if !e.settings.multiplierInRange(*patch.PriceMultiplier) {
			return nil, ErrMultiplierRange
		}
		attrs.PriceMultiplier = *patch.PriceMultiplier
	}
	if patch.IsAvailable != nil {
		attrs.IsAvailable = *patch.IsAvailable
	}
	next := f.clone()
	next.cells[next.index(row, column)] = Cell{Row: row, Column: column, Kind: KindSeat, Seat: &attrs}
	return next, nil
}

// ResizeFloor resizes a floor after checking the requested shape against
// the configured product maxima. The overlap-preservation semantics live in
// Floor.Resize.
func (e *Engine) ResizeFloor(f *Floor, newRows, newColumns int) (*Floor, error) {
	if err := e.settings.CheckDims(newRows, newColumns); err != nil {
		return nil, err
	}
	return f.Resize(newRows, newColumns)
}

// UniformFloor generates a floor where every cell is a seat of one class.
// This is the path used when a new bus is created, before any manual
// editing. It is implemented literally as NewFloor followed by ApplyTool on
// every cell in row-major order, so its output can never diverge from
// manual cell-by-cell placement in numbering or attribute defaults.
func (e *Engine) UniformFloor(number, rows, columns int, class SeatClass) (*Floor, error) {
	if err := e.settings.CheckDims(rows, columns); err != nil {
		return nil, err
	}
	f, err := NewFloor(number, rows, columns)
	if err != nil {
		return nil, err
	}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= columns; c++ {
			f, err = e.ApplyTool(f, r, c, PlaceSeat(class))
			if err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
