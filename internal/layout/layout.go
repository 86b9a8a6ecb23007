package layout

// Layout is the aggregate root of an editing session: the bus being edited
// and its ordered floors, unique by floor number, with at least one floor
// always present. BusID is an opaque foreign key the engine never
// interprets.
type Layout struct {
	BusID  string
	Floors []*Floor
}

// NewLayout starts a fresh editing session for a bus: a single uniform
// floor of Standard seats at the configured default dimensions. This is the
// state the editor opens with when no persisted layout exists.
func (e *Engine) NewLayout(busID string) (*Layout, error) {
	f, err := e.UniformFloor(1, e.settings.DefaultRows, e.settings.DefaultColumns, ClassStandard)
	if err != nil {
		return nil, err
	}
	return &Layout{BusID: busID, Floors: []*Floor{f}}, nil
}

// Floor resolves a floor by its stable number.
func (l *Layout) Floor(number int) (*Floor, bool) {
	for _, f := range l.Floors {
		if f.Number == number {
			return f, true
		}
	}
	return nil, false
}

// clone deep-copies the layout so a returned snapshot never aliases its
// predecessor.
func (l *Layout) clone() *Layout {
	out := &Layout{BusID: l.BusID, Floors: make([]*Floor, len(l.Floors))}
	for i, f := range l.Floors {
		out.Floors[i] = f.clone()
	}
	return out
}

// AddFloor appends a new Empty floor numbered one past the current highest,
// at the configured default dimensions. Adding beyond the configured
// maximum floor count is rejected with ErrFloorLimit.
func (e *Engine) AddFloor(l *Layout) (*Layout, error) {
	if len(l.Floors) >= e.settings.MaxFloors {
		return nil, ErrFloorLimit
	}
	highest := 0
	for _, f := range l.Floors {
		if f.Number > highest {
			highest = f.Number
		}
	}
	added, err := NewFloor(highest+1, e.settings.DefaultRows, e.settings.DefaultColumns)
	if err != nil {
		return nil, err
	}
	next := l.clone()
	next.Floors = append(next.Floors, added)
	return next, nil
}

// RemoveFloor removes the named floor. Floor numbers are stable
// identifiers, so the remaining floors are not renumbered. Removing the
// last remaining floor is rejected with ErrLastFloor.
func (e *Engine) RemoveFloor(l *Layout, number int) (*Layout, error) {
	if len(l.Floors) <= 1 {
		return nil, ErrLastFloor
	}
	if _, ok := l.Floor(number); !ok {
		return nil, ErrFloorNotFound
	}
	next := &Layout{BusID: l.BusID}
	for _, f := range l.Floors {
		if f.Number != number {
			next.Floors = append(next.Floors, f.clone())
		}
	}
	return next, nil
}

// ReplaceFloor swaps an edited floor back into the layout by its number.
// This is how per-floor operations (resize, tools, patches) are folded into
// the aggregate.
func (e *Engine) ReplaceFloor(l *Layout, floor *Floor) (*Layout, error) {
	if _, ok := l.Floor(floor.Number); !ok {
		return nil, ErrFloorNotFound
	}
	next := l.clone()
	for i, f := range next.Floors {
		if f.Number == floor.Number {
			next.Floors[i] = floor.clone()
		}
	}
	return next, nil
}

// TotalSeats counts Seat-kind cells across all floors. It recomputes from
// the grid on every call so the figure can never drift from the cells.
func (l *Layout) TotalSeats() int {
	n := 0
	for _, f := range l.Floors {
		n += f.SeatCount()
	}
	return n
}

// SeatCountByClass counts seats of one class across all floors.
func (l *Layout) SeatCountByClass(class SeatClass) int {
	n := 0
	for _, f := range l.Floors {
		for _, c := range f.cells {
			if c.IsSeat() && c.Seat.Class == class {
				n++
			}
		}
	}
	return n
}

// SeatCounts returns the per-class seat counts for display and capacity
// reconciliation. Classes with no seats are present with a zero count.
func (l *Layout) SeatCounts() map[SeatClass]int {
	out := map[SeatClass]int{ClassStandard: 0, ClassVIP: 0, ClassSleeper: 0}
	for _, f := range l.Floors {
		for _, c := range f.cells {
			if c.IsSeat() {
				out[c.Seat.Class]++
			}
		}
	}
	return out
}
