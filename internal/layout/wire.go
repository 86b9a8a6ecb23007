package layout

// SeatRecord is one Seat cell in the persisted wire format.
type SeatRecord struct {
	Row             int     `json:"row"`
	Column          int     `json:"column"`
	SeatNumber      string  `json:"seat_number"`
	SeatType        string  `json:"seat_type"`
	PriceMultiplier float64 `json:"price_multiplier"`
	IsAvailable     bool    `json:"is_available"`
}

// FloorSeats is the wire representation of one floor: its dimensions plus
// the Seat-kind cells only. Empty, Blocked and Driver cells are omitted
// (the backend persists seats, not the geometry of non-seat cells), so
// those positions come back Empty after hydration.
type FloorSeats struct {
	Floor   int          `json:"floor"`
	Rows    int          `json:"rows"`
	Columns int          `json:"columns"`
	Seats   []SeatRecord `json:"seats"`
}

// Serialize flattens a layout into the wire format the submission endpoint
// and the seat tables expect. Floors appear in layout order; seats appear
// in row-major order per floor.
func Serialize(l *Layout) []FloorSeats {
	out := make([]FloorSeats, 0, len(l.Floors))
	for _, f := range l.Floors {
		fs := FloorSeats{Floor: f.Number, Rows: f.Rows, Columns: f.Columns, Seats: []SeatRecord{}}
		for _, c := range f.Cells() {
			if !c.IsSeat() {
				continue
			}
			fs.Seats = append(fs.Seats, SeatRecord{
				Row:             c.Row,
				Column:          c.Column,
				SeatNumber:      c.Seat.SeatNumber,
				SeatType:        string(c.Seat.Class),
				PriceMultiplier: c.Seat.PriceMultiplier,
				IsAvailable:     c.Seat.IsAvailable,
			})
		}
		out = append(out, fs)
	}
	return out
}

// Hydrate rebuilds a layout from floor/seat records and validates the
// payload in full, since the same format arrives both from storage and from
// untrusted save requests. Floor dimensions must pass the product maxima,
// duplicate floor numbers or seat positions and out-of-bounds coordinates
// are rejected, and a nonzero multiplier outside the configured window is
// ErrMultiplierRange. Seat attributes are restored exactly as given
// (overridden seat numbers included); a record with no multiplier gets the
// configured class default; any position without a seat record becomes
// Empty.
func (e *Engine) Hydrate(busID string, floors []FloorSeats) (*Layout, error) {
	if len(floors) == 0 {
		return nil, ErrNoFloors
	}
	l := &Layout{BusID: busID}
	seen := make(map[int]bool, len(floors))
	for _, fs := range floors {
		if seen[fs.Floor] {
			return nil, ErrDuplicateFloor
		}
		seen[fs.Floor] = true
		if err := e.settings.CheckDims(fs.Rows, fs.Columns); err != nil {
			return nil, err
		}
		f, err := NewFloor(fs.Floor, fs.Rows, fs.Columns)
		if err != nil {
			return nil, err
		}
		for _, s := range fs.Seats {
			if !f.InBounds(s.Row, s.Column) {
				return nil, ErrOutOfBounds
			}
			idx := f.index(s.Row, s.Column)
			if f.cells[idx].IsSeat() {
				return nil, ErrDuplicateSeat
			}
			class, err := ParseSeatClass(s.SeatType)
			if err != nil {
				return nil, err
			}
			number := s.SeatNumber
			if number == "" {
				if number, err = SeatNumber(s.Row, s.Column); err != nil {
					return nil, err
				}
			}
			multiplier := s.PriceMultiplier
			if multiplier == 0 {
				multiplier = e.settings.priceDefault(class)
			} else if !e.settings.multiplierInRange(multiplier) {
				return nil, ErrMultiplierRange
			}
			f.cells[idx] = Cell{
				Row:    s.Row,
				Column: s.Column,
				Kind:   KindSeat,
				Seat: &SeatAttrs{
					SeatNumber:      number,
					Class:           class,
					PriceMultiplier: multiplier,
					IsAvailable:     s.IsAvailable,
				},
			}
		}
		l.Floors = append(l.Floors, f)
	}
	return l, nil
}
