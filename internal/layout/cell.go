package layout // layout models the seat grid of a bus

import "strings"

// CellKind identifies what a single grid position holds. The set is closed:
// a cell is a purchasable seat, an aisle/empty slot, a blocked slot or the
// driver position.
type CellKind string

const (
	KindSeat    CellKind = "SEAT"
	KindEmpty   CellKind = "EMPTY"
	KindBlocked CellKind = "BLOCKED"
	KindDriver  CellKind = "DRIVER"
)

// SeatClass is the fare class of a seat cell.
type SeatClass string

const (
	ClassStandard SeatClass = "STANDARD"
	ClassVIP      SeatClass = "VIP"
	ClassSleeper  SeatClass = "SLEEPER"
)

// ParseSeatClass normalizes a raw class string and validates it against the
// closed class set. An empty input defaults to Standard.
func ParseSeatClass(raw string) (SeatClass, error) {
	switch SeatClass(strings.ToUpper(strings.TrimSpace(raw))) {
	case "":
		return ClassStandard, nil
	case ClassStandard:
		return ClassStandard, nil
	case ClassVIP:
		return ClassVIP, nil
	case ClassSleeper:
		return ClassSleeper, nil
	default:
		return "", ErrBadSeatClass
	}
}

// SeatAttrs carries the attributes that exist only while a cell is a seat.
// SeatNumber is auto-generated from position on every transition into the
// Seat kind and may be overridden afterwards through a patch.
type SeatAttrs struct {
	SeatNumber      string
	Class           SeatClass
	PriceMultiplier float64
	IsAvailable     bool
}

// Cell is the atomic unit of a floor grid. Its identity is exactly its
// 1-based (Row, Column) position; cells never move, only their kind and
// attributes change. Seat is non-nil if and only if Kind == KindSeat, which
// keeps seat-only attributes structurally gated to the Seat kind.
type Cell struct {
	Row    int
	Column int
	Kind   CellKind
	Seat   *SeatAttrs
}

// IsSeat reports whether the cell currently holds a purchasable seat.
func (c Cell) IsSeat() bool { return c.Kind == KindSeat }

// clone returns a deep copy so that two floors never share SeatAttrs.
func (c Cell) clone() Cell {
	out := c
	if c.Seat != nil {
		attrs := *c.Seat
		out.Seat = &attrs
	}
	return out
}
