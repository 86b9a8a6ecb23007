// Package layout defines sentinel errors shared by the engine operations.
// Handlers compare against these values to pick HTTP status codes; the
// engine itself never panics for an expected validation failure.
package layout

import "errors"

// ErrBadDimensions is returned when a grid is requested with a row, column
// or floor count below 1, or above the configured product maximum.
var ErrBadDimensions = errors.New("invalid grid dimensions")

// ErrOutOfBounds is returned when a cell operation targets a coordinate
// outside the floor's declared rows/columns. Under correct usage callers
// only pass coordinates the engine produced, so hitting this usually means
// stale coordinates after a resize.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// ErrColumnLetters is returned by SeatNumber when the column exceeds the
// single-letter range (A..Z). The engine refuses to wrap silently.
var ErrColumnLetters = errors.New("column exceeds letter range")

// ErrBadSeatClass is returned when a seat class outside the closed
// Standard/VIP/Sleeper set is supplied.
var ErrBadSeatClass = errors.New("unknown seat class")

// ErrMultiplierRange is returned when a price multiplier falls outside the
// configured [min, max] window. Values are rejected, never clamped.
var ErrMultiplierRange = errors.New("price multiplier out of range")

// ErrNotSeat is returned when a seat-only attribute patch targets a cell
// whose kind is not Seat.
var ErrNotSeat = errors.New("cell is not a seat")

// ErrFloorLimit is returned when adding a floor would exceed the configured
// maximum floor count.
var ErrFloorLimit = errors.New("floor limit reached")

// ErrLastFloor is returned when removing a floor would leave the layout
// with no floors at all.
var ErrLastFloor = errors.New("cannot remove last floor")

// ErrFloorNotFound is returned when a layout operation names a floor number
// that does not exist in the layout.
var ErrFloorNotFound = errors.New("floor not found")

// ErrNoFloors is returned by Hydrate when the stored payload contains no
// floors; a layout always has at least one.
var ErrNoFloors = errors.New("layout has no floors")

// ErrDuplicateFloor is returned by Hydrate when two stored floors share the
// same floor number.
var ErrDuplicateFloor = errors.New("duplicate floor number")

// ErrDuplicateSeat is returned by Hydrate when two stored seat records claim
// the same (row, column) position on one floor.
var ErrDuplicateSeat = errors.New("duplicate seat position")
