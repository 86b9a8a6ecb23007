package handler // handler defines http handlers

import (
	"context" // context carries request-scoped deadlines into repositories
	"errors"  // errors provides sentinel values used in getUserID
	"net/http"
	"strconv" // strconv converts strings to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/transitdesk/bus-seat-layout/internal/layout"     // layout is the pure seat grid engine
	"github.com/transitdesk/bus-seat-layout/internal/repository" // repository holds data access layer
)

// OperatorHandler bundles the repositories and the layout engine used by
// operators to manage their fleet and seat layouts.
type OperatorHandler struct {
	BusRepo    *repository.BusRepo    // BusRepo provides bus persistence
	FloorRepo  *repository.FloorRepo  // FloorRepo provides floor persistence
	SeatRepo   *repository.SeatRepo   // SeatRepo provides seat persistence
	LayoutRepo *repository.LayoutRepo // LayoutRepo runs transactional layout rebuilds
	Engine     *layout.Engine         // Engine applies all grid semantics
}

// NewOperatorHandler constructs a new OperatorHandler and panics if any dependency is nil.
func NewOperatorHandler(busRepo *repository.BusRepo, floorRepo *repository.FloorRepo, seatRepo *repository.SeatRepo, layoutRepo *repository.LayoutRepo, engine *layout.Engine) *OperatorHandler {
	if busRepo == nil || floorRepo == nil || seatRepo == nil || layoutRepo == nil || engine == nil { // check for nil dependencies
		panic("nil dependency passed to NewOperatorHandler") // panic when a dependency is missing
	}
	return &OperatorHandler{
		BusRepo:    busRepo,
		FloorRepo:  floorRepo,
		SeatRepo:   seatRepo,
		LayoutRepo: layoutRepo,
		Engine:     engine,
	}
}

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id") // fetch user_id from context
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64: // JWT claims decode numbers as float64
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context") // value missing or of unexpected type
}

// loadLayout reads a bus's floors and seats from the database and rebuilds
// the in-memory layout through the engine. Floors with no seats hydrate as
// all-Empty grids of their stored dimensions.
func (h *OperatorHandler) loadLayout(ctx context.Context, busID uint64) (*layout.Layout, error) {
	floors, err := h.FloorRepo.GetByBus(ctx, busID)
	if err != nil {
		return nil, err
	}
	seats, err := h.SeatRepo.GetByBus(ctx, busID)
	if err != nil {
		return nil, err
	}
	return h.Engine.Hydrate(strconv.FormatUint(busID, 10), floorSeatsFromRows(floors, seats))
}

// floorSeatsFromRows groups stored seat rows under their floor records in
// the engine's wire format.
func floorSeatsFromRows(floors []repository.BusFloor, seats []repository.BusSeat) []layout.FloorSeats {
	out := make([]layout.FloorSeats, 0, len(floors))
	for _, f := range floors {
		fs := layout.FloorSeats{
			Floor:   f.FloorNumber,
			Rows:    f.SeatRows,
			Columns: f.SeatCols,
			Seats:   []layout.SeatRecord{},
		}
		for _, s := range seats {
			if s.FloorNumber != f.FloorNumber {
				continue
			}
			fs.Seats = append(fs.Seats, layout.SeatRecord{
				Row:             s.RowPos,
				Column:          s.ColPos,
				SeatNumber:      s.SeatNumber,
				SeatType:        s.SeatClass,
				PriceMultiplier: s.PriceMultiplier,
				IsAvailable:     s.IsAvailable,
			})
		}
		out = append(out, fs)
	}
	return out
}

// seatRowsFromFloor flattens one engine floor into bus_seats rows, Seat
// cells only.
func seatRowsFromFloor(busID uint64, f *layout.Floor) []repository.BusSeat {
	var rows []repository.BusSeat
	for _, cell := range f.Cells() {
		if !cell.IsSeat() {
			continue
		}
		rows = append(rows, repository.BusSeat{
			BusID:           busID,
			FloorNumber:     f.Number,
			RowPos:          cell.Row,
			ColPos:          cell.Column,
			SeatNumber:      cell.Seat.SeatNumber,
			SeatClass:       string(cell.Seat.Class),
			PriceMultiplier: cell.Seat.PriceMultiplier,
			IsAvailable:     cell.Seat.IsAvailable,
		})
	}
	return rows
}

// persistFloor rewrites one deck's seats and dimensions from an engine
// snapshot. The delete-and-recreate sequence mirrors how the whole layout
// is saved and keeps bus_seats free of stale positions; the repository runs
// it in a single transaction so a mid-rebuild failure never drops the deck.
func (h *OperatorHandler) persistFloor(ctx context.Context, busID uint64, f *layout.Floor) error {
	floor := repository.BusFloor{
		BusID:       busID,
		FloorNumber: f.Number,
		SeatRows:    f.Rows,
		SeatCols:    f.Columns,
	}
	return h.LayoutRepo.ReplaceFloor(ctx, busID, floor, seatRowsFromFloor(busID, f))
}

// reconcileCapacity recomputes buses.seat_capacity from the layout.
func (h *OperatorHandler) reconcileCapacity(ctx context.Context, busID uint64, l *layout.Layout) error {
	return h.BusRepo.UpdateSeatCapacity(ctx, busID, uint32(l.TotalSeats()))
}

// layoutErrStatus maps engine sentinel errors onto HTTP status codes.
// Validation failures are 400, missing targets are 404 and state conflicts
// such as the floor limit or editing a non-seat cell are 409.
func layoutErrStatus(err error) int {
	switch {
	case errors.Is(err, layout.ErrOutOfBounds),
		errors.Is(err, layout.ErrFloorNotFound):
		return http.StatusNotFound
	case errors.Is(err, layout.ErrFloorLimit),
		errors.Is(err, layout.ErrLastFloor),
		errors.Is(err, layout.ErrNotSeat):
		return http.StatusConflict
	case errors.Is(err, layout.ErrBadDimensions),
		errors.Is(err, layout.ErrColumnLetters),
		errors.Is(err, layout.ErrBadSeatClass),
		errors.Is(err, layout.ErrMultiplierRange),
		errors.Is(err, layout.ErrNoFloors),
		errors.Is(err, layout.ErrDuplicateFloor),
		errors.Is(err, layout.ErrDuplicateSeat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// cellDTO is the JSON shape of one grid cell in layout responses. Seat is
// present only for SEAT cells.
type cellDTO struct {
	Row    int      `json:"row"`
	Column int      `json:"column"`
	Kind   string   `json:"kind"`
	Seat   *seatDTO `json:"seat,omitempty"`
}

// seatDTO is the JSON shape of seat attributes.
type seatDTO struct {
	SeatNumber      string  `json:"seat_number"`
	SeatType        string  `json:"seat_type"`
	PriceMultiplier float64 `json:"price_multiplier"`
	IsAvailable     bool    `json:"is_available"`
}

// floorDTO is the JSON shape of one deck: dimensions plus the full cell grid.
type floorDTO struct {
	Floor   int       `json:"floor"`
	Rows    int       `json:"rows"`
	Columns int       `json:"columns"`
	Cells   []cellDTO `json:"cells"`
}

// layoutDTO is the JSON shape of a whole layout response.
type layoutDTO struct {
	BusID  uint64     `json:"bus_id"`
	Floors []floorDTO `json:"floors"`
}

// layoutToDTO renders every cell of every floor, row-major.
func layoutToDTO(busID uint64, l *layout.Layout) layoutDTO {
	dto := layoutDTO{BusID: busID, Floors: make([]floorDTO, 0, len(l.Floors))}
	for _, f := range l.Floors {
		fd := floorDTO{Floor: f.Number, Rows: f.Rows, Columns: f.Columns, Cells: make([]cellDTO, 0, f.Rows*f.Columns)}
		for _, cell := range f.Cells() {
			cd := cellDTO{Row: cell.Row, Column: cell.Column, Kind: string(cell.Kind)}
			if cell.IsSeat() {
				cd.Seat = &seatDTO{
					SeatNumber:      cell.Seat.SeatNumber,
					SeatType:        string(cell.Seat.Class),
					PriceMultiplier: cell.Seat.PriceMultiplier,
					IsAvailable:     cell.Seat.IsAvailable,
				}
			}
			fd.Cells = append(fd.Cells, cd)
		}
		dto.Floors = append(dto.Floors, fd)
	}
	return dto
}
