package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdesk/bus-seat-layout/internal/layout"
	"github.com/transitdesk/bus-seat-layout/internal/repository"
)

// TestFloorSeatsFromRows groups stored seat rows under their floors and
// keeps seatless floors with their dimensions.
func TestFloorSeatsFromRows(t *testing.T) {
	floors := []repository.BusFloor{
		{BusID: 5, FloorNumber: 1, SeatRows: 2, SeatCols: 2},
		{BusID: 5, FloorNumber: 2, SeatRows: 3, SeatCols: 1},
	}
	seats := []repository.BusSeat{
		{BusID: 5, FloorNumber: 1, RowPos: 1, ColPos: 2, SeatNumber: "1B", SeatClass: "VIP", PriceMultiplier: 1.5, IsAvailable: true},
		{BusID: 5, FloorNumber: 2, RowPos: 3, ColPos: 1, SeatNumber: "3A", SeatClass: "STANDARD", PriceMultiplier: 1.0, IsAvailable: false},
	}

	out := floorSeatsFromRows(floors, seats)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Floor)
	assert.Equal(t, 2, out[0].Rows)
	require.Len(t, out[0].Seats, 1)
	assert.Equal(t, "1B", out[0].Seats[0].SeatNumber)
	assert.Equal(t, "VIP", out[0].Seats[0].SeatType)
	require.Len(t, out[1].Seats, 1)
	assert.False(t, out[1].Seats[0].IsAvailable)

	// the grouped form hydrates cleanly
	eng := layout.NewEngine(layout.DefaultSettings())
	l, err := eng.Hydrate("5", out)
	require.NoError(t, err)
	assert.Equal(t, 2, l.TotalSeats())
}

// TestSeatRowsFromFloor flattens only Seat cells and carries every
// attribute into the row form.
func TestSeatRowsFromFloor(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	f, err := eng.UniformFloor(1, 2, 2, layout.ClassSleeper)
	require.NoError(t, err)
	f, err = eng.ApplyTool(f, 1, 1, layout.MakeDriver)
	require.NoError(t, err)

	rows := seatRowsFromFloor(9, f)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, uint64(9), r.BusID)
		assert.Equal(t, 1, r.FloorNumber)
		assert.Equal(t, "SLEEPER", r.SeatClass)
		assert.Equal(t, 1.2, r.PriceMultiplier)
		assert.True(t, r.IsAvailable)
	}
	assert.Equal(t, "1B", rows[0].SeatNumber) // row-major, driver cell skipped
}

// TestSeatRowsRoundTrip stores a floor as rows and hydrates it back
// without losing seat state.
func TestSeatRowsRoundTrip(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	f, err := eng.UniformFloor(1, 2, 3, layout.ClassStandard)
	require.NoError(t, err)
	override := "AISLE-1"
	f, err = eng.UpdateSeat(f, 2, 2, layout.SeatPatch{SeatNumber: &override})
	require.NoError(t, err)

	floors := []repository.BusFloor{{BusID: 3, FloorNumber: 1, SeatRows: f.Rows, SeatCols: f.Columns}}
	l, err := eng.Hydrate("3", floorSeatsFromRows(floors, seatRowsFromFloor(3, f)))
	require.NoError(t, err)
	assert.Equal(t, 6, l.TotalSeats())
	cell, err := l.Floors[0].CellAt(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "AISLE-1", cell.Seat.SeatNumber)
}

// TestLayoutToDTO renders every cell and attaches seat attributes only to
// Seat cells.
func TestLayoutToDTO(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	f, err := eng.UniformFloor(1, 2, 2, layout.ClassStandard)
	require.NoError(t, err)
	f, err = eng.ApplyTool(f, 2, 2, layout.MakeBlocked)
	require.NoError(t, err)
	l := &layout.Layout{BusID: "8", Floors: []*layout.Floor{f}}

	dto := layoutToDTO(8, l)
	assert.Equal(t, uint64(8), dto.BusID)
	require.Len(t, dto.Floors, 1)
	require.Len(t, dto.Floors[0].Cells, 4)
	assert.Equal(t, "SEAT", dto.Floors[0].Cells[0].Kind)
	require.NotNil(t, dto.Floors[0].Cells[0].Seat)
	assert.Equal(t, "1A", dto.Floors[0].Cells[0].Seat.SeatNumber)
	assert.Equal(t, "BLOCKED", dto.Floors[0].Cells[3].Kind)
	assert.Nil(t, dto.Floors[0].Cells[3].Seat)
}

// TestLayoutErrStatus maps engine sentinels onto the API's status codes.
func TestLayoutErrStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{layout.ErrOutOfBounds, http.StatusNotFound},
		{layout.ErrFloorNotFound, http.StatusNotFound},
		{layout.ErrFloorLimit, http.StatusConflict},
		{layout.ErrLastFloor, http.StatusConflict},
		{layout.ErrNotSeat, http.StatusConflict},
		{layout.ErrBadDimensions, http.StatusBadRequest},
		{layout.ErrMultiplierRange, http.StatusBadRequest},
		{layout.ErrBadSeatClass, http.StatusBadRequest},
		{layout.ErrDuplicateSeat, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, layoutErrStatus(tc.err), tc.err.Error())
	}
}
