package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdesk/bus-seat-layout/internal/layout"
)

// TestSerialize_SeatsOnly lists Seat cells only, with floor dimensions kept
// so the grid shape survives even when non-seat geometry does not.
func TestSerialize_SeatsOnly(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	f, err := eng.UniformFloor(1, 2, 2, layout.ClassStandard)
	require.NoError(t, err)
	f, err = eng.ApplyTool(f, 1, 1, layout.MakeDriver)
	require.NoError(t, err)
	f, err = eng.ApplyTool(f, 2, 1, layout.MakeBlocked)
	require.NoError(t, err)
	l := &layout.Layout{BusID: "b", Floors: []*layout.Floor{f}}

	wire := layout.Serialize(l)
	require.Len(t, wire, 1)
	assert.Equal(t, 1, wire[0].Floor)
	assert.Equal(t, 2, wire[0].Rows)
	assert.Equal(t, 2, wire[0].Columns)
	require.Len(t, wire[0].Seats, 2)
	assert.Equal(t, "1B", wire[0].Seats[0].SeatNumber)
	assert.Equal(t, "2B", wire[0].Seats[1].SeatNumber)
	assert.Equal(t, "STANDARD", wire[0].Seats[0].SeatType)
}

// TestHydrate_RestoresSeatsAndEmptiesTheRest rebuilds a layout from stored
// records: seat attributes come back exactly, everything else is Empty.
func TestHydrate_RestoresSeatsAndEmptiesTheRest(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	stored := []layout.FloorSeats{
		{
			Floor: 1, Rows: 2, Columns: 3,
			Seats: []layout.SeatRecord{
				{Row: 1, Column: 1, SeatNumber: "OVERRIDE", SeatType: "VIP", PriceMultiplier: 2.0, IsAvailable: true},
				{Row: 2, Column: 3, SeatNumber: "2C", SeatType: "STANDARD", PriceMultiplier: 1.0, IsAvailable: false},
			},
		},
		{Floor: 2, Rows: 1, Columns: 2, Seats: []layout.SeatRecord{}},
	}

	l, err := eng.Hydrate("bus-9", stored)
	require.NoError(t, err)
	assert.Equal(t, "bus-9", l.BusID)
	require.Len(t, l.Floors, 2)

	seat, err := l.Floors[0].CellAt(1, 1)
	require.NoError(t, err)
	require.True(t, seat.IsSeat())
	assert.Equal(t, "OVERRIDE", seat.Seat.SeatNumber)
	assert.Equal(t, layout.ClassVIP, seat.Seat.Class)
	assert.Equal(t, 2.0, seat.Seat.PriceMultiplier)

	unavailable, err := l.Floors[0].CellAt(2, 3)
	require.NoError(t, err)
	assert.False(t, unavailable.Seat.IsAvailable)

	// positions without a record hydrate as Empty
	for _, pos := range [][2]int{{1, 2}, {1, 3}, {2, 1}, {2, 2}} {
		cell, err := l.Floors[0].CellAt(pos[0], pos[1])
		require.NoError(t, err)
		assert.Equal(t, layout.KindEmpty, cell.Kind, "position %v", pos)
	}
	assert.Equal(t, 0, l.Floors[1].SeatCount())
	assert.Equal(t, 2, l.TotalSeats())
}

// TestHydrate_DefaultsMissingFields fills a generated number and the class
// default multiplier when a record omits them.
func TestHydrate_DefaultsMissingFields(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	stored := []layout.FloorSeats{{
		Floor: 1, Rows: 1, Columns: 2,
		Seats: []layout.SeatRecord{{Row: 1, Column: 2, SeatType: "SLEEPER", IsAvailable: true}},
	}}
	l, err := eng.Hydrate("b", stored)
	require.NoError(t, err)
	cell, err := l.Floors[0].CellAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "1B", cell.Seat.SeatNumber)
	assert.Equal(t, 1.2, cell.Seat.PriceMultiplier)
}

// TestHydrate_Errors rejects malformed stored payloads.
func TestHydrate_Errors(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	seat := layout.SeatRecord{Row: 1, Column: 1, SeatType: "STANDARD", PriceMultiplier: 1, IsAvailable: true}

	cases := []struct {
		name   string
		floors []layout.FloorSeats
		err    error
	}{
		{"NoFloors", nil, layout.ErrNoFloors},
		{"DuplicateFloor", []layout.FloorSeats{
			{Floor: 1, Rows: 1, Columns: 1},
			{Floor: 1, Rows: 1, Columns: 1},
		}, layout.ErrDuplicateFloor},
		{"BadDims", []layout.FloorSeats{{Floor: 1, Rows: 0, Columns: 2}}, layout.ErrBadDimensions},
		{"DimsOverMaxima", []layout.FloorSeats{{Floor: 1, Rows: 500, Columns: 26}}, layout.ErrBadDimensions},
		{"MultiplierTooHigh", []layout.FloorSeats{{
			Floor: 1, Rows: 1, Columns: 1,
			Seats: []layout.SeatRecord{{Row: 1, Column: 1, SeatType: "STANDARD", PriceMultiplier: 99.0}},
		}}, layout.ErrMultiplierRange},
		{"MultiplierNegative", []layout.FloorSeats{{
			Floor: 1, Rows: 1, Columns: 1,
			Seats: []layout.SeatRecord{{Row: 1, Column: 1, SeatType: "VIP", PriceMultiplier: -3.0}},
		}}, layout.ErrMultiplierRange},
		{"SeatOutOfBounds", []layout.FloorSeats{{
			Floor: 1, Rows: 1, Columns: 1,
			Seats: []layout.SeatRecord{{Row: 2, Column: 1, SeatType: "STANDARD"}},
		}}, layout.ErrOutOfBounds},
		{"DuplicateSeat", []layout.FloorSeats{{
			Floor: 1, Rows: 1, Columns: 1,
			Seats: []layout.SeatRecord{seat, seat},
		}}, layout.ErrDuplicateSeat},
		{"BadClass", []layout.FloorSeats{{
			Floor: 1, Rows: 1, Columns: 1,
			Seats: []layout.SeatRecord{{Row: 1, Column: 1, SeatType: "BENCH"}},
		}}, layout.ErrBadSeatClass},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.Hydrate("b", tc.floors)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSerializeHydrate_RoundTrip checks an edited layout survives the trip
// through the wire format, modulo non-seat geometry flattening to Empty.
func TestSerializeHydrate_RoundTrip(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	l, err := eng.NewLayout("bus-7")
	require.NoError(t, err)
	f, _ := l.Floor(1)
	f, err = eng.ApplyTool(f, 1, 1, layout.MakeDriver)
	require.NoError(t, err)
	override := "FRONT-2"
	f, err = eng.UpdateSeat(f, 1, 2, layout.SeatPatch{SeatNumber: &override})
	require.NoError(t, err)
	l, err = eng.ReplaceFloor(l, f)
	require.NoError(t, err)

	back, err := eng.Hydrate(l.BusID, layout.Serialize(l))
	require.NoError(t, err)
	assert.Equal(t, l.TotalSeats(), back.TotalSeats())

	kept, err := back.Floors[0].CellAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "FRONT-2", kept.Seat.SeatNumber)

	// the driver position does not round-trip: it comes back Empty
	driver, err := back.Floors[0].CellAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, layout.KindEmpty, driver.Kind)
}
