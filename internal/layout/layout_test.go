package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdesk/bus-seat-layout/internal/layout"
)

// TestNewLayout starts a session with one uniform default floor.
func TestNewLayout(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	l, err := eng.NewLayout("bus-42")
	require.NoError(t, err)
	assert.Equal(t, "bus-42", l.BusID)
	require.Len(t, l.Floors, 1)
	assert.Equal(t, 1, l.Floors[0].Number)
	assert.Equal(t, 10, l.Floors[0].Rows)
	assert.Equal(t, 4, l.Floors[0].Columns)
	assert.Equal(t, 40, l.TotalSeats())
	assert.Equal(t, 40, l.SeatCountByClass(layout.ClassStandard))
}

// TestAddFloor appends an Empty floor numbered past the highest and stops
// at the configured maximum.
func TestAddFloor(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	l, err := eng.NewLayout("b")
	require.NoError(t, err)

	l2, err := eng.AddFloor(l)
	require.NoError(t, err)
	require.Len(t, l2.Floors, 2)
	upper, ok := l2.Floor(2)
	require.True(t, ok)
	assert.Equal(t, 0, upper.SeatCount()) // new floors start Empty
	assert.Equal(t, 40, l2.TotalSeats())  // only the original uniform floor counts

	_, err = eng.AddFloor(l2)
	assert.ErrorIs(t, err, layout.ErrFloorLimit)
	require.Len(t, l2.Floors, 2) // rejected call left the input alone
}

// TestRemoveFloor removes an arbitrary floor by number, keeps the remaining
// numbers stable and refuses to drop below one floor.
func TestRemoveFloor(t *testing.T) {
	settings := layout.DefaultSettings()
	settings.MaxFloors = 3
	eng := layout.NewEngine(settings)

	l, err := eng.NewLayout("b")
	require.NoError(t, err)
	l, err = eng.AddFloor(l)
	require.NoError(t, err)
	l, err = eng.AddFloor(l)
	require.NoError(t, err)
	require.Len(t, l.Floors, 3)

	// remove the middle floor: 1 and 3 keep their numbers
	l, err = eng.RemoveFloor(l, 2)
	require.NoError(t, err)
	require.Len(t, l.Floors, 2)
	_, ok := l.Floor(2)
	assert.False(t, ok)
	_, ok = l.Floor(3)
	assert.True(t, ok)

	_, err = eng.RemoveFloor(l, 7)
	assert.ErrorIs(t, err, layout.ErrFloorNotFound)

	l, err = eng.RemoveFloor(l, 3)
	require.NoError(t, err)
	_, err = eng.RemoveFloor(l, 1)
	assert.ErrorIs(t, err, layout.ErrLastFloor)
}

// TestReplaceFloor folds an edited floor back into the aggregate.
func TestReplaceFloor(t *testing.T) {
	eng := layout.NewEngine(layout.DefaultSettings())
	l, err := eng.NewLayout("b")
	require.NoError(t, err)

	f, _ := l.Floor(1)
	edited, err := eng.ApplyTool(f, 1, 1, layout.MakeDriver)
	require.NoError(t, err)

	l2, err := eng.ReplaceFloor(l, edited)
	require.NoError(t, err)
	assert.Equal(t, 39, l2.TotalSeats())
	assert.Equal(t, 40, l.TotalSeats()) // original snapshot untouched

	orphan, err := layout.NewFloor(9, 2, 2)
	require.NoError(t, err)
	_, err = eng.ReplaceFloor(l, orphan)
	assert.ErrorIs(t, err, layout.ErrFloorNotFound)
}

// TestStatisticsConsistency runs a mixed edit sequence and checks the
// derived counts always equal a straight recount of the grid.
func TestStatisticsConsistency(t *testing.T) {
	settings := layout.DefaultSettings()
	eng := layout.NewEngine(settings)
	l, err := eng.NewLayout("b")
	require.NoError(t, err)
	l, err = eng.AddFloor(l)
	require.NoError(t, err)

	type edit struct {
		floor, row, col int
		tool            layout.Tool
	}
	edits := []edit{
		{1, 1, 1, layout.MakeDriver},
		{1, 1, 2, layout.MakeEmpty},
		{1, 2, 2, layout.PlaceSeat(layout.ClassVIP)},
		{2, 1, 1, layout.PlaceSeat(layout.ClassSleeper)},
		{2, 1, 2, layout.PlaceSeat(layout.ClassSleeper)},
		{2, 2, 1, layout.MakeBlocked},
		{1, 2, 2, layout.PlaceSeat(layout.ClassVIP)}, // repeat on purpose
	}
	for _, e := range edits {
		f, ok := l.Floor(e.floor)
		require.True(t, ok)
		f, err = eng.ApplyTool(f, e.row, e.col, e.tool)
		require.NoError(t, err)
		l, err = eng.ReplaceFloor(l, f)
		require.NoError(t, err)

		recount := 0
		for _, fl := range l.Floors {
			recount += fl.SeatCount()
		}
		assert.Equal(t, recount, l.TotalSeats())
	}

	counts := l.SeatCounts()
	assert.Equal(t, l.TotalSeats(), counts[layout.ClassStandard]+counts[layout.ClassVIP]+counts[layout.ClassSleeper])
	assert.Equal(t, 1, counts[layout.ClassVIP])
	assert.Equal(t, 2, counts[layout.ClassSleeper])
}
