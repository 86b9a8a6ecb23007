package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdesk/bus-seat-layout/internal/layout"
)

func newTestEngine(t *testing.T) *layout.Engine {
	t.Helper()
	return layout.NewEngine(layout.DefaultSettings())
}

// TestApplyTool_PlaceSeat checks that the seat tool produces a full seat
// cell with a generated number, the class default multiplier and
// availability on.
func TestApplyTool_PlaceSeat(t *testing.T) {
	eng := newTestEngine(t)
	f, err := layout.NewFloor(1, 4, 4)
	require.NoError(t, err)

	cases := []struct {
		name     string
		class    layout.SeatClass
		wantMult float64
	}{
		{"Standard", layout.ClassStandard, 1.0},
		{"VIP", layout.ClassVIP, 1.5},
		{"Sleeper", layout.ClassSleeper, 1.2},
		{"EmptyClassDefaultsStandard", "", 1.0},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := i + 1
			next, err := eng.ApplyTool(f, row, 2, layout.PlaceSeat(tc.class))
			require.NoError(t, err)
			cell, err := next.CellAt(row, 2)
			require.NoError(t, err)
			require.True(t, cell.IsSeat())
			wantNumber, err := layout.SeatNumber(row, 2)
			require.NoError(t, err)
			assert.Equal(t, wantNumber, cell.Seat.SeatNumber)
			assert.Equal(t, tc.wantMult, cell.Seat.PriceMultiplier)
			assert.True(t, cell.Seat.IsAvailable)
		})
	}
}

// TestApplyTool_KindTransitionDropsSeatAttrs verifies that the non-seat
// tools discard all seat-only attributes.
func TestApplyTool_KindTransitionDropsSeatAttrs(t *testing.T) {
	eng := newTestEngine(t)
	f, err := eng.UniformFloor(1, 2, 2, layout.ClassVIP)
	require.NoError(t, err)

	tools := []struct {
		name string
		tool layout.Tool
		kind layout.CellKind
	}{
		{"MakeEmpty", layout.MakeEmpty, layout.KindEmpty},
		{"MakeBlocked", layout.MakeBlocked, layout.KindBlocked},
		{"MakeDriver", layout.MakeDriver, layout.KindDriver},
	}
	for _, tc := range tools {
		t.Run(tc.name, func(t *testing.T) {
			next, err := eng.ApplyTool(f, 1, 1, tc.tool)
			require.NoError(t, err)
			cell, err := next.CellAt(1, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, cell.Kind)
			assert.Nil(t, cell.Seat)
			// neighbours untouched
			other, err := next.CellAt(1, 2)
			require.NoError(t, err)
			assert.Equal(t, layout.KindSeat, other.Kind)
		})
	}
}

// TestApplyTool_RegeneratesNumber ensures a transition back into the Seat
// kind always derives the number from position instead of reusing a stale
// override.
func TestApplyTool_RegeneratesNumber(t *testing.T) {
	eng := newTestEngine(t)
	f, err := eng.UniformFloor(1, 2, 2, layout.ClassStandard)
	require.NoError(t, err)

	override := "CUSTOM"
	f, err = eng.UpdateSeat(f, 2, 2, layout.SeatPatch{SeatNumber: &override})
	require.NoError(t, err)
	f, err = eng.ApplyTool(f, 2, 2, layout.MakeBlocked)
	require.NoError(t, err)
	f, err = eng.ApplyTool(f, 2, 2, layout.PlaceSeat(layout.ClassStandard))
	require.NoError(t, err)

	cell, err := f.CellAt(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "2B", cell.Seat.SeatNumber)
}

// TestApplyTool_Idempotent applies each tool twice and expects the same
// final cell as a single application.
func TestApplyTool_Idempotent(t *testing.T) {
	eng := newTestEngine(t)
	f, err := layout.NewFloor(1, 3, 3)
	require.NoError(t, err)

	tools := []layout.Tool{
		layout.PlaceSeat(layout.ClassVIP),
		layout.MakeEmpty,
		layout.MakeBlocked,
		layout.MakeDriver,
	}
	for _, tool := range tools {
		once, err := eng.ApplyTool(f, 2, 2, tool)
		require.NoError(t, err)
		twice, err := eng.ApplyTool(once, 2, 2, tool)
		require.NoError(t, err)
		a, err := once.CellAt(2, 2)
		require.NoError(t, err)
		b, err := twice.CellAt(2, 2)
		require.NoError(t, err)
		assert.Equal(t, a, b, "tool %v", tool.Kind)
	}
}

// TestApplyTool_Errors covers out-of-bounds targets and unknown classes.
func TestApplyTool_Errors(t *testing.T) {
	eng := newTestEngine(t)
	f, err := layout.NewFloor(1, 2, 2)
	require.NoError(t, err)

	_, err = eng.ApplyTool(f, 3, 1, layout.MakeEmpty)
	assert.ErrorIs(t, err, layout.ErrOutOfBounds)
	_, err = eng.ApplyTool(f, 1, 0, layout.MakeBlocked)
	assert.ErrorIs(t, err, layout.ErrOutOfBounds)
	_, err = eng.ApplyTool(f, 1, 1, layout.PlaceSeat("RECLINER"))
	assert.ErrorIs(t, err, layout.ErrBadSeatClass)
}

// TestUpdateSeat_MergesPatch checks partial updates leave untouched fields
// alone and never change kind or position.
func TestUpdateSeat_MergesPatch(t *testing.T) {
	eng := newTestEngine(t)
	f, err := eng.UniformFloor(1, 2, 2, layout.ClassStandard)
	require.NoError(t, err)

	mult := 2.5
	class := layout.ClassVIP
	f, err = eng.UpdateSeat(f, 1, 2, layout.SeatPatch{Class: &class, PriceMultiplier: &mult})
	require.NoError(t, err)

	cell, err := f.CellAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, layout.KindSeat, cell.Kind)
	assert.Equal(t, 1, cell.Row)
	assert.Equal(t, 2, cell.Column)
	assert.Equal(t, "1B", cell.Seat.SeatNumber) // untouched by the patch
	assert.Equal(t, layout.ClassVIP, cell.Seat.Class)
	assert.Equal(t, 2.5, cell.Seat.PriceMultiplier)
}

// TestUpdateSeat_OverrideSurvivesUnrelatedEdits verifies a user-supplied
// seat number is preserved while other cells are edited.
func TestUpdateSeat_OverrideSurvivesUnrelatedEdits(t *testing.T) {
	eng := newTestEngine(t)
	f, err := eng.UniformFloor(1, 2, 2, layout.ClassStandard)
	require.NoError(t, err)

	override := "WINDOW-1"
	f, err = eng.UpdateSeat(f, 1, 1, layout.SeatPatch{SeatNumber: &override})
	require.NoError(t, err)
	f, err = eng.ApplyTool(f, 2, 2, layout.MakeBlocked)
	require.NoError(t, err)
	f, err = eng.ApplyTool(f, 1, 2, layout.PlaceSeat(layout.ClassVIP))
	require.NoError(t, err)

	cell, err := f.CellAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "WINDOW-1", cell.Seat.SeatNumber)
}

// TestUpdateSeat_Errors rejects non-seat targets and out-of-window
// multipliers, leaving the input floor unchanged.
func TestUpdateSeat_Errors(t *testing.T) {
	eng := newTestEngine(t)
	f, err := eng.UniformFloor(1, 2, 2, layout.ClassStandard)
	require.NoError(t, err)
	f, err = eng.ApplyTool(f, 2, 1, layout.MakeBlocked)
	require.NoError(t, err)
	before := f.Cells()

	mult := 3.0
	_, err = eng.UpdateSeat(f, 2, 1, layout.SeatPatch{PriceMultiplier: &mult})
	assert.ErrorIs(t, err, layout.ErrNotSeat)

	for _, bad := range []float64{0.49, 5.01, -1, 0.0001} {
		m := bad
		_, err = eng.UpdateSeat(f, 1, 1, layout.SeatPatch{PriceMultiplier: &m})
		assert.ErrorIs(t, err, layout.ErrMultiplierRange, "multiplier %v", bad)
	}

	badClass := layout.SeatClass("COUCH")
	_, err = eng.UpdateSeat(f, 1, 1, layout.SeatPatch{Class: &badClass})
	assert.ErrorIs(t, err, layout.ErrBadSeatClass)

	_, err = eng.UpdateSeat(f, 9, 9, layout.SeatPatch{})
	assert.ErrorIs(t, err, layout.ErrOutOfBounds)

	assert.Equal(t, before, f.Cells())
}

// TestUpdateSeat_BoundaryMultipliers accepts the window endpoints.
func TestUpdateSeat_BoundaryMultipliers(t *testing.T) {
	eng := newTestEngine(t)
	f, err := eng.UniformFloor(1, 1, 2, layout.ClassStandard)
	require.NoError(t, err)
	for _, m := range []float64{0.5, 5.0} {
		mult := m
		next, err := eng.UpdateSeat(f, 1, 1, layout.SeatPatch{PriceMultiplier: &mult})
		require.NoError(t, err)
		cell, err := next.CellAt(1, 1)
		require.NoError(t, err)
		assert.Equal(t, m, cell.Seat.PriceMultiplier)
	}
}

// TestResizeFloor_ProductCaps rejects shapes beyond the configured maxima
// while Floor.Resize itself stays uncapped.
func TestResizeFloor_ProductCaps(t *testing.T) {
	eng := newTestEngine(t)
	f, err := layout.NewFloor(1, 4, 4)
	require.NoError(t, err)

	_, err = eng.ResizeFloor(f, 21, 4)
	assert.ErrorIs(t, err, layout.ErrBadDimensions)
	_, err = eng.ResizeFloor(f, 4, 7)
	assert.ErrorIs(t, err, layout.ErrBadDimensions)
	resized, err := eng.ResizeFloor(f, 20, 6)
	require.NoError(t, err)
	assert.Equal(t, 20, resized.Rows)
	assert.Equal(t, 6, resized.Columns)
}

// TestUniformFloor_MatchesManualPlacement checks the generator shortcut is
// indistinguishable from applying the seat tool cell by cell in row-major
// order.
func TestUniformFloor_MatchesManualPlacement(t *testing.T) {
	eng := newTestEngine(t)
	generated, err := eng.UniformFloor(1, 3, 4, layout.ClassSleeper)
	require.NoError(t, err)

	manual, err := layout.NewFloor(1, 3, 4)
	require.NoError(t, err)
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 4; c++ {
			manual, err = eng.ApplyTool(manual, r, c, layout.PlaceSeat(layout.ClassSleeper))
			require.NoError(t, err)
		}
	}
	assert.Equal(t, manual.Cells(), generated.Cells())
}

// TestEndToEndScenario walks the reference editing sequence: uniform 2x2,
// shrink to 1x2, block (1,1), then read the totals.
func TestEndToEndScenario(t *testing.T) {
	eng := newTestEngine(t)
	f, err := eng.UniformFloor(1, 2, 2, layout.ClassStandard)
	require.NoError(t, err)

	want := map[[2]int]string{{1, 1}: "1A", {1, 2}: "1B", {2, 1}: "2A", {2, 2}: "2B"}
	for pos, number := range want {
		cell, err := f.CellAt(pos[0], pos[1])
		require.NoError(t, err)
		require.True(t, cell.IsSeat())
		assert.Equal(t, number, cell.Seat.SeatNumber)
		assert.Equal(t, layout.ClassStandard, cell.Seat.Class)
		assert.Equal(t, 1.0, cell.Seat.PriceMultiplier)
	}

	f, err = eng.ResizeFloor(f, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, f.SeatCount())
	_, err = f.CellAt(2, 1)
	assert.ErrorIs(t, err, layout.ErrOutOfBounds)

	f, err = eng.ApplyTool(f, 1, 1, layout.MakeBlocked)
	require.NoError(t, err)
	blocked, err := f.CellAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, layout.KindBlocked, blocked.Kind)
	assert.Nil(t, blocked.Seat)
	untouched, err := f.CellAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "1B", untouched.Seat.SeatNumber)

	l := &layout.Layout{BusID: "bus-1", Floors: []*layout.Floor{f}}
	assert.Equal(t, 1, l.TotalSeats())
}
