package handler // handler package contains operator layout editing handlers

import (
	"context"  // context builds a detached timeout for event publishing
	"errors"   // errors package for comparing sentinels
	"net/http" // http defines status code constants
	"strconv"  // strconv parses URL parameters to numbers
	"time"     // time formats the saved_at event timestamp

	"github.com/labstack/echo/v4" // echo framework supplies request context

	"github.com/transitdesk/bus-seat-layout/internal/layout"     // layout engine applies grid semantics
	"github.com/transitdesk/bus-seat-layout/internal/queue"      // queue defines the layout.saved event payload
	"github.com/transitdesk/bus-seat-layout/internal/repository" // repository exposes database models
	queue_publisher "github.com/transitdesk/bus-seat-layout/internal/service"
)

// ownedLayout parses the :id path parameter, verifies bus ownership and
// hydrates the stored layout. The bool reports success; on failure the
// error response has already been written and should be returned as is.
func (h *OperatorHandler) ownedLayout(c echo.Context) (*repository.Bus, *layout.Layout, bool, error) {
	ownerID, err := getUserID(c)
	if err != nil {
		return nil, nil, false, c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, nil, false, c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	bus, err := h.BusRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusNotFound) {
			return nil, nil, false, c.JSON(http.StatusNotFound, map[string]string{"error": "bus not found"})
		}
		return nil, nil, false, c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	l, err := h.loadLayout(c.Request().Context(), bus.ID)
	if err != nil {
		return nil, nil, false, c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load layout"})
	}
	return bus, l, true, nil
}

// paramInt parses a numeric path parameter.
func paramInt(c echo.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetLayout handles GET /v1/buses/:id/layout and returns the full grid,
// every cell of every floor, for the operator's editor.
func (h *OperatorHandler) GetLayout(c echo.Context) error {
	bus, l, ok, err := h.ownedLayout(c)
	if !ok {
		return err
	}
	return c.JSON(http.StatusOK, layoutToDTO(bus.ID, l))
}

// SaveLayout handles PUT /v1/buses/:id/layout. The body carries the
// seats-only wire format; the engine validates it in full before anything
// is written. On success all floors and seats are rewritten, the bus seat
// capacity is reconciled and a layout.saved event is published.
func (h *OperatorHandler) SaveLayout(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	bus, err := h.BusRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "bus not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	var body struct {
		Floors []layout.FloorSeats `json:"floors"` // seats-only snapshot per floor
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if len(body.Floors) > h.Engine.Settings().MaxFloors {
		return c.JSON(http.StatusConflict, map[string]string{"error": "too many floors"})
	}
	l, err := h.Engine.Hydrate(strconv.FormatUint(id, 10), body.Floors) // full validation happens here
	if err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	// Rebuild storage from the validated snapshot: drop everything, then
	// insert floors and seats fresh. The repository runs the whole rebuild
	// in one transaction, so a failure keeps the previous layout.
	floors := make([]repository.BusFloor, 0, len(l.Floors))
	var seats []repository.BusSeat
	for _, f := range l.Floors {
		floors = append(floors, repository.BusFloor{
			BusID:       id,
			FloorNumber: f.Number,
			SeatRows:    f.Rows,
			SeatCols:    f.Columns,
		})
		seats = append(seats, seatRowsFromFloor(id, f)...)
	}
	if err := h.LayoutRepo.ReplaceAll(ctx, id, floors, seats); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to store layout"})
	}
	if err := h.reconcileCapacity(ctx, id, l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update capacity"})
	}

	h.publishLayoutSaved(bus, l)
	return c.JSON(http.StatusOK, layoutToDTO(id, l))
}

// publishLayoutSaved fires the layout.saved event in the background so a
// slow or unavailable broker never delays the save response.
func (h *OperatorHandler) publishLayoutSaved(bus *repository.Bus, l *layout.Layout) {
	counts := map[string]int{}
	for class, n := range l.SeatCounts() {
		counts[string(class)] = n
	}
	ev := queue.LayoutSavedEvent{
		BusID:        bus.ID,
		BusName:      bus.Name,
		OwnerID:      bus.OwnerID,
		Floors:       len(l.Floors),
		TotalSeats:   l.TotalSeats(),
		SeatsByClass: counts,
		SavedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishLayoutSaved(ctx, ev) // errors are logged inside the publisher
	}()
}

// AddFloor handles POST /v1/buses/:id/floors and appends an empty upper
// deck, bounded by the configured floor limit.
func (h *OperatorHandler) AddFloor(c echo.Context) error {
	bus, l, ok, err := h.ownedLayout(c)
	if !ok {
		return err
	}
	l2, err := h.Engine.AddFloor(l)
	if err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}
	added := l2.Floors[len(l2.Floors)-1] // AddFloor appends past the highest number
	if err := h.FloorRepo.Create(c.Request().Context(), &repository.BusFloor{
		BusID:       bus.ID,
		FloorNumber: added.Number,
		SeatRows:    added.Rows,
		SeatCols:    added.Columns,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create floor"})
	}
	return c.JSON(http.StatusCreated, layoutToDTO(bus.ID, l2))
}

// RemoveFloor handles DELETE /v1/buses/:id/floors/:floor. Any floor may be
// removed as long as at least one remains; the others keep their numbers.
func (h *OperatorHandler) RemoveFloor(c echo.Context) error {
	bus, l, ok, err := h.ownedLayout(c)
	if !ok {
		return err
	}
	floorNo, ok := paramInt(c, "floor")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid floor"})
	}
	l2, err := h.Engine.RemoveFloor(l, floorNo)
	if err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}
	ctx := c.Request().Context()
	if err := h.LayoutRepo.DeleteFloor(ctx, bus.ID, floorNo); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete floor"})
	}
	if err := h.reconcileCapacity(ctx, bus.ID, l2); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update capacity"})
	}
	return c.JSON(http.StatusOK, layoutToDTO(bus.ID, l2))
}

// ResizeFloor handles PATCH /v1/buses/:id/floors/:floor/size. Cells in the
// overlap keep their exact state; everything outside is discarded and new
// positions start Empty.
func (h *OperatorHandler) ResizeFloor(c echo.Context) error {
	bus, l, ok, err := h.ownedLayout(c)
	if !ok {
		return err
	}
	floorNo, ok := paramInt(c, "floor")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid floor"})
	}
	var body struct {
		Rows int `json:"rows"` // new grid height
		Cols int `json:"cols"` // new grid width
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	f, found := l.Floor(floorNo)
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "floor not found"})
	}
	resized, err := h.Engine.ResizeFloor(f, body.Rows, body.Cols)
	if err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}
	l2, err := h.Engine.ReplaceFloor(l, resized)
	if err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}
	ctx := c.Request().Context()
	if err := h.persistFloor(ctx, bus.ID, resized); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to store floor"})
	}
	if err := h.reconcileCapacity(ctx, bus.ID, l2); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update capacity"})
	}
	return c.JSON(http.StatusOK, layoutToDTO(bus.ID, l2))
}

// ApplyToolCell handles POST /v1/buses/:id/floors/:floor/cells/:row/:col.
// The body names the tool: a kind, plus a seat class when placing a seat.
// Placing a seat always regenerates its number and resets attributes to the
// class defaults.
func (h *OperatorHandler) ApplyToolCell(c echo.Context) error {
	bus, l, ok, err := h.ownedLayout(c)
	if !ok {
		return err
	}
	floorNo, okF := paramInt(c, "floor")
	row, okR := paramInt(c, "row")
	col, okC := paramInt(c, "col")
	if !okF || !okR || !okC {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid floor/row/col"})
	}
	var body struct {
		Kind      string `json:"kind"`       // SEAT | EMPTY | BLOCKED | DRIVER
		SeatClass string `json:"seat_class"` // class when kind is SEAT, defaults to STANDARD
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	var tool layout.Tool
	switch layout.CellKind(body.Kind) {
	case layout.KindSeat:
		class, err := layout.ParseSeatClass(body.SeatClass)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown seat_class"})
		}
		tool = layout.PlaceSeat(class)
	case layout.KindEmpty:
		tool = layout.MakeEmpty
	case layout.KindBlocked:
		tool = layout.MakeBlocked
	case layout.KindDriver:
		tool = layout.MakeDriver
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown kind"})
	}
	f, found := l.Floor(floorNo)
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "floor not found"})
	}
	edited, err := h.Engine.ApplyTool(f, row, col, tool)
	if err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}
	l2, err := h.Engine.ReplaceFloor(l, edited)
	if err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}
	ctx := c.Request().Context()
	if err := h.persistFloor(ctx, bus.ID, edited); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to store floor"})
	}
	if err := h.reconcileCapacity(ctx, bus.ID, l2); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update capacity"})
	}
	cell, err := edited.CellAt(row, col)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to read cell"})
	}
	dto := cellDTO{Row: cell.Row, Column: cell.Column, Kind: string(cell.Kind)}
	if cell.IsSeat() {
		dto.Seat = &seatDTO{
			SeatNumber:      cell.Seat.SeatNumber,
			SeatType:        string(cell.Seat.Class),
			PriceMultiplier: cell.Seat.PriceMultiplier,
			IsAvailable:     cell.Seat.IsAvailable,
		}
	}
	return c.JSON(http.StatusOK, dto)
}

// UpdateSeatCell handles PATCH /v1/buses/:id/floors/:floor/cells/:row/:col
// and edits attributes of an existing seat. Only provided fields change;
// the cell must already hold a seat. Multipliers outside the accepted
// window are rejected outright, never clamped.
func (h *OperatorHandler) UpdateSeatCell(c echo.Context) error {
	bus, l, ok, err := h.ownedLayout(c)
	if !ok {
		return err
	}
	floorNo, okF := paramInt(c, "floor")
	row, okR := paramInt(c, "row")
	col, okC := paramInt(c, "col")
	if !okF || !okR || !okC {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid floor/row/col"})
	}
	var body struct {
		SeatNumber      *string  `json:"seat_number"`      // optional manual override
		SeatType        *string  `json:"seat_type"`        // optional class change, keeps current multiplier
		PriceMultiplier *float64 `json:"price_multiplier"` // optional, validated against the window
		IsAvailable     *bool    `json:"is_available"`     // optional sellable flag
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	patch := layout.SeatPatch{
		SeatNumber:      body.SeatNumber,
		PriceMultiplier: body.PriceMultiplier,
		IsAvailable:     body.IsAvailable,
	}
	if body.SeatType != nil {
		class := layout.SeatClass(*body.SeatType)
		patch.Class = &class // the engine validates the class name
	}
	f, found := l.Floor(floorNo)
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "floor not found"})
	}
	edited, err := h.Engine.UpdateSeat(f, row, col, patch)
	if err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}
	if _, err := h.Engine.ReplaceFloor(l, edited); err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}
	if err := h.persistFloor(c.Request().Context(), bus.ID, edited); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to store floor"})
	}
	cell, err := edited.CellAt(row, col)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to read cell"})
	}
	return c.JSON(http.StatusOK, cellDTO{
		Row: cell.Row, Column: cell.Column, Kind: string(cell.Kind),
		Seat: &seatDTO{
			SeatNumber:      cell.Seat.SeatNumber,
			SeatType:        string(cell.Seat.Class),
			PriceMultiplier: cell.Seat.PriceMultiplier,
			IsAvailable:     cell.Seat.IsAvailable,
		},
	})
}

// LayoutStats handles GET /v1/buses/:id/layout/stats and returns derived
// counts: totals, per class and per floor. Counts are always recomputed
// from the grid, never cached.
func (h *OperatorHandler) LayoutStats(c echo.Context) error {
	bus, l, ok, err := h.ownedLayout(c)
	if !ok {
		return err
	}
	perFloor := make([]map[string]any, 0, len(l.Floors))
	for _, f := range l.Floors {
		perFloor = append(perFloor, map[string]any{
			"floor":   f.Number,
			"rows":    f.Rows,
			"columns": f.Columns,
			"seats":   f.SeatCount(),
		})
	}
	byClass := map[string]int{}
	for class, n := range l.SeatCounts() {
		byClass[string(class)] = n
	}
	return c.JSON(http.StatusOK, map[string]any{
		"bus_id":      bus.ID,
		"floors":      len(l.Floors),
		"total_seats": l.TotalSeats(),
		"by_class":    byClass,
		"per_floor":   perFloor,
	})
}
