package handler // handler package contains operator-specific bus handlers

import (
	"database/sql" // sql provides nullable types and error values
	"errors"       // errors package for comparing sentinels
	"net/http"     // http defines status code constants
	"strconv"      // strconv parses URL parameters to numbers
	"strings"      // strings manipulates and trims text

	"github.com/labstack/echo/v4" // echo framework supplies request context

	"github.com/transitdesk/bus-seat-layout/internal/layout"     // layout engine generates the initial grid
	"github.com/transitdesk/bus-seat-layout/internal/repository" // repository exposes database models
)

// CreateBus handles POST /v1/buses and creates a bus along with its initial
// seat layout: one floor uniformly filled with seats of the requested class.
func (h *OperatorHandler) CreateBus(c echo.Context) error {
	ownerID, err := getUserID(c) // retrieve authenticated user ID
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	var body struct { // anonymous struct to bind JSON payload
		Name        string  `json:"name"`         // required bus name
		PlateNumber *string `json:"plate_number"` // optional registration plate
		Rows        *int    `json:"rows"`         // optional grid rows, defaults from settings
		Cols        *int    `json:"cols"`         // optional grid columns, defaults from settings
		SeatClass   string  `json:"seat_class"`   // optional class for the uniform fill
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	settings := h.Engine.Settings()
	rows := settings.DefaultRows
	cols := settings.DefaultColumns
	if body.Rows != nil {
		rows = *body.Rows
	}
	if body.Cols != nil {
		cols = *body.Cols
	}
	class, err := layout.ParseSeatClass(body.SeatClass) // empty string falls back to STANDARD
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown seat_class"})
	}
	floor, err := h.Engine.UniformFloor(1, rows, cols, class) // generator applies the seat tool cell by cell
	if err != nil {
		return c.JSON(layoutErrStatus(err), map[string]string{"error": err.Error()})
	}

	var plate sql.NullString
	if body.PlateNumber != nil && strings.TrimSpace(*body.PlateNumber) != "" {
		plate = sql.NullString{String: strings.TrimSpace(*body.PlateNumber), Valid: true}
	}
	bus := &repository.Bus{
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(body.Name),
		PlateNumber:  plate,
		SeatCapacity: uint32(floor.SeatCount()),
	}
	if err := h.BusRepo.Create(c.Request().Context(), bus); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "bus with this name or plate already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create bus"})
	}
	if err := h.FloorRepo.Create(c.Request().Context(), &repository.BusFloor{
		BusID:       bus.ID,
		FloorNumber: floor.Number,
		SeatRows:    floor.Rows,
		SeatCols:    floor.Columns,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create floor"})
	}
	if err := h.SeatRepo.CreateBulk(c.Request().Context(), seatRowsFromFloor(bus.ID, floor)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create seats"})
	}
	return c.JSON(http.StatusCreated, bus) // return the created bus with created status
}

// ListBuses handles GET /v1/my/buses and lists the operator's fleet.
func (h *OperatorHandler) ListBuses(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	items, err := h.BusRepo.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// UpdateBus handles PUT/PATCH /v1/buses/:id and updates bus metadata.
// Grid changes go through the layout endpoints, not here.
func (h *OperatorHandler) UpdateBus(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64) // parse bus ID from path
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.BusRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID) // load current bus to verify ownership
	if err != nil {
		if errors.Is(err, repository.ErrBusNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "bus not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	var body struct {
		Name        *string `json:"name"`         // optional new name
		PlateNumber *string `json:"plate_number"` // optional new plate, empty string clears it
		IsActive    *bool   `json:"is_active"`    // optional active flag
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	name := cur.Name
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		name = strings.TrimSpace(*body.Name)
	}
	plate := cur.PlateNumber
	if body.PlateNumber != nil {
		s := strings.TrimSpace(*body.PlateNumber)
		if s == "" {
			plate = sql.NullString{String: "", Valid: false} // empty string clears the plate
		} else {
			plate = sql.NullString{String: s, Valid: true}
		}
	}
	active := cur.IsActive
	if body.IsActive != nil {
		active = *body.IsActive
	}
	upd := &repository.Bus{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		PlateNumber: plate,
		IsActive:    active,
	}
	if err := h.BusRepo.UpdateByIDAndOwner(c.Request().Context(), upd); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "bus not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "bus name or plate already used"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	fresh, _ := h.BusRepo.GetByID(c.Request().Context(), id) // fetch the updated bus
	return c.JSON(http.StatusOK, fresh)
}

// DeleteBus handles DELETE /v1/buses/:id and removes the bus together with
// its floors and seats.
func (h *OperatorHandler) DeleteBus(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.BusRepo.DeleteByIDAndOwner(c.Request().Context(), id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "bus not found"})
		}
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
