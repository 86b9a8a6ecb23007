// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines handlers for the public browsing API. These routes allow
// unauthenticated users to browse active buses and view their seat layouts
// without requiring authentication. Sensitive fields (owner IDs, timestamps)
// are filtered from responses.

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/transitdesk/bus-seat-layout/internal/layout"
	"github.com/transitdesk/bus-seat-layout/internal/repository"
)

// PublicHandler aggregates the repositories and engine needed for
// unauthenticated browsing. It produces sanitized responses suitable for
// public consumption.
type PublicHandler struct {
	BusRepo   *repository.BusRepo   // provides access to bus data
	FloorRepo *repository.FloorRepo // provides access to floor data
	SeatRepo  *repository.SeatRepo  // provides access to seat data
	Engine    *layout.Engine        // rebuilds grids from stored seats
}

// PublicBus represents a bus exposed via the public API. It contains only
// safe fields.
type PublicBus struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	PlateNumber  *string `json:"plate_number,omitempty"`
	SeatCapacity uint32  `json:"seat_capacity"`
}

// GetPublicBuses returns the list of active buses. Response JSON contains
// an "items" array of PublicBus.
func (h *PublicHandler) GetPublicBuses(c echo.Context) error {
	ctx := c.Request().Context()
	buses, err := h.BusRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicBus, 0, len(buses))
	for _, b := range buses {
		pb := PublicBus{ID: b.ID, Name: b.Name, SeatCapacity: b.SeatCapacity}
		if b.PlateNumber.Valid && strings.TrimSpace(b.PlateNumber.String) != "" {
			v := b.PlateNumber.String
			pb.PlateNumber = &v
		}
		out = append(out, pb)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetPublicLayout returns the seat grid of one active bus so customers can
// inspect seat positions, classes and availability before booking. The grid
// is rebuilt through the engine exactly as the operator editor sees it.
func (h *PublicHandler) GetPublicLayout(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	bus, err := h.BusRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrBusNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bus not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !bus.IsActive { // inactive buses are hidden from the public API
		return c.JSON(http.StatusNotFound, echo.Map{"error": "bus not found"})
	}
	floors, err := h.FloorRepo.GetByBus(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	seats, err := h.SeatRepo.GetByBus(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	l, err := h.Engine.Hydrate(strconv.FormatUint(id, 10), floorSeatsFromRows(floors, seats))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load layout"})
	}
	return c.JSON(http.StatusOK, layoutToDTO(id, l))
}
