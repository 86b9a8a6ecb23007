package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/transitdesk/bus-seat-layout/internal/handler"    // operator handlers
	"github.com/transitdesk/bus-seat-layout/internal/middleware" // JWT + role middlewares
)

// RegisterOperator registers OPERATOR-scoped endpoints under /v1.
// All routes require a valid JWT and OPERATOR role.
func RegisterOperator(e *echo.Echo, o *handler.OperatorHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OPERATOR"),
	)

	// ---- Buses ----
	g.POST("/buses", o.CreateBus)
	// NOTE: GET /v1/buses lists active buses via the public browse API. The
	// operator's own fleet, active or not, lives under /v1/my to avoid a
	// route conflict with the public handler.
	g.GET("/my/buses", o.ListBuses)
	g.PUT("/buses/:id", o.UpdateBus)
	g.PATCH("/buses/:id", o.UpdateBus) // allow partial updates via PATCH as well
	g.DELETE("/buses/:id", o.DeleteBus)

	// ---- Layout ----
	// NOTE: GET /v1/buses/:id/layout is served by the public API. The
	// operator editor reads the same grid through /v1/my so both can exist.
	g.GET("/my/buses/:id/layout", o.GetLayout)
	g.PUT("/buses/:id/layout", o.SaveLayout)
	g.GET("/buses/:id/layout/stats", o.LayoutStats)

	// ---- Floors ----
	g.POST("/buses/:id/floors", o.AddFloor)
	g.DELETE("/buses/:id/floors/:floor", o.RemoveFloor)
	g.PATCH("/buses/:id/floors/:floor/size", o.ResizeFloor)

	// ---- Cells ----
	g.POST("/buses/:id/floors/:floor/cells/:row/:col", o.ApplyToolCell)   // apply a tool to one cell
	g.PATCH("/buses/:id/floors/:floor/cells/:row/:col", o.UpdateSeatCell) // edit attributes of an existing seat
}
