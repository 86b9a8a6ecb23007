package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/transitdesk/bus-seat-layout/internal/handler"    // import the handlers that implement business logic
	"github.com/transitdesk/bus-seat-layout/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler. This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware. Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Group for operations that do not require an existing session.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token; refresh-access issues a new access
	// token while reusing the existing refresh token.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout does not require JWT middleware; the handler accepts either a
	// bearer token (revoke all sessions) or a refresh_token body (revoke one).
	g.POST("/logout", a.Logout)

	// Group for routes that require a valid access token. Both roles may
	// read their own identity.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("OPERATOR", "CUSTOMER"))
	auth.GET("/me", a.Me)

	// Alias so clients can call either /v1/auth/logout or /v1/logout.
	e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated browse endpoints on the provided
// Echo instance. The PublicHandler returns sanitized data for buses and
// their seat layouts. These routes do not apply any JWT or role middleware
// and are intended for guest users.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	// Expose the list of active buses.
	e.GET("/v1/buses", p.GetPublicBuses)
	// Publicly view the seat layout of a bus so guests can inspect seat
	// positions, classes and availability before booking.
	e.GET("/v1/buses/:id/layout", p.GetPublicLayout)
}
