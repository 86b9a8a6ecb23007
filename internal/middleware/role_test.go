package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdesk/bus-seat-layout/internal/middleware"
)

// callWithRole runs a no-op handler behind RequireRole with the given role
// value preset in context, the way JWTAuth stores it.
func callWithRole(t *testing.T, role any, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	h := middleware.RequireRole(allowed...)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, h(c))
	return rec
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	rec := callWithRole(t, "OPERATOR", "OPERATOR")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_RejectsOtherRole(t *testing.T) {
	rec := callWithRole(t, "CUSTOMER", "OPERATOR")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_RejectsMissingRole(t *testing.T) {
	rec := callWithRole(t, nil, "OPERATOR", "CUSTOMER")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_RejectsNonStringRole(t *testing.T) {
	rec := callWithRole(t, 42, "OPERATOR")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
