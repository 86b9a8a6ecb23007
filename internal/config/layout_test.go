package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transitdesk/bus-seat-layout/internal/config"
	"github.com/transitdesk/bus-seat-layout/internal/layout"
)

func TestLoadLayoutSettings_Defaults(t *testing.T) {
	s := config.LoadLayoutSettings()
	assert.Equal(t, 10, s.DefaultRows)
	assert.Equal(t, 4, s.DefaultColumns)
	assert.Equal(t, 2, s.MaxFloors)
	assert.Equal(t, 1.5, s.PriceDefaults[layout.ClassVIP])
	assert.Equal(t, 0.5, s.MinMultiplier)
	assert.Equal(t, 5.0, s.MaxMultiplier)
}

func TestLoadLayoutSettings_EnvOverrides(t *testing.T) {
	t.Setenv("LAYOUT_DEFAULT_ROWS", "12")
	t.Setenv("LAYOUT_MAX_FLOORS", "3")
	t.Setenv("PRICE_MULT_VIP", "2.5")
	t.Setenv("PRICE_MULT_MAX", "4")

	s := config.LoadLayoutSettings()
	assert.Equal(t, 12, s.DefaultRows)
	assert.Equal(t, 3, s.MaxFloors)
	assert.Equal(t, 2.5, s.PriceDefaults[layout.ClassVIP])
	assert.Equal(t, 4.0, s.MaxMultiplier)
}

func TestLoadLayoutSettings_BadValuesFallBack(t *testing.T) {
	t.Setenv("LAYOUT_DEFAULT_COLS", "not-a-number")
	t.Setenv("PRICE_MULT_SLEEPER", "abc")

	s := config.LoadLayoutSettings()
	assert.Equal(t, 4, s.DefaultColumns)
	assert.Equal(t, 1.2, s.PriceDefaults[layout.ClassSleeper])
}
