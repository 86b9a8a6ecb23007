package config

import "github.com/transitdesk/bus-seat-layout/internal/layout"

// LoadLayoutSettings builds layout.Settings from LAYOUT_* and PRICE_MULT_*
// environment variables. Every value has a working default, so a bare
// environment yields a usable editor; deployments override as needed:
//
//	LAYOUT_DEFAULT_ROWS / LAYOUT_DEFAULT_COLS: grid size of a new bus floor
//	LAYOUT_MAX_FLOORS: decks allowed per bus
//	LAYOUT_MAX_ROWS / LAYOUT_MAX_COLS: per-floor grid caps
//	PRICE_MULT_STANDARD / PRICE_MULT_VIP / PRICE_MULT_SLEEPER: class price defaults
//	PRICE_MULT_MIN / PRICE_MULT_MAX: accepted window for per-seat overrides
func LoadLayoutSettings() layout.Settings {
	def := layout.DefaultSettings()
	return layout.Settings{
		DefaultRows:    envInt("LAYOUT_DEFAULT_ROWS", def.DefaultRows),
		DefaultColumns: envInt("LAYOUT_DEFAULT_COLS", def.DefaultColumns),
		MaxFloors:      envInt("LAYOUT_MAX_FLOORS", def.MaxFloors),
		MaxRows:        envInt("LAYOUT_MAX_ROWS", def.MaxRows),
		MaxColumns:     envInt("LAYOUT_MAX_COLS", def.MaxColumns),
		PriceDefaults: map[layout.SeatClass]float64{
			layout.ClassStandard: envFloat("PRICE_MULT_STANDARD", def.PriceDefaults[layout.ClassStandard]),
			layout.ClassVIP:      envFloat("PRICE_MULT_VIP", def.PriceDefaults[layout.ClassVIP]),
			layout.ClassSleeper:  envFloat("PRICE_MULT_SLEEPER", def.PriceDefaults[layout.ClassSleeper]),
		},
		MinMultiplier: envFloat("PRICE_MULT_MIN", def.MinMultiplier),
		MaxMultiplier: envFloat("PRICE_MULT_MAX", def.MaxMultiplier),
	}
}
