package layout

// Settings holds the product-level knobs of the engine: default grid shape
// for fresh floors, the floor count ceiling, UI-facing grid maxima, the
// per-class price multiplier defaults and the accepted multiplier window.
// All values come from configuration; none of them are hidden magic numbers.
type Settings struct {
	DefaultRows    int
	DefaultColumns int
	MaxFloors      int
	MaxRows        int
	MaxColumns     int
	PriceDefaults  map[SeatClass]float64
	MinMultiplier  float64
	MaxMultiplier  float64
}

// DefaultSettings returns the product defaults: a 10x4 Standard grid, at
// most two floors, grids capped at 20x6 and multipliers in [0.5, 5.0].
func DefaultSettings() Settings {
	return Settings{
		DefaultRows:    10,
		DefaultColumns: 4,
		MaxFloors:      2,
		MaxRows:        20,
		MaxColumns:     6,
		PriceDefaults: map[SeatClass]float64{
			ClassStandard: 1.0,
			ClassVIP:      1.5,
			ClassSleeper:  1.2,
		},
		MinMultiplier: 0.5,
		MaxMultiplier: 5.0,
	}
}

// normalized fills zero-valued fields from DefaultSettings so a partially
// populated Settings (e.g. from sparse env config) is still usable.
func (s Settings) normalized() Settings {
	def := DefaultSettings()
	if s.DefaultRows < 1 {
		s.DefaultRows = def.DefaultRows
	}
	if s.DefaultColumns < 1 {
		s.DefaultColumns = def.DefaultColumns
	}
	if s.MaxFloors < 1 {
		s.MaxFloors = def.MaxFloors
	}
	if s.MaxRows < 1 {
		s.MaxRows = def.MaxRows
	}
	if s.MaxColumns < 1 {
		s.MaxColumns = def.MaxColumns
	}
	if s.MaxColumns > maxColumnLetters {
		s.MaxColumns = maxColumnLetters
	}
	if s.PriceDefaults == nil {
		s.PriceDefaults = def.PriceDefaults
	}
	if s.MinMultiplier <= 0 {
		s.MinMultiplier = def.MinMultiplier
	}
	if s.MaxMultiplier <= 0 {
		s.MaxMultiplier = def.MaxMultiplier
	}
	return s
}

// priceDefault resolves the configured default multiplier for a class,
// falling back to 1.0 when the class has no table entry.
func (s Settings) priceDefault(class SeatClass) float64 {
	if m, ok := s.PriceDefaults[class]; ok {
		return m
	}
	return 1.0
}

// multiplierInRange reports whether m sits inside the configured window.
func (s Settings) multiplierInRange(m float64) bool {
	return m >= s.MinMultiplier && m <= s.MaxMultiplier
}

// CheckDims validates a requested grid shape against the product maxima.
// It is exposed so handlers can reject oversized grids before touching
// persisted state.
func (s Settings) CheckDims(rows, columns int) error {
	if rows < 1 || columns < 1 {
		return ErrBadDimensions
	}
	if rows > s.MaxRows || columns > s.MaxColumns {
		return ErrBadDimensions
	}
	return nil
}
