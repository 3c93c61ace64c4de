package optim

import "math"

// RowSettings carries the backend-facing parameters of a row.
type RowSettings struct {
	// Lower and Upper bound the row expression; ±Inf leaves a side open.
	Lower float64
	Upper float64

	// Extra holds options only a particular backend understands, keyed
	// by the backend's option name. Unknown keys are the backend's to
	// reject or ignore.
	Extra map[string]any
}

// DefaultRowSettings returns settings with both sides open.
func DefaultRowSettings() RowSettings {
	return RowSettings{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// A RowOption adjusts the settings passed to the backend's row factory.
type RowOption func(*RowSettings)

// WithLower sets the lower bound of the row.
func WithLower(v float64) RowOption {
	return func(s *RowSettings) { s.Lower = v }
}

// WithUpper sets the upper bound of the row.
func WithUpper(v float64) RowOption {
	return func(s *RowSettings) { s.Upper = v }
}

// WithBounds sets both bounds of the row.
func WithBounds(lower, upper float64) RowOption {
	return func(s *RowSettings) { s.Lower, s.Upper = lower, upper }
}

// WithEqual pins the row to an equality with the given right-hand side.
func WithEqual(rhs float64) RowOption {
	return func(s *RowSettings) { s.Lower, s.Upper = rhs, rhs }
}

// WithExtra forwards a backend-specific option.
func WithExtra(name string, value any) RowOption {
	return func(s *RowSettings) {
		if s.Extra == nil {
			s.Extra = make(map[string]any)
		}
		s.Extra[name] = value
	}
}
