package domain

import "math"

// Unit is a real value in [0.0, 1.0].
// Values are clamped (ClampUnit) or checked (NewUnit) at construction,
// so code holding a Unit may assume it is in range.
type Unit float64

// NewUnit returns v as a Unit, rejecting NaN and values outside [0.0, 1.0].
func NewUnit(v float64) (Unit, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		e := NewError(KindValidation, ErrOutOfRange, "value %v out of range [0, 1]", v)
		e.Suggestion = "use a number between 0.0 and 1.0"
		return 0, e
	}
	return Unit(v), nil
}

// ClampUnit returns v limited to [0.0, 1.0]. NaN becomes 0.
func ClampUnit(v float64) Unit {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return Unit(v)
	}
}

// InUnitRange reports whether v lies in [0.0, 1.0].
func InUnitRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// Float64 returns the underlying value.
func (u Unit) Float64() float64 {
	return float64(u)
}

// UnitPtr is a convenience for optional Unit fields.
func UnitPtr(v float64) *Unit {
	u := ClampUnit(v)
	return &u
}
