package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content and children
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of the parent's content extent
)

// Value is a size hint for one axis: fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that is computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value of exactly n cells. Negative counts clamp to zero.
func Fixed(n int) Value {
	return Value{Amount: float64(max(n, 0)), Unit: UnitFixed}
}

// Percent returns a Value on a 0-100 scale (50 = half the parent).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// resolve computes the cell count for a fixed or percentage value.
// available is the parent's content extent on this axis and remaining is
// the part of it not taken by the node's own fixed margins. The boolean is
// false for auto values.
func (v Value) resolve(available, remaining int) (int, bool) {
	switch v.Unit {
	case UnitFixed:
		return max(int(v.Amount), 0), true
	case UnitPercent:
		n := int(float64(available) * v.Amount / 100.0)
		n = min(n, max(remaining, 0))
		return max(n, 0), true
	default:
		return 0, false
	}
}
