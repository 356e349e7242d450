package committee

import "github.com/shopspring/decimal"

// NavIndex is one point of a normalized cumulative value series. The series
// starts at 100 and compounds one weekly return per step, so it represents
// growth without needing absolute currency figures.
type NavIndex struct {
	value decimal.Decimal
}

// navScale is the number of decimal places kept after each compounding step.
const navScale = 4

var hundred = decimal.NewFromInt(100)

// BaseIndex is the starting point of every cumulative series.
func BaseIndex() NavIndex { return NavIndex{value: hundred} }

// Index builds a NavIndex from a float, rounded to the index scale.
// It is mostly useful in tests.
func Index(v float64) NavIndex {
	return NavIndex{value: decimal.NewFromFloat(v).Round(navScale)}
}

// Compound applies one weekly return: value * (1 + r/100), rounded to the
// index scale. Rounding at every step keeps the persisted and displayed
// series identical to the computed one.
func (n NavIndex) Compound(r Percent) NavIndex {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(float64(r)).Div(hundred))
	return NavIndex{value: n.value.Mul(factor).Round(navScale)}
}

func (n NavIndex) Equal(m NavIndex) bool { return n.value.Equal(m.value) }

// AsFloat returns the index value as a float64 for charting consumers.
func (n NavIndex) AsFloat() float64 { return n.value.InexactFloat64() }

// String renders the index with its full scale, e.g. "101.1000".
func (n NavIndex) String() string { return n.value.StringFixed(navScale) }
