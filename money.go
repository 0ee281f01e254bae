package currency

import "math"

// fractionSize number of nanos in one whole unit
const fractionSize = 1e9

// Carry folds a fractional unit count and an out-of-range nano count back into
// whole units and in-range nanos. Fractional nano remainders below the final
// floor are discarded, so results are biased slightly downward.
// Only defined for non-negative inputs; amounts are validated before they get here.
func Carry(units, nanos float64) (int64, int32) {
	nanos += math.Mod(units, 1) * fractionSize
	units = math.Floor(units) + math.Floor(nanos/fractionSize)
	nanos = math.Mod(nanos, fractionSize)
	return int64(units), int32(nanos)
}

// Scale multiplies a Money by factor and normalizes the result. The returned
// Money keeps the original currency code; callers re-denominate it themselves.
func (m Money) Scale(factor Rate) Money {
	units, nanos := Carry(float64(m.Units)*float64(factor), float64(m.Nanos)*float64(factor))
	return Money{
		CurrencyCode: m.CurrencyCode,
		Units:        units,
		Nanos:        nanos,
	}
}

// Negative reports whether either field carries a negative amount.
func (m Money) Negative() bool {
	return m.Units < 0 || m.Nanos < 0
}
