package coinwatch

import (
	"fmt"
	"math"
)

// Percent is a percentage expressed as a float64 (7.14 means 7.14%).
//
// Percentages are deliberately not exact: they are ratios of monetary
// values, and a zero denominator must yield a well-defined "undefined"
// marker (±Inf or NaN) rather than an error or a panic.
type Percent float64

// Defined reports whether the percentage carries a usable value. An
// undefined percentage comes from a division by a zero cost basis or a
// zero price total.
func (p Percent) Defined() bool {
	f := float64(p)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	if !p.Defined() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if !p.Defined() {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
