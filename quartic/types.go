// Package quartic: result container and numeric-policy constants.
package quartic

import "math"

// DefaultEps is the recommended tolerance for "is this root real?"
// style checks on well-scaled inputs, mirroring cubic.DefaultEps.
const DefaultEps = 1e-9

// Roots is the ordered quadruple of roots of a quartic equation,
// in the factor-pair order documented on Solve.
type Roots [4]complex128

// Real reports whether every root is numerically real, i.e. each
// imaginary part has magnitude at most eps.
func (r Roots) Real(eps float64) bool {
	for _, z := range r {
		if math.Abs(imag(z)) > eps {
			return false
		}
	}

	return true
}

// HasNaN reports whether any root carries a NaN component — the
// documented outcome when the s ≤ 0 degenerate path is taken.
func (r Roots) HasNaN() bool {
	for _, z := range r {
		if math.IsNaN(real(z)) || math.IsNaN(imag(z)) {
			return true
		}
	}

	return false
}
