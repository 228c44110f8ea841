// Package cubic: result container and numeric-policy constants.
package cubic

import "math"

// DefaultEps is the recommended tolerance for "is this root real?"
// style checks on well-scaled inputs. It is a reporting tolerance
// only; the solver itself never rounds its outputs.
const DefaultEps = 1e-9

// twoPiOver3 is the 2π/3 phase separation between the three real
// roots in Viète's trigonometric formula.
const twoPiOver3 = 2 * math.Pi / 3

// sqrt3 appears in the imaginary part of the Cardano-branch
// conjugate pair, (√3/2)·(aa + q/aa).
var sqrt3 = math.Sqrt(3)

// Roots is the ordered triple of roots of a cubic equation. The order
// follows the derivation (see the package documentation), not the
// magnitude.
type Roots [3]complex128

// Real reports whether every root is numerically real, i.e. each
// imaginary part has magnitude at most eps. The Viète branch and the
// real slot of the Cardano branch produce exactly zero imaginary
// parts, so eps only matters for borderline Cardano pairs.
func (r Roots) Real(eps float64) bool {
	for _, z := range r {
		if math.Abs(imag(z)) > eps {
			return false
		}
	}

	return true
}

// HasNaN reports whether any root carries a NaN component. NaN output
// is the documented signal for degenerate inputs under the package's
// propagate-IEEE-754 policy.
func (r Roots) HasNaN() bool {
	for _, z := range r {
		if math.IsNaN(real(z)) || math.IsNaN(imag(z)) {
			return true
		}
	}

	return false
}
