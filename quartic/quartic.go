package quartic

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/polyroots/cubic"
)

// Solve — closed-form quartic solver (Ferrari's method).
//
// Description:
//
//	Returns all four roots of a·z⁴ + b·z³ + c·z² + d·z + e = 0 with
//	real coefficients and a ≠ 0, as two (+root, −root) pairs — one per
//	quadratic factor of the depressed quartic.
//
// Algorithm Outline:
//  1. Normalize: a3=b/a, a2=c/a, a1=d/a, a0=e/a.
//  2. Depress with cc = a3/4:
//     b2 = a2 − 6·cc²,
//     b1 = a1 − 2·a2·cc + 8·cc³,
//     b0 = a0 − a1·cc + a2·cc² − 3·cc⁴.
//  3. One real root y of the resolvent cubic
//     z³ + b2·z² + (b2²/4 − b0)·z − b1²/8 = 0, clamped to y ≥ 0.
//     The clamp absorbs tiny negative y from floating error; Ferrari's
//     construction needs a non-negative auxiliary value.
//  4. s = y² + b2·y + b2²/4 − b0. For s > 0 the coupling term is
//     r = ±√s with the sign of b1; for s ≤ 0 the quartic cannot be
//     split into two real quadratics by this route and r = NaN, which
//     contaminates every returned root (check Roots.HasNaN).
//  5. Quadratic-factor offsets p = √(y/2) − cc, p1 = −√(y/2) − cc
//     (complex square root) and q = −y/2 − b2/2.
//  6. Roots: p ± √(q−r), then p1 ± √(q+r).
//
// Errors:
//   - None. a = 0, NaN or Inf inputs propagate through IEEE-754
//     arithmetic into the result; nothing panics.
//
// Complexity: O(1) time, zero allocations.
func Solve(a, b, c, d, e float64) Roots {
	a3, a2, a1, a0 := b/a, c/a, d/a, e/a

	cc := a3 / 4
	b2 := a2 - 6*cc*cc
	b1 := a1 - 2*a2*cc + 8*cc*cc*cc
	b0 := a0 - a1*cc + a2*cc*cc - 3*cc*cc*cc*cc

	// One real root of Ferrari's resolvent cubic.
	y := cubic.SolveOne(b2, b2*b2/4-b0, -b1*b1/8)
	y = math.Max(y, 0)

	s := y*y + b2*y + b2*b2/4 - b0
	var r float64
	if s > 0 {
		if b1 < 0 {
			r = -math.Sqrt(s)
		} else {
			r = math.Sqrt(s)
		}
	} else {
		r = math.NaN()
	}

	// Shared pieces of the two quadratic factors.
	sq := cmplx.Sqrt(complex(y/2, 0))
	p := sq - complex(cc, 0)
	p1 := -sq - complex(cc, 0)
	q := complex(-y/2-b2/2, 0)
	rc := complex(r, 0)

	z1 := p + cmplx.Sqrt(q-rc)
	z2 := p - cmplx.Sqrt(q-rc)
	z3 := p1 + cmplx.Sqrt(q+rc)
	z4 := p1 - cmplx.Sqrt(q+rc)

	return Roots{z1, z2, z3, z4}
}
