package cubic

import "math"

// Solve — closed-form cubic solver.
//
// Description:
//
//	Returns all three roots of a·z³ + b·z² + c·z + d = 0 with real
//	coefficients and a ≠ 0. One root is always real; the other two are
//	either both real or a complex-conjugate pair.
//
// Algorithm Outline:
//  1. Normalize to monic form: a2=b/a, a1=c/a, a0=d/a.
//  2. Compute q = a1/3 − a2²/9, r = (a1·a2 − 3·a0)/6 − a2³/27 and the
//     branch discriminant rq = r² + q³. The exact evaluation order
//     matters: it fixes which branch is taken when rq ≈ 0.
//  3. rq > 0 — Cardano branch: aa = ∛(|r| + √rq), t = aa − q/aa for
//     r ≥ 0 (negated otherwise); the real root is t − a2/3 and the
//     conjugate pair is −t/2 − a2/3 ± i·(√3/2)(aa + q/aa).
//  4. rq ≤ 0 — Viète branch: θ = acos(r/(−q)^{3/2}) (0 when q = 0),
//     roots 2√(−q)·cos(θ/3 + k·2π/3) − a2/3 for k ∈ {0, −1, +1}.
//
// Root order (observable contract):
//   - Cardano: (real, x+iy, x−iy).
//   - Viète:   derivation order k = 0, −1, +1; all imaginary parts
//     exactly zero.
//
// Errors:
//   - None. a = 0, NaN or Inf inputs propagate through IEEE-754
//     arithmetic into the result; nothing panics.
//
// Complexity: O(1) time, zero allocations.
func Solve(a, b, c, d float64) Roots {
	z1, z2, z3 := depressedRoots(b/a, c/a, d/a)

	return Roots{z1, z2, z3}
}

// SolveOne returns one real root of the monic cubic
// z³ + a·z² + b·z + c = 0.
//
// It shares the Solve kernel, so the returned value is identical to
// real(Solve(1, a, b, c)[0]). In the Cardano regime it is the unique
// real root; in the Viète regime it is the k=0 root, the largest of
// the three. SolveOne exists as a public entry point because Ferrari's
// quartic method needs exactly one real resolvent root and nothing
// else — see the quartic package.
//
// Same numeric contract as Solve: never panics, NaN/Inf propagate.
func SolveOne(a, b, c float64) float64 {
	z1, _, _ := depressedRoots(a, b, c)

	return real(z1)
}

// depressedRoots is the shared Cardano/Viète kernel. It takes the
// monic coefficients (z³ + a2·z² + a1·z + a0) and returns the three
// roots in contract order. The un-depression shift by a2/3 is folded
// into each root rather than applied to the coefficients up front.
func depressedRoots(a2, a1, a0 float64) (z1, z2, z3 complex128) {
	q := a1/3 - a2*a2/9
	r := (a1*a2-3*a0)/6 - a2*a2*a2/27
	rq := r*r + q*q*q

	if rq > 0 {
		// One real root: Cardano, in the cancellation-free form from
		// Numerical Recipes.
		aa := math.Cbrt(math.Abs(r) + math.Sqrt(rq))
		var t float64
		if r >= 0 {
			t = aa - q/aa
		} else {
			t = q/aa - aa
		}
		z1 = complex(t-a2/3, 0)

		x := -t/2 - a2/3
		y := sqrt3 / 2 * (aa + q/aa)
		z2 = complex(x, y)
		z3 = complex(x, -y)

		return z1, z2, z3
	}

	// Three real roots: Viète's trigonometric form. rq ≤ 0 forces
	// q ≤ 0 in exact arithmetic, but q³ can underflow to zero while q
	// itself stays positive, which would poison both √(−q) and the
	// acos argument. Clamp q to the boundary instead of emitting NaN.
	if q > 0 {
		q = 0
	}
	var theta float64
	if q < 0 {
		theta = math.Acos(r / math.Pow(-q, 1.5))
	}

	m := 2 * math.Sqrt(-q)
	n := a2 / 3

	phi1 := theta / 3
	phi2 := phi1 - twoPiOver3
	phi3 := phi1 + twoPiOver3
	z1 = complex(m*math.Cos(phi1)-n, 0)
	z2 = complex(m*math.Cos(phi2)-n, 0)
	z3 = complex(m*math.Cos(phi3)-n, 0)

	return z1, z2, z3
}
