// Package cubic solves cubic equations with real coefficients in
// closed form, returning all roots (real and complex) without any
// iterative root-finding.
//
// 🚀 What does it solve?
//
//	Solve(a, b, c, d)  — all three roots of  a·z³ + b·z² + c·z + d = 0
//	SolveOne(a, b, c)  — one real root of the monic cubic
//	                     z³ + a·z² + b·z + c = 0
//
// ✨ How it works:
//
//	The cubic is normalized to monic form and its shifted discriminant
//	rq = r² + q³ selects one of two formulas:
//	  • rq > 0 — one real root, one conjugate pair → Cardano-style
//	    algebraic formula (the Numerical Recipes variant)
//	  • rq ≤ 0 — three real roots → Viète's trigonometric formula,
//	    which avoids the catastrophic cancellation Cardano's radicals
//	    suffer in this regime
//	Both entry points share a single kernel, so the branch selection
//	can never drift between them.
//
// Root ordering is part of the contract:
//   - Cardano branch: the real root first, then the conjugate pair as
//     (x+iy, x−iy).
//   - Viète branch: the three real roots in the derivation order
//     cos(θ/3), cos(θ/3−2π/3), cos(θ/3+2π/3).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyroots/cubic"
//
//	zs := cubic.Solve(1, -6, 11, -6) // → 3, 2, 1
//	if zs.Real(cubic.DefaultEps) {
//	  // all three roots are numerically real
//	}
//
// Numeric contract: pure IEEE-754 arithmetic, no panics, no errors.
// NaN/Inf inputs (or a zero leading coefficient) propagate through to
// NaN/Inf outputs. See TestSolve_* for the verified properties.
//
// Performance: O(1) time, zero heap allocation per call.
package cubic
