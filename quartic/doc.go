// Package quartic solves quartic equations with real coefficients in
// closed form using Ferrari's resolvent-cubic method.
//
// 🚀 What does it solve?
//
//	Solve(a, b, c, d, e) — all four roots of
//	                       a·z⁴ + b·z³ + c·z² + d·z + e = 0
//
// ✨ How it works:
//
//  1. Depress the quartic (eliminate the z³ term by the shift a3/4).
//  2. Solve Ferrari's resolvent cubic for one real auxiliary value y
//     (via cubic.SolveOne) and clamp it to y ≥ 0.
//  3. Split the depressed quartic into two quadratic factors built
//     from y, with the sign of the coupling term r tracking the sign
//     of the depressed linear coefficient to keep the pairing stable.
//  4. Solve each quadratic through a complex square root.
//
// Root ordering is part of the contract: the two roots of the (q−r)
// quadratic first, then the two of the (q+r) quadratic, each pair as
// (+root, −root).
//
// Degenerate inputs: when floating error (or an exactly-degenerate
// quartic such as z⁴ = 0) drives the factorization scalar s to ≤ 0,
// the quartic cannot be split into two real quadratics by this route
// and all four roots come back NaN-contaminated. That is a deliberate
// signal, not a silent wrong answer — check Roots.HasNaN.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyroots/quartic"
//
//	zs := quartic.Solve(1, -10, 35, -50, 24) // → 1, 2, 3, 4
//	if zs.HasNaN() {
//	  // degenerate input, see above
//	}
//
// Performance: O(1) time, zero heap allocation per call.
package quartic
