// Command polyroots solves cubic and quartic equations from the
// command line, printing every root (real and complex).
//
// Usage:
//
//	polyroots cubic a b c d        # roots of a·z³ + b·z² + c·z + d
//	polyroots quartic a b c d e    # roots of a·z⁴ + b·z³ + c·z² + d·z + e
//	polyroots depressed a b c      # one real root of z³ + a·z² + b·z + c
//
// Degenerate inputs that the solvers report as NaN exit with a
// non-zero status so shell pipelines can detect them.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyroots/cubic"
	"github.com/katalvlaran/polyroots/quartic"
)

// errDegenerate marks NaN-contaminated root sets; see the quartic
// package documentation for when this happens.
var errDegenerate = errors.New("degenerate input: roots are NaN (cannot factor by this route)")

// parseCoeffs converts argv strings into float64 coefficients.
func parseCoeffs(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %q is not a number", i+1, s)
		}
		out[i] = v
	}

	return out, nil
}

// printRoots writes one root per line as re+im·i.
func printRoots(zs []complex128) {
	for i, z := range zs {
		fmt.Printf("z%d = %g%+gi\n", i+1, real(z), imag(z))
	}
}

func newCubicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cubic a b c d",
		Short: "All three roots of a·z³ + b·z² + c·z + d = 0",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			co, err := parseCoeffs(args)
			if err != nil {
				return err
			}
			zs := cubic.Solve(co[0], co[1], co[2], co[3])
			printRoots(zs[:])
			if zs.HasNaN() {
				return errDegenerate
			}

			return nil
		},
	}
}

func newQuarticCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quartic a b c d e",
		Short: "All four roots of a·z⁴ + b·z³ + c·z² + d·z + e = 0",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			co, err := parseCoeffs(args)
			if err != nil {
				return err
			}
			zs := quartic.Solve(co[0], co[1], co[2], co[3], co[4])
			printRoots(zs[:])
			if zs.HasNaN() {
				return errDegenerate
			}

			return nil
		},
	}
}

func newDepressedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depressed a b c",
		Short: "One real root of the monic cubic z³ + a·z² + b·z + c = 0",
		RunE: func(cmd *cobra.Command, args []string) error {
			co, err := parseCoeffs(args)
			if err != nil {
				return err
			}
			z := cubic.SolveOne(co[0], co[1], co[2])
			fmt.Printf("z = %g\n", z)
			if math.IsNaN(z) {
				return errDegenerate
			}

			return nil
		},
		Args: cobra.ExactArgs(3),
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "polyroots",
		Short:         "Closed-form cubic and quartic root solver",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newCubicCmd(), newQuarticCmd(), newDepressedCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
