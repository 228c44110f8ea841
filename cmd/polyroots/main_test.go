package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCoeffs_Valid covers plain, signed and exponent forms.
func TestParseCoeffs_Valid(t *testing.T) {
	got, err := parseCoeffs([]string{"1", "-6", "1.1e1", "-6.0"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -6, 11, -6}, got)
}

// TestParseCoeffs_Invalid reports the 1-based position of the bad
// coefficient.
func TestParseCoeffs_Invalid(t *testing.T) {
	_, err := parseCoeffs([]string{"1", "x", "3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coefficient 2")
}

// TestRootCmd_CubicRuns exercises the full command path on a known
// cubic.
func TestRootCmd_CubicRuns(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"cubic", "1", "-6", "11", "-6"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
}

// TestRootCmd_DegenerateQuarticFails: the z⁴ = 0 boundary case must
// surface as a command error so scripts see a non-zero exit.
func TestRootCmd_DegenerateQuarticFails(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"quartic", "1", "0", "0", "0", "0"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errDegenerate)
}

// TestRootCmd_WrongArity: cobra's arg validation rejects a missing
// coefficient before the solver runs.
func TestRootCmd_WrongArity(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"cubic", "1", "2", "3"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	assert.Error(t, cmd.Execute())
}
