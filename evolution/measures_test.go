package evolution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evogrid/evolution"
)

// annualGrid builds the unit annual grid used across measure tests:
// rate times [0 1 2 3], default evolution times [0 1 2].
func annualGrid(t *testing.T) *evolution.Description {
	t.Helper()
	d, err := evolution.New([]float64{0, 1, 2, 3})
	require.NoError(t, err, "annual grid must construct")

	return d
}

// TestTerminalMeasure verifies the constant terminal-bond assignment.
func TestTerminalMeasure(t *testing.T) {
	d := annualGrid(t)

	assert.Equal(t, []int{3, 3, 3}, evolution.TerminalMeasure(d),
		"terminal measure pins every step to the last bond")
}

// TestMoneyMarketMeasure verifies the discretely rolled assignment on the
// annual grid: each step uses the first bond still alive.
func TestMoneyMarketMeasure(t *testing.T) {
	d := annualGrid(t)

	assert.Equal(t, []int{0, 1, 2}, evolution.MoneyMarketMeasure(d),
		"money-market measure rolls into the shortest living bond")
}

// TestMoneyMarketMeasure_StepsInsideSpans checks the roll when evolution
// times fall strictly between rate times.
func TestMoneyMarketMeasure_StepsInsideSpans(t *testing.T) {
	d, err := evolution.New([]float64{0, 1, 2, 3},
		evolution.WithEvolutionTimes([]float64{0.5, 2.5}))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, evolution.MoneyMarketMeasure(d),
		"mid-span steps roll into the next maturing bond")
}

// TestMoneyMarketMeasure_BondMaturingAtStep checks that a bond maturing
// exactly at the evolution time still serves as that step's numeraire.
func TestMoneyMarketMeasure_BondMaturingAtStep(t *testing.T) {
	d, err := evolution.New([]float64{0, 1, 2, 3},
		evolution.WithEvolutionTimes([]float64{1, 2}))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, evolution.MoneyMarketMeasure(d),
		"maturity exactly at the step keeps the bond usable")
}

// TestMoneyMarketPlusMeasure covers the offset ladder from plain money-market
// up to the terminal degeneration, plus both out-of-range sides.
func TestMoneyMarketPlusMeasure(t *testing.T) {
	d := annualGrid(t)

	cases := []struct {
		offset int
		want   []int
	}{
		{0, []int{0, 1, 2}},
		{1, []int{1, 2, 3}},
		{2, []int{2, 3, 3}},
		{3, []int{3, 3, 3}},
	}
	for _, tc := range cases {
		got, err := evolution.MoneyMarketPlusMeasure(d, tc.offset)
		require.NoError(t, err, "offset %d is within range", tc.offset)
		assert.Equal(t, tc.want, got, "offset %d assignment", tc.offset)
	}

	_, err := evolution.MoneyMarketPlusMeasure(d, 5)
	assert.ErrorIs(t, err, evolution.ErrOffsetOutOfRange, "offset past the rate count must error")
	_, err = evolution.MoneyMarketPlusMeasure(d, -1)
	assert.ErrorIs(t, err, evolution.ErrOffsetOutOfRange, "negative offset must error")
}

// TestMoneyMarketPlusMeasure_MaxOffsetIsTerminal pins the degeneration: the
// largest admissible offset reproduces the terminal measure.
func TestMoneyMarketPlusMeasure_MaxOffsetIsTerminal(t *testing.T) {
	d, err := evolution.New([]float64{0, 0.25, 0.75, 1.25, 2})
	require.NoError(t, err)

	got, err := evolution.MoneyMarketPlusMeasure(d, d.NumberOfRates())
	require.NoError(t, err)
	assert.Equal(t, evolution.TerminalMeasure(d), got,
		"offset n clamps every numeraire at the terminal bond")
	assert.True(t, evolution.IsInTerminalMeasure(d, got))
}

// TestIsInTerminalMeasure covers the positive case, a single early roll, and
// the empty assignment.
func TestIsInTerminalMeasure(t *testing.T) {
	d := annualGrid(t)

	assert.True(t, evolution.IsInTerminalMeasure(d, evolution.TerminalMeasure(d)))
	assert.False(t, evolution.IsInTerminalMeasure(d, []int{0, 3, 3}),
		"one non-terminal entry leaves the terminal measure")
	assert.False(t, evolution.IsInTerminalMeasure(d, nil),
		"empty assignment is not in the terminal measure")
}

// TestIsInMoneyMarketMeasure verifies exact-match classification at offset 0.
func TestIsInMoneyMarketMeasure(t *testing.T) {
	d := annualGrid(t)

	assert.True(t, evolution.IsInMoneyMarketMeasure(d, []int{0, 1, 2}))
	assert.False(t, evolution.IsInMoneyMarketMeasure(d, []int{0, 1, 3}),
		"a single late roll is no longer plain money-market")
	assert.False(t, evolution.IsInMoneyMarketMeasure(d, []int{0, 1}),
		"short assignment cannot match")
}

// TestIsInMoneyMarketPlusMeasure verifies offset validation precedence and
// element-wise comparison.
func TestIsInMoneyMarketPlusMeasure(t *testing.T) {
	d := annualGrid(t)

	ok, err := evolution.IsInMoneyMarketPlusMeasure(d, []int{1, 2, 3}, 1)
	require.NoError(t, err)
	assert.True(t, ok, "offset-1 roll matches its own builder")

	ok, err = evolution.IsInMoneyMarketPlusMeasure(d, []int{1, 2, 2}, 1)
	require.NoError(t, err)
	assert.False(t, ok, "mismatching entry must classify as false")

	ok, err = evolution.IsInMoneyMarketPlusMeasure(d, []int{1, 2}, 1)
	require.NoError(t, err)
	assert.False(t, ok, "length mismatch classifies as false, not as an error")

	ok, err = evolution.IsInMoneyMarketPlusMeasure(d, []int{1, 2, 3}, 9)
	assert.ErrorIs(t, err, evolution.ErrOffsetOutOfRange,
		"offset validation precedes any comparison")
	assert.False(t, ok)
}

// TestMeasures_SingleStepGrid exercises the degenerate one-step grid.
func TestMeasures_SingleStepGrid(t *testing.T) {
	d, err := evolution.New([]float64{0.5, 1})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, evolution.TerminalMeasure(d))
	assert.Equal(t, []int{0}, evolution.MoneyMarketMeasure(d),
		"the only bond alive at time 0.5 is bond 0")
	assert.True(t, evolution.IsInMoneyMarketMeasure(d, []int{0}))
}
