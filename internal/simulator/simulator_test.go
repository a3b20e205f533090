package simulator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyRate(t *testing.T) {
	assert.InDelta(t, 0.00797414, MonthlyRate(10), 1e-8)
	assert.Zero(t, MonthlyRate(0))
}

func TestProjectFiveYears(t *testing.T) {
	p := Project(1000, 200, 10, 5*12)

	require.Len(t, p.Values, 61)
	assert.Equal(t, 1000.0, p.Values[0])

	for i := 1; i < len(p.Values); i++ {
		assert.GreaterOrEqual(t, p.Values[i], p.Values[i-1])
	}

	require.Len(t, p.Invested, 61)
	assert.Equal(t, 1000.0, p.Invested[0])
	assert.InDelta(t, 1000.0+200.0*60, p.Invested[60], 1e-9)

	// Positive real growth: the final value beats raw contributions.
	assert.Greater(t, p.FinalValue, 1000.0+200.0*60)
	assert.InDelta(t, 1000.0+200.0*60, p.TotalInvested, 1e-9)
	assert.InDelta(t, p.FinalValue-p.TotalInvested, p.InterestEarned, 1e-9)
	assert.Equal(t, p.Values[60], p.FinalValue)
}

func TestProjectZeroRate(t *testing.T) {
	p := Project(100, 50, 0, 12)
	assert.InDelta(t, 100+50*12, p.FinalValue, 1e-9)
	assert.InDelta(t, 0, p.InterestEarned, 1e-9)
}

func TestMonthsToTargetReachesTarget(t *testing.T) {
	goal := MonthsToTarget(50000, 500, 8)

	require.Positive(t, goal.Months)
	// Ceiling rounding means the recomputed final value may overshoot,
	// but never undershoots the target.
	assert.GreaterOrEqual(t, goal.Projection.FinalValue, 50000.0)
	assert.Len(t, goal.Projection.Values, goal.Months+1)

	// One fewer month would not have been enough.
	short := Project(0, 500, 8, goal.Months-1)
	assert.Less(t, short.FinalValue, 50000.0)
}

func TestMonthsToTargetZeroRate(t *testing.T) {
	goal := MonthsToTarget(1200, 100, 0)
	assert.Equal(t, 12, goal.Months)
	assert.InDelta(t, 1200, goal.Projection.FinalValue, 1e-9)
}

func TestRequiredContribution(t *testing.T) {
	res := RequiredContribution(50000, 5000, 8, 60)

	require.Positive(t, res.Contribution)
	// Forward-simulating the solved contribution lands on the target.
	assert.InDelta(t, 50000, res.Projection.FinalValue, 1e-6)
	assert.Len(t, res.Projection.Values, 61)
}

func TestRequiredContributionZeroRate(t *testing.T) {
	res := RequiredContribution(1300, 100, 0, 12)
	assert.InDelta(t, 100.0, res.Contribution, 1e-9)
	assert.InDelta(t, 1300, res.Projection.FinalValue, 1e-9)
}

func TestRequiredContributionAlreadyFunded(t *testing.T) {
	// Initial capital alone overshoots the goal: the solved contribution
	// goes negative rather than blowing up.
	res := RequiredContribution(1000, 2000, 10, 12)
	assert.True(t, math.Signbit(res.Contribution))
}
