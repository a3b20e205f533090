// Package simulator holds the compounding math behind the dashboard's
// investment and goal forms. All arithmetic is float64; values are only
// rounded to two decimals at presentation.
package simulator

import "math"

// MonthlyRate converts a nominal annual percentage to its geometric
// monthly equivalent: (1 + r/100)^(1/12) - 1.
func MonthlyRate(annualPct float64) float64 {
	return math.Pow(1+annualPct/100, 1.0/12) - 1
}

// Projection is the result of compounding a fixed monthly contribution.
type Projection struct {
	// Values holds the balance at month 0..n, month 0 being the initial
	// investment untouched. Invested is the contributions-only baseline
	// over the same months, for the chart's comparison line.
	Values   []float64 `json:"values"`
	Invested []float64 `json:"invested"`

	FinalValue     float64 `json:"final_value"`
	TotalInvested  float64 `json:"total_invested"`
	InterestEarned float64 `json:"interest_earned"`
}

// Project compounds initial at the monthly equivalent of annualPct while
// adding contribution every month, over months periods.
func Project(initial, contribution, annualPct float64, months int) Projection {
	rate := MonthlyRate(annualPct)

	values := make([]float64, 0, months+1)
	baseline := make([]float64, 0, months+1)
	current := initial
	values = append(values, current)
	baseline = append(baseline, initial)
	for i := 1; i <= months; i++ {
		current = current*(1+rate) + contribution
		values = append(values, current)
		baseline = append(baseline, initial+contribution*float64(i))
	}

	invested := initial + contribution*float64(months)
	return Projection{
		Values:         values,
		Invested:       baseline,
		FinalValue:     current,
		TotalInvested:  invested,
		InterestEarned: current - invested,
	}
}

// GoalByMonths is the months-to-target solution.
type GoalByMonths struct {
	Months     int        `json:"months"`
	Projection Projection `json:"projection"`
}

// MonthsToTarget solves how many monthly contributions reach target,
// starting from zero. Closed form n = ln(1 + FV*r/C) / ln(1 + r), rounded
// up to whole months; the final value is then recomputed by forward
// simulation, so it may overshoot the nominal target. That is expected.
func MonthsToTarget(target, contribution, annualPct float64) GoalByMonths {
	rate := MonthlyRate(annualPct)

	var n float64
	if rate > 0 {
		n = math.Log(1+target*rate/contribution) / math.Log(1+rate)
	} else {
		n = target / contribution
	}
	months := int(math.Ceil(n))

	return GoalByMonths{
		Months:     months,
		Projection: Project(0, contribution, annualPct, months),
	}
}

// GoalByContribution is the required-contribution solution.
type GoalByContribution struct {
	Contribution float64    `json:"contribution"`
	Projection   Projection `json:"projection"`
}

// RequiredContribution solves the monthly contribution that turns initial
// into target over months periods:
// C = (FV - P0*(1+r)^n) / (((1+r)^n - 1) / r), or (FV-P0)/n at zero rate.
func RequiredContribution(target, initial, annualPct float64, months int) GoalByContribution {
	rate := MonthlyRate(annualPct)
	n := float64(months)

	var contribution float64
	if rate > 0 {
		growth := math.Pow(1+rate, n)
		contribution = (target - initial*growth) / ((growth - 1) / rate)
	} else {
		contribution = (target - initial) / n
	}

	return GoalByContribution{
		Contribution: contribution,
		Projection:   Project(initial, contribution, annualPct, months),
	}
}
