// Package report derives the dashboard views from raw record sets.
// Every function is pure and returns an empty result for empty input;
// the dashboard recomputes them in full on each refresh.
package report

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
)

// Group is one aggregation bucket with its summed amount.
type Group struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// KeyFunc extracts the grouping key of a record.
type KeyFunc func(entity.Record) string

func ByCategory(r entity.Record) string   { return r.Category }
func ByClassifier(r entity.Record) string { return r.Classifier }

// SumBy groups records by key and sums amounts per group. Groups come out
// in first-encountered order, which keeps TopN ties stable.
func SumBy(records []entity.Record, key KeyFunc) []Group {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, r := range records {
		k := key(r)
		if _, ok := totals[k]; !ok {
			order = append(order, k)
		}
		totals[k] = totals[k].Add(r.Amount)
	}

	groups := make([]Group, 0, len(order))
	for _, k := range order {
		groups = append(groups, Group{Key: k, Total: totals[k]})
	}
	return groups
}

// SumByMonth groups by the YYYY-MM truncation of the transaction date,
// ordered by month key. Natural string order is chronological here.
func SumByMonth(records []entity.Record) []Group {
	groups := SumBy(records, func(r entity.Record) string {
		return r.Date.Format("2006-01")
	})
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// SumByYear groups by calendar year, ordered by year.
func SumByYear(records []entity.Record) []Group {
	groups := SumBy(records, func(r entity.Record) string {
		return strconv.Itoa(r.Date.Year())
	})
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// TopN returns the n largest groups by summed amount, descending. The
// sort is stable, so ties keep first-encountered order.
func TopN(records []entity.Record, key KeyFunc, n int) []Group {
	groups := SumBy(records, key)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})
	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// RatioPoint is one month of the income-to-expense ratio series.
type RatioPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Ratio   float64         `json:"ratio"`
}

// RatioSeries outer-joins two monthly series on the month key, missing
// values as zero. A month with zero expense gets ratio 0, not infinity.
func RatioSeries(incomeByMonth, expenseByMonth []Group) []RatioPoint {
	income := make(map[string]decimal.Decimal, len(incomeByMonth))
	expense := make(map[string]decimal.Decimal, len(expenseByMonth))
	months := make([]string, 0)

	for _, g := range incomeByMonth {
		income[g.Key] = g.Total
		months = append(months, g.Key)
	}
	for _, g := range expenseByMonth {
		expense[g.Key] = g.Total
		if _, ok := income[g.Key]; !ok {
			months = append(months, g.Key)
		}
	}
	sort.Strings(months)

	points := make([]RatioPoint, 0, len(months))
	for _, m := range months {
		p := RatioPoint{Month: m, Income: income[m], Expense: expense[m]}
		if p.Expense.IsPositive() {
			p.Ratio = p.Income.Div(p.Expense).InexactFloat64()
		}
		points = append(points, p)
	}
	return points
}

// Summary is the dashboard's headline card set.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`

	// SpentPercent is expenses as a percentage of income, 0 when there
	// is no income.
	SpentPercent float64 `json:"spent_percent"`
}

func Summarize(incomes, expenses []entity.Record) Summary {
	s := Summary{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
	for _, r := range incomes {
		s.TotalIncome = s.TotalIncome.Add(r.Amount)
	}
	for _, r := range expenses {
		s.TotalExpense = s.TotalExpense.Add(r.Amount)
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	if s.TotalIncome.IsPositive() {
		s.SpentPercent = s.TotalExpense.Div(s.TotalIncome).InexactFloat64() * 100
	}
	return s
}
