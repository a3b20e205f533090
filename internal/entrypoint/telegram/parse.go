package telegram

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "02/01/2006"

// Positive number with at most two decimal digits, after the comma
// separator has been normalized to a period.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

var (
	errAmountFormat      = errors.New("amount does not match the expected format")
	errAmountNotPositive = errors.New("amount is not greater than zero")
)

func parseAmount(text string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(strings.ReplaceAll(text, ",", "."))
	if !amountPattern.MatchString(normalized) {
		return decimal.Zero, errAmountFormat
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, errAmountFormat
	}
	if !amount.IsPositive() {
		return decimal.Zero, errAmountNotPositive
	}
	return amount, nil
}

// parseDate parses DD/MM/AAAA in the given location, so the result
// compares cleanly against a today() built from the same clock. The
// layout rejects days that do not exist in the month, which covers the
// leap-year cases.
func parseDate(text string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(text), loc)
}

// today truncates now to its calendar date.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

var monthNames = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func monthKeyboard() [][]string {
	rows := make([][]string, 0, len(monthNames))
	for _, name := range monthNames {
		rows = append(rows, []string{name})
	}
	return rows
}

func monthNumber(name string) (time.Month, bool) {
	for i, n := range monthNames {
		if n == strings.TrimSpace(name) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// monthBounds returns the first and last calendar day of the month.
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}
