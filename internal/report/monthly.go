package report

import (
	"fmt"
	"time"

	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// DefaultMonths is the trailing window shown on the dashboard chart.
const DefaultMonths = 6

// Month identifies one calendar-month bucket.
type Month struct {
	Year  int
	Month time.Month
	Label string
}

// MonthlySeries holds per-bucket totals in cents, positionally aligned with
// the months they were computed for.
type MonthlySeries struct {
	Income   []int64
	Expenses []int64
}

// ChartSeries is the payload consumed by the charting collaborator: labels
// plus income/expense values in currency units.
type ChartSeries struct {
	Labels   []string  `json:"labels"`
	Income   []float64 `json:"income"`
	Expenses []float64 `json:"expenses"`
}

// Spanish short month names, as the frontend's es-ES locale renders them.
var shortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// MonthLabel formats a bucket label like "mar 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", shortMonths[month-1], year)
}

// LastNMonths returns the n calendar months ending at (and including) the
// reference date's month, oldest first.
func LastNMonths(n int, ref time.Time) []Month {
	months := make([]Month, 0, n)

	for i := n - 1; i >= 0; i-- {
		// Normalizing to the 1st avoids end-of-month arithmetic surprises
		// (e.g. Jan 31 minus one month).
		t := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		months = append(months, Month{
			Year:  t.Year(),
			Month: t.Month(),
			Label: MonthLabel(t.Year(), t.Month()),
		})
	}

	return months
}

// MonthlyTotals buckets transactions into the given months by calendar
// year+month, summing income and expense amounts separately. Buckets with no
// matching transactions hold zero, never a gap.
func MonthlyTotals(txs []transaction.Transaction, months []Month) MonthlySeries {
	series := MonthlySeries{
		Income:   make([]int64, len(months)),
		Expenses: make([]int64, len(months)),
	}

	for i, m := range months {
		for _, tx := range txs {
			if !tx.SameMonth(m.Year, m.Month) {
				continue
			}

			switch tx.Type {
			case transaction.TypeIncome:
				series.Income[i] += tx.Amount
			case transaction.TypeExpense:
				series.Expenses[i] += tx.Amount
			}
		}
	}

	return series
}

// MonthlyChart assembles the chart payload for the trailing month window.
func MonthlyChart(txs []transaction.Transaction, months []Month) ChartSeries {
	totals := MonthlyTotals(txs, months)

	chart := ChartSeries{
		Labels:   make([]string, len(months)),
		Income:   make([]float64, len(months)),
		Expenses: make([]float64, len(months)),
	}

	for i, m := range months {
		chart.Labels[i] = m.Label
		chart.Income[i] = transaction.Units(totals.Income[i])
		chart.Expenses[i] = transaction.Units(totals.Expenses[i])
	}

	return chart
}
