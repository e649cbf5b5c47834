package report

import (
	"cmp"
	"slices"

	"github.com/rgarcia-dev/billetera/internal/category"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// DefaultTopCategories is the truncation limit for the category breakdown.
const DefaultTopCategories = 6

// CategoryTotal is one ranked expense category with its summed amount in cents.
type CategoryTotal struct {
	Key    string
	Label  string
	Amount int64
}

// CategoryChart is the doughnut-chart payload: labels plus values in units.
type CategoryChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// TopExpenseCategories sums expense amounts per category, ranks them by
// total descending and truncates to limit. Ties are broken by category key
// ascending so the ranking is deterministic. Categories beyond the limit are
// dropped entirely rather than folded into an "other" bucket.
func TopExpenseCategories(txs []transaction.Transaction, limit int) []CategoryTotal {
	if limit <= 0 {
		limit = DefaultTopCategories
	}

	sums := make(map[string]int64)

	for _, tx := range txs {
		if tx.Type != transaction.TypeExpense {
			continue
		}

		sums[tx.Category] += tx.Amount
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for key, amount := range sums {
		totals = append(totals, CategoryTotal{
			Key:    key,
			Label:  category.Name(key),
			Amount: amount,
		})
	}

	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}

		return cmp.Compare(a.Key, b.Key)
	})

	if len(totals) > limit {
		totals = totals[:limit]
	}

	return totals
}

// TopCategoryChart assembles the chart payload for the category breakdown.
func TopCategoryChart(txs []transaction.Transaction, limit int) CategoryChart {
	totals := TopExpenseCategories(txs, limit)

	chart := CategoryChart{
		Labels: make([]string, len(totals)),
		Values: make([]float64, len(totals)),
	}

	for i, t := range totals {
		chart.Labels[i] = t.Label
		chart.Values[i] = transaction.Units(t.Amount)
	}

	return chart
}
