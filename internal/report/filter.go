// Package report derives read-only views from a ledger snapshot: filtered
// listings, totals, monthly series, category rankings and goal progress.
// Nothing here holds state; every function is a pure view over its inputs.
package report

import (
	"slices"

	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// Filter selects transactions by category and/or type. Empty fields match
// everything.
type Filter struct {
	Category string
	Type     transaction.Type
}

// Apply returns the transactions matching the filter, sorted by date
// descending. Same-date entries keep their original relative order, so a
// ledger in insertion order stays in insertion order within a day.
func Apply(txs []transaction.Transaction, f Filter) []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		if f.Category != "" && tx.Category != f.Category {
			continue
		}

		if f.Type != "" && tx.Type != f.Type {
			continue
		}

		out = append(out, tx)
	}

	slices.SortStableFunc(out, func(a, b transaction.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return out
}
