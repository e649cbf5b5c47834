package report

import (
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// Severity classifies the expense/income ratio for display.
type Severity string

const (
	SeverityHealthy  Severity = "healthy"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Summary holds whole-ledger totals in cents. Ratio is the share of income
// consumed by spending, as a percentage. It is deliberately unclamped: the
// presentation layer caps it at 100 for progress bar widths, consumers that
// want the real figure get it.
type Summary struct {
	TotalIncome   int64
	TotalExpenses int64
	Balance       int64
	Ratio         float64
}

// Summarize computes totals over the full transaction set.
func Summarize(txs []transaction.Transaction) Summary {
	var s Summary

	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeIncome:
			s.TotalIncome += tx.Amount
		case transaction.TypeExpense:
			s.TotalExpenses += tx.Amount
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpenses

	if s.TotalIncome > 0 {
		s.Ratio = float64(s.TotalExpenses) / float64(s.TotalIncome) * 100
	}

	return s
}

// SeverityOf maps a ratio to its display classification: below 50 is
// healthy, below 80 a warning, anything from 80 up critical.
func SeverityOf(ratio float64) Severity {
	switch {
	case ratio < 50:
		return SeverityHealthy
	case ratio < 80:
		return SeverityWarning
	default:
		return SeverityCritical
	}
}
