package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rgarcia-dev/billetera/internal/report"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

func TestSummarize(t *testing.T) {
	// Paycheck 1000.00 income, groceries 200.00 expense.
	txs := []transaction.Transaction{
		tx(1, transaction.TypeIncome, "salario", 100000, date(2024, 3, 1)),
		tx(2, transaction.TypeExpense, "alimentacion", 20000, date(2024, 3, 5)),
	}

	got := report.Summarize(txs)
	assert.Equal(t, int64(100000), got.TotalIncome)
	assert.Equal(t, int64(20000), got.TotalExpenses)
	assert.Equal(t, int64(80000), got.Balance)
	assert.InDelta(t, 20.0, got.Ratio, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	got := report.Summarize(nil)
	assert.Zero(t, got.TotalIncome)
	assert.Zero(t, got.TotalExpenses)
	assert.Zero(t, got.Balance)
	assert.Zero(t, got.Ratio)
}

func TestSummarize_ZeroIncomeRatio(t *testing.T) {
	// Expenses with no income: ratio must be 0, never Inf or NaN.
	txs := []transaction.Transaction{
		tx(1, transaction.TypeExpense, "salud", 5000, date(2024, 3, 5)),
	}

	got := report.Summarize(txs)
	assert.Zero(t, got.Ratio)
	assert.Equal(t, int64(-5000), got.Balance)
}

func TestSummarize_RatioUnclamped(t *testing.T) {
	txs := []transaction.Transaction{
		tx(1, transaction.TypeIncome, "salario", 10000, date(2024, 3, 1)),
		tx(2, transaction.TypeExpense, "vivienda", 15000, date(2024, 3, 2)),
	}

	got := report.Summarize(txs)
	assert.InDelta(t, 150.0, got.Ratio, 1e-9)
}

func TestSummarize_BalanceIdentity(t *testing.T) {
	txs := []transaction.Transaction{
		tx(1, transaction.TypeIncome, "salario", 123456, date(2024, 1, 1)),
		tx(2, transaction.TypeIncome, "freelance", 789, date(2024, 2, 1)),
		tx(3, transaction.TypeExpense, "salud", 99999, date(2024, 3, 1)),
		tx(4, transaction.TypeExpense, "educacion", 1, date(2024, 4, 1)),
	}

	got := report.Summarize(txs)
	assert.Equal(t, got.Balance, got.TotalIncome-got.TotalExpenses)
}

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, report.SeverityHealthy, report.SeverityOf(0))
	assert.Equal(t, report.SeverityHealthy, report.SeverityOf(49.9))
	assert.Equal(t, report.SeverityWarning, report.SeverityOf(50))
	assert.Equal(t, report.SeverityWarning, report.SeverityOf(79.9))
	assert.Equal(t, report.SeverityCritical, report.SeverityOf(80))
	assert.Equal(t, report.SeverityCritical, report.SeverityOf(150))
}
