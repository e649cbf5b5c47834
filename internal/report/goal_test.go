package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rgarcia-dev/billetera/internal/goal"
	"github.com/rgarcia-dev/billetera/internal/report"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

func TestProgress(t *testing.T) {
	ref := date(2024, 3, 20)
	txs := []transaction.Transaction{
		tx(1, transaction.TypeIncome, "salario", 100000, date(2024, 3, 1)),
		tx(2, transaction.TypeExpense, "vivienda", 60000, date(2024, 3, 5)),
		// Previous month: excluded from current-month tracking.
		tx(3, transaction.TypeExpense, "vivienda", 999999, date(2024, 2, 5)),
	}

	settings := goal.Settings{MonthlyBudget: 80000, MonthlySavings: 50000}

	got := report.Progress(txs, settings, ref)
	assert.Equal(t, int64(60000), got.CurrentExpenses)
	assert.Equal(t, int64(40000), got.CurrentSavings)
	assert.InDelta(t, 75.0, got.ExpenseProgress, 1e-9)
	assert.InDelta(t, 80.0, got.SavingsProgress, 1e-9)
	assert.False(t, got.OverBudget)
}

func TestProgress_SavingsFlooredAtZero(t *testing.T) {
	// Income 100, expenses 150: savings shows 0, not -50.
	ref := date(2024, 3, 20)
	txs := []transaction.Transaction{
		tx(1, transaction.TypeIncome, "salario", 10000, date(2024, 3, 1)),
		tx(2, transaction.TypeExpense, "salud", 15000, date(2024, 3, 5)),
	}

	got := report.Progress(txs, goal.Settings{MonthlySavings: 10000}, ref)
	assert.Equal(t, int64(0), got.CurrentSavings)
	assert.Zero(t, got.SavingsProgress)
}

func TestProgress_OverBudget(t *testing.T) {
	ref := date(2024, 3, 20)
	txs := []transaction.Transaction{
		tx(1, transaction.TypeExpense, "vivienda", 90000, date(2024, 3, 5)),
	}

	got := report.Progress(txs, goal.Settings{MonthlyBudget: 80000}, ref)
	assert.True(t, got.OverBudget)
	assert.InDelta(t, 112.5, got.ExpenseProgress, 1e-9, "progress stays unclamped")
}

func TestProgress_NoGoalsSet(t *testing.T) {
	ref := date(2024, 3, 20)
	txs := []transaction.Transaction{
		tx(1, transaction.TypeExpense, "vivienda", 90000, date(2024, 3, 5)),
	}

	// Zero targets: no division, no over-budget flag.
	got := report.Progress(txs, goal.Settings{}, ref)
	assert.Zero(t, got.ExpenseProgress)
	assert.Zero(t, got.SavingsProgress)
	assert.False(t, got.OverBudget)
}
