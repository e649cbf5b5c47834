package report

import (
	"time"

	"github.com/rgarcia-dev/billetera/internal/goal"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// GoalProgress compares the reference month's activity against the user's
// targets. Progress percentages are unclamped; the presentation layer caps
// them at 100 for bar widths. OverBudget flags the visual warning state.
type GoalProgress struct {
	CurrentExpenses int64
	CurrentSavings  int64
	ExpenseProgress float64
	SavingsProgress float64
	OverBudget      bool
}

// Progress computes goal tracking for the calendar month containing ref.
// Net savings below zero are floored to 0: the dashboard never shows
// negative savings.
func Progress(txs []transaction.Transaction, settings goal.Settings, ref time.Time) GoalProgress {
	year, month := ref.Year(), ref.Month()

	var income, expenses int64

	for _, tx := range txs {
		if !tx.SameMonth(year, month) {
			continue
		}

		switch tx.Type {
		case transaction.TypeIncome:
			income += tx.Amount
		case transaction.TypeExpense:
			expenses += tx.Amount
		}
	}

	savings := income - expenses
	if savings < 0 {
		savings = 0
	}

	p := GoalProgress{
		CurrentExpenses: expenses,
		CurrentSavings:  savings,
		OverBudget:      settings.MonthlyBudget > 0 && expenses > settings.MonthlyBudget,
	}

	if settings.MonthlyBudget > 0 {
		p.ExpenseProgress = float64(expenses) / float64(settings.MonthlyBudget) * 100
	}

	if settings.MonthlySavings > 0 {
		p.SavingsProgress = float64(savings) / float64(settings.MonthlySavings) * 100
	}

	return p
}
