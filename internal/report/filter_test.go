package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgarcia-dev/billetera/internal/report"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(id int64, typ transaction.Type, cat string, cents int64, d time.Time) transaction.Transaction {
	return transaction.Transaction{
		ID:          id,
		Type:        typ,
		Category:    cat,
		Description: "tx",
		Amount:      cents,
		Date:        d,
	}
}

func TestApply_NoFilterIsIdentitySet(t *testing.T) {
	txs := []transaction.Transaction{
		tx(1, transaction.TypeIncome, "salario", 100, date(2024, 3, 1)),
		tx(2, transaction.TypeExpense, "salud", 200, date(2024, 3, 10)),
		tx(3, transaction.TypeExpense, "vivienda", 300, date(2024, 2, 20)),
	}

	got := report.Apply(txs, report.Filter{})
	require.Len(t, got, 3)

	// Sorted by date descending.
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)
}

func TestApply_CategoryAndTypeFilters(t *testing.T) {
	txs := []transaction.Transaction{
		tx(1, transaction.TypeIncome, "salario", 100, date(2024, 3, 1)),
		tx(2, transaction.TypeExpense, "salud", 200, date(2024, 3, 10)),
		tx(3, transaction.TypeExpense, "salud", 300, date(2024, 3, 20)),
		tx(4, transaction.TypeExpense, "vivienda", 400, date(2024, 3, 25)),
	}

	byCategory := report.Apply(txs, report.Filter{Category: "salud"})
	require.Len(t, byCategory, 2)
	assert.Equal(t, int64(3), byCategory[0].ID)

	byType := report.Apply(txs, report.Filter{Type: transaction.TypeExpense})
	assert.Len(t, byType, 3)

	both := report.Apply(txs, report.Filter{Category: "salud", Type: transaction.TypeExpense})
	assert.Len(t, both, 2)

	none := report.Apply(txs, report.Filter{Category: "educacion"})
	assert.Empty(t, none)
}

func TestApply_StableTieBreak(t *testing.T) {
	// Three entries on the same date must keep insertion order.
	d := date(2024, 3, 15)
	txs := []transaction.Transaction{
		tx(10, transaction.TypeExpense, "salud", 100, d),
		tx(11, transaction.TypeExpense, "salud", 200, d),
		tx(12, transaction.TypeExpense, "salud", 300, d),
	}

	got := report.Apply(txs, report.Filter{})
	require.Len(t, got, 3)
	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, int64(11), got[1].ID)
	assert.Equal(t, int64(12), got[2].ID)
}

func TestApply_Idempotent(t *testing.T) {
	txs := []transaction.Transaction{
		tx(1, transaction.TypeExpense, "salud", 100, date(2024, 3, 10)),
		tx(2, transaction.TypeExpense, "salud", 200, date(2024, 3, 10)),
		tx(3, transaction.TypeIncome, "salario", 300, date(2024, 3, 1)),
	}

	f := report.Filter{Type: transaction.TypeExpense}

	once := report.Apply(txs, f)
	twice := report.Apply(once, f)
	assert.Equal(t, once, twice)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	txs := []transaction.Transaction{
		tx(1, transaction.TypeExpense, "salud", 100, date(2024, 3, 20)),
		tx(2, transaction.TypeExpense, "salud", 200, date(2024, 3, 10)),
	}

	_ = report.Apply(txs, report.Filter{})
	assert.Equal(t, int64(1), txs[0].ID)
	assert.Equal(t, int64(2), txs[1].ID)
}
