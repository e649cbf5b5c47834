package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgarcia-dev/billetera/internal/ledger/store"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

func TestSnapshotRoundTrip(t *testing.T) {
	txs := []transaction.Transaction{
		{
			ID:          1709251200000,
			Type:        transaction.TypeIncome,
			Category:    "salario",
			Description: "Paycheck",
			Amount:      100000,
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:          1709596800000,
			Type:        transaction.TypeExpense,
			Category:    "alimentacion",
			Description: "Groceries",
			Amount:      20050,
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		},
	}

	data, err := store.EncodeSnapshot(txs)
	require.NoError(t, err)

	got, err := store.DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, txs, got)
}

func TestDecodeSnapshot_DropsMalformedEntries(t *testing.T) {
	data := []byte(`[
		{"id": 1, "type": "ingreso", "category": "salario", "description": "ok", "amount": 100, "date": "2024-03-01", "timestamp": "2024-03-01T10:00:00Z"},
		{"id": 2, "type": "prestamo", "category": "salario", "description": "bad type", "amount": 100, "date": "2024-03-01", "timestamp": ""},
		{"id": 3, "type": "gasto", "category": "salud", "description": "bad amount", "amount": -5, "date": "2024-03-01", "timestamp": ""},
		{"id": 4, "type": "gasto", "category": "salud", "description": "bad date", "amount": 100, "date": "01/03/2024", "timestamp": ""},
		{"id": 0, "type": "gasto", "category": "salud", "description": "missing id", "amount": 100, "date": "2024-03-01", "timestamp": ""},
		{"id": 5, "type": "gasto", "category": "", "description": "empty category", "amount": 100, "date": "2024-03-01", "timestamp": ""}
	]`)

	got, err := store.DecodeSnapshot(data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(10000), got[0].Amount)
}

func TestDecodeSnapshot_BadTimestampKeepsEntry(t *testing.T) {
	data := []byte(`[{"id": 7, "type": "gasto", "category": "salud", "description": "x", "amount": 12.34, "date": "2024-05-20", "timestamp": "not-a-time"}]`)

	got, err := store.DecodeSnapshot(data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1234), got[0].Amount)
	assert.True(t, got[0].CreatedAt.IsZero())
}

func TestDecodeSnapshot_CorruptDocument(t *testing.T) {
	_, err := store.DecodeSnapshot([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}
