package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgarcia-dev/billetera/internal/export"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

func TestWrite(t *testing.T) {
	txs := []transaction.Transaction{
		{
			ID:          1,
			Type:        transaction.TypeIncome,
			Category:    "salario",
			Description: "Paycheck",
			Amount:      150000,
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Type:        transaction.TypeExpense,
			Category:    "alimentacion",
			Description: "Groceries; weekly",
			Amount:      8840,
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	var sb strings.Builder
	require.NoError(t, export.NewService().Write(&sb, txs))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "fecha;tipo;categoria;descripcion;importe", lines[0])
	assert.Equal(t, "2024-03-01;ingreso;Salario;Paycheck;1500.00", lines[1])
	// Description containing the separator gets quoted.
	assert.Equal(t, `2024-03-05;gasto;Alimentación;"Groceries; weekly";88.40`, lines[2])
}

func TestWrite_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, export.NewService().Write(&sb, nil))
	assert.Equal(t, "fecha;tipo;categoria;descripcion;importe\n", sb.String())
}

func TestFilename(t *testing.T) {
	got := export.NewService().Filename(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, "billetera_2024-03-15.csv", got)
}
