package bank_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgarcia-dev/billetera/internal/importer/bank"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

func TestParse_Movimientos(t *testing.T) {
	input := strings.Join([]string{
		"Exportado el 15/03/2024;;",
		"Fecha;Concepto;Importe",
		"01/03/2024;NOMINA MARZO;1.500,00",
		"05/03/2024;SUPERMERCADO CENTRO;-88,40",
		"07/03/2024;RECIBO LUZ;-45,10",
		";;",
		"Saldo final;;1.366,50",
	}, "\n")

	got, err := bank.New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, transaction.TypeIncome, got[0].Type)
	assert.Equal(t, int64(150000), got[0].Amount)
	assert.Equal(t, "NOMINA MARZO", got[0].Description)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got[0].Date)

	assert.Equal(t, transaction.TypeExpense, got[1].Type)
	assert.Equal(t, int64(8840), got[1].Amount)

	assert.Equal(t, transaction.TypeExpense, got[2].Type)
	assert.Equal(t, int64(4510), got[2].Amount)
}

func TestParse_Tarjeta(t *testing.T) {
	input := strings.Join([]string{
		"Fecha;Concepto;Cargo;Abono",
		"02/03/2024;RESTAURANTE;23,50;",
		"10/03/2024;DEVOLUCION COMPRA;;12,00",
	}, "\n")

	got, err := bank.New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Charges are expenses even without an explicit minus sign.
	assert.Equal(t, transaction.TypeExpense, got[0].Type)
	assert.Equal(t, int64(2350), got[0].Amount)

	assert.Equal(t, transaction.TypeIncome, got[1].Type)
	assert.Equal(t, int64(1200), got[1].Amount)
}

func TestParse_Latin1Encoded(t *testing.T) {
	// "Fecha;Concepto;Importe\n01/03/2024;CAFETERÍA AÑO NUEVO;-3,20\n"
	// with Í = 0xCD and Ñ = 0xD1 in Windows-1252.
	raw := []byte("Fecha;Concepto;Importe\n01/03/2024;CAFETER\xcdA A\xd1O NUEVO;-3,20\n")

	got, err := bank.New().Parse(strings.NewReader(string(raw)))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CAFETERÍA AÑO NUEVO", got[0].Description)
	assert.Equal(t, int64(320), got[0].Amount)
}

func TestParse_UnknownLayout(t *testing.T) {
	input := "Date,Payee,Amount\n2024-03-01,ACME,100\n"

	_, err := bank.New().Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParse_ImportedRowsCarryNoCategory(t *testing.T) {
	input := "Fecha;Concepto;Importe\n01/03/2024;NOMINA;1.000,00\n"

	got, err := bank.New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Category, "category assignment is the caller's job")
}
