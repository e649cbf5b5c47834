package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rgarcia-dev/billetera/internal/category"
)

func TestName(t *testing.T) {
	assert.Equal(t, "Alimentación", category.Name("alimentacion"))
	assert.Equal(t, "Salario", category.Name("salario"))

	// Unknown keys render verbatim.
	assert.Equal(t, "cripto", category.Name("cripto"))
	assert.Equal(t, "", category.Name(""))
}

func TestKeyLists(t *testing.T) {
	assert.Contains(t, category.Income(), category.DefaultIncome)
	assert.Contains(t, category.Expense(), category.DefaultExpense)

	// Returned slices are copies; mutating them must not affect the catalog.
	keys := category.Expense()
	keys[0] = "mutated"
	assert.Equal(t, "alimentacion", category.Expense()[0])
}
