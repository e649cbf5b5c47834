// Package category holds the static catalog of transaction categories.
//
// Category keys are stable identifiers used in persistence and filtering;
// display names are only for presentation. Unknown keys are shown verbatim
// so old snapshots never break rendering.
package category

// names maps category keys to their display names.
var names = map[string]string{
	"salario":         "Salario",
	"freelance":       "Freelance",
	"inversiones":     "Inversiones",
	"otros_ingresos":  "Otros ingresos",
	"alimentacion":    "Alimentación",
	"transporte":      "Transporte",
	"vivienda":        "Vivienda",
	"entretenimiento": "Entretenimiento",
	"salud":           "Salud",
	"educacion":       "Educación",
	"otros_gastos":    "Otros gastos",
}

// incomeKeys and expenseKeys list the catalog in form display order.
var (
	incomeKeys  = []string{"salario", "freelance", "inversiones", "otros_ingresos"}
	expenseKeys = []string{"alimentacion", "transporte", "vivienda", "entretenimiento", "salud", "educacion", "otros_gastos"}
)

// Fallback buckets for imported rows that match no learned mapping.
const (
	DefaultIncome  = "otros_ingresos"
	DefaultExpense = "otros_gastos"
)

// Name returns the display name for a category key. Unknown keys are
// returned as-is.
func Name(key string) string {
	if name, ok := names[key]; ok {
		return name
	}

	return key
}

// Income returns the income category keys in display order.
func Income() []string {
	return append([]string(nil), incomeKeys...)
}

// Expense returns the expense category keys in display order.
func Expense() []string {
	return append([]string(nil), expenseKeys...)
}
