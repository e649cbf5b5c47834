package bank

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Importe" with value "-10,00").
	amountSingle amountMode = iota
	// amountSplit means separate charge and credit columns (e.g. "Cargo"/"Abono").
	amountSplit
)

// Profile describes the column layout of a bank CSV export. Adding support
// for another bank's layout is just adding a Profile here.
type Profile struct {
	Name       string
	DateCol    string
	DescCol    string
	AmountMode amountMode
	AmountCol  string // used when AmountMode == amountSingle
	ChargeCol  string // used when AmountMode == amountSplit
	CreditCol  string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.ChargeCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of layouts to try during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "tarjeta",
		DateCol:    "Fecha",
		DescCol:    "Concepto",
		AmountMode: amountSplit,
		ChargeCol:  "Cargo",
		CreditCol:  "Abono",
	},
	{
		Name:       "movimientos",
		DateCol:    "Fecha",
		DescCol:    "Concepto",
		AmountMode: amountSingle,
		AmountCol:  "Importe",
	},
}
