package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/rgarcia-dev/billetera/internal/encoding"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// Parser reads Spanish bank CSV exports and produces transaction params.
// The layout (movimientos vs tarjeta) is auto-detected by matching column
// headers against known profiles. The sign of the amount decides the
// transaction type: charges become expenses, credits become income.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching bank format found: expected columns for movimientos or tarjeta")
	}

	return parseRows(profile, cols, rows[headerIdx+1:])
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// dateLayouts are tried in order; Spanish exports use day-first dates,
// sometimes with two-digit years.
var dateLayouts = []string{"02/01/2006", "02-01-2006", "02/01/06"}

func parseRows(p *Profile, cols colIndex, rows [][]string) ([]transaction.CreateParams, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	var params []transaction.CreateParams

	for _, row := range rows {
		if isBlank(row) {
			continue
		}

		if dateIdx >= len(row) || descIdx >= len(row) {
			continue
		}

		date, err := parseDate(row[dateIdx])
		if err != nil {
			// Trailing summary rows ("Saldo final", totals) have no date.
			continue
		}

		cents, err := rowAmount(p, cols, row)
		if err != nil || cents == 0 {
			continue
		}

		typ := transaction.TypeIncome
		if cents < 0 {
			typ = transaction.TypeExpense
			cents = -cents
		}

		params = append(params, transaction.CreateParams{
			Type:        typ,
			Description: strings.TrimSpace(row[descIdx]),
			Amount:      cents,
			Date:        date,
		})
	}

	return params, nil
}

// rowAmount extracts the signed amount in cents according to the profile's
// amount mode. In split mode the charge column is negated.
func rowAmount(p *Profile, cols colIndex, row []string) (int64, error) {
	if p.AmountMode == amountSingle {
		idx := cols[p.AmountCol]
		if idx >= len(row) {
			return 0, fmt.Errorf("missing amount column")
		}

		return parseEuropeanAmount(row[idx])
	}

	chargeIdx, creditIdx := cols[p.ChargeCol], cols[p.CreditCol]

	if chargeIdx < len(row) && strings.TrimSpace(row[chargeIdx]) != "" {
		cents, err := parseEuropeanAmount(row[chargeIdx])
		if err != nil {
			return 0, err
		}

		if cents > 0 {
			cents = -cents
		}

		return cents, nil
	}

	if creditIdx < len(row) && strings.TrimSpace(row[creditIdx]) != "" {
		return parseEuropeanAmount(row[creditIdx])
	}

	return 0, fmt.Errorf("row has neither charge nor credit")
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
