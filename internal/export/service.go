// Package export renders ledger contents as a downloadable CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rgarcia-dev/billetera/internal/category"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Write streams the transactions as semicolon-separated CSV. Amounts are in
// currency units with two decimals; category keys are resolved to display
// names so the file is readable in a spreadsheet.
func (s *Service) Write(w io.Writer, txs []transaction.Transaction) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write([]string{"fecha", "tipo", "categoria", "descripcion", "importe"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		record := []string{
			tx.Date.Format(time.DateOnly),
			string(tx.Type),
			category.Name(tx.Category),
			tx.Description,
			strconv.FormatFloat(transaction.Units(tx.Amount), 'f', 2, 64),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing transaction %d: %w", tx.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// Filename builds a dated attachment name like "billetera_2024-03-15.csv".
func (s *Service) Filename(now time.Time) string {
	return fmt.Sprintf("billetera_%s.csv", now.Format(time.DateOnly))
}
