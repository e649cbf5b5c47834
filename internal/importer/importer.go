package importer

import (
	"io"

	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// Format identifies a supported statement layout.
type Format string

const (
	FormatBankCSV Format = "banco"
)

// Importer parses a statement into transaction params. Parsed rows carry an
// empty category; the caller fills it in via learned suggestions or the
// catalog fallback buckets.
type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
