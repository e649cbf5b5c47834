package importer

import (
	"fmt"
	"io"

	"github.com/rgarcia-dev/billetera/internal/importer/bank"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type Service struct {
	bankImporter Importer
}

func NewService() *Service {
	return &Service{
		bankImporter: bank.New(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]transaction.CreateParams, error) {
	var imp Importer

	switch format {
	case FormatBankCSV:
		imp = s.bankImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return imp.Parse(r)
}
