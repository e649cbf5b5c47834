package transaction

import (
	"time"

	"github.com/rgarcia-dev/billetera/internal/category"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type transactionResponse struct {
	ID            int64            `json:"id"`
	Type          transaction.Type `json:"type"`
	Category      string           `json:"category"`
	CategoryLabel string           `json:"category_label"`
	Description   string           `json:"description"`
	Amount        float64          `json:"amount"`
	Date          string           `json:"date"`
	CreatedAt     time.Time        `json:"created_at"`
}

func toResponse(tx transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:            tx.ID,
		Type:          tx.Type,
		Category:      tx.Category,
		CategoryLabel: category.Name(tx.Category),
		Description:   tx.Description,
		Amount:        transaction.Units(tx.Amount),
		Date:          tx.Date.Format(time.DateOnly),
		CreatedAt:     tx.CreatedAt,
	}
}

func toResponseList(txs []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
