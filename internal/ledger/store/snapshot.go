package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// snapshotEntry is the persisted form of a transaction. Amounts are stored
// in currency units (a JSON number), dates as YYYY-MM-DD and the creation
// timestamp as ISO-8601. The format is shared with the browser frontend and
// must not change shape.
type snapshotEntry struct {
	ID          int64            `json:"id"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Amount      float64          `json:"amount"`
	Date        string           `json:"date"`
	Timestamp   string           `json:"timestamp"`
}

// EncodeSnapshot serializes the full ledger contents to the wire format.
func EncodeSnapshot(txs []transaction.Transaction) ([]byte, error) {
	entries := make([]snapshotEntry, len(txs))
	for i, tx := range txs {
		entries[i] = snapshotEntry{
			ID:          tx.ID,
			Type:        tx.Type,
			Category:    tx.Category,
			Description: tx.Description,
			Amount:      transaction.Units(tx.Amount),
			Date:        tx.Date.Format(time.DateOnly),
			Timestamp:   tx.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	return data, nil
}

// DecodeSnapshot parses a persisted snapshot. Malformed entries are dropped
// with a warning rather than failing the whole load; a corrupt single entry
// must never take down startup.
func DecodeSnapshot(data []byte) ([]transaction.Transaction, error) {
	var entries []snapshotEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	txs := make([]transaction.Transaction, 0, len(entries))

	for _, e := range entries {
		tx, err := e.toTransaction()
		if err != nil {
			slog.Warn("dropping malformed snapshot entry", "id", e.ID, "error", err)
			continue
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func (e snapshotEntry) toTransaction() (transaction.Transaction, error) {
	if e.ID == 0 {
		return transaction.Transaction{}, fmt.Errorf("missing id")
	}

	date, err := transaction.ParseDate(e.Date)
	if err != nil {
		return transaction.Transaction{}, err
	}

	cents, err := transaction.CentsFromFloat(e.Amount)
	if err != nil {
		return transaction.Transaction{}, err
	}

	params := transaction.CreateParams{
		Type:        e.Type,
		Category:    e.Category,
		Description: e.Description,
		Amount:      cents,
		Date:        date,
	}
	if err := params.Validate(); err != nil {
		return transaction.Transaction{}, err
	}

	// The timestamp is informational only; a bad one is not worth dropping
	// the entry over.
	createdAt, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		createdAt = time.Time{}
	}

	return transaction.Transaction{
		ID:          e.ID,
		Type:        e.Type,
		Category:    e.Category,
		Description: e.Description,
		Amount:      cents,
		Date:        date,
		CreatedAt:   createdAt,
	}, nil
}
