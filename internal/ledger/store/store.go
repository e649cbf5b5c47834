package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// transactionsKey is the app_state key holding the full ledger snapshot.
const transactionsKey = "transactions"

// Store persists the ledger as a single JSON snapshot in the app_state
// key-value table. Loads and saves are always whole-ledger operations.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context) ([]transaction.Transaction, error) {
	var value string

	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = $1`, transactionsKey,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			// First run: no snapshot yet.
			return nil, nil
		}

		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	return DecodeSnapshot([]byte(value))
}

func (s *Store) Save(ctx context.Context, txs []transaction.Transaction) error {
	data, err := EncodeSnapshot(txs)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, transactionsKey, string(data)); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}
