package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rgarcia-dev/billetera/internal/goal"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// Goal values live in the same app_state table as the ledger snapshot, each
// under its own key as a decimal string in currency units. That keeps the
// stored values readable and matches the frontend's persistence format.
const (
	budgetKey  = "monthlyBudget"
	savingsKey = "monthlySavings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context) (goal.Settings, error) {
	budget, err := s.loadValue(ctx, budgetKey)
	if err != nil {
		return goal.Settings{}, err
	}

	savings, err := s.loadValue(ctx, savingsKey)
	if err != nil {
		return goal.Settings{}, err
	}

	return goal.Settings{MonthlyBudget: budget, MonthlySavings: savings}, nil
}

// loadValue reads one goal value. Absent or unparseable values default to 0.
func (s *Store) loadValue(ctx context.Context, key string) (int64, error) {
	var value string

	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}

		return 0, fmt.Errorf("reading %s: %w", key, err)
	}

	units, err := strconv.ParseFloat(value, 64)
	if err != nil || units < 0 {
		slog.Warn("ignoring unparseable goal value", "key", key, "value", value)
		return 0, nil
	}

	if units == 0 {
		return 0, nil
	}

	cents, err := transaction.CentsFromFloat(units)
	if err != nil {
		slog.Warn("ignoring out-of-range goal value", "key", key, "value", value)
		return 0, nil
	}

	return cents, nil
}

func (s *Store) Save(ctx context.Context, settings goal.Settings) error {
	if err := s.saveValue(ctx, budgetKey, settings.MonthlyBudget); err != nil {
		return err
	}

	return s.saveValue(ctx, savingsKey, settings.MonthlySavings)
}

func (s *Store) saveValue(ctx context.Context, key string, cents int64) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	value := strconv.FormatFloat(transaction.Units(cents), 'f', 2, 64)

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}
