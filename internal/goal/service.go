package goal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// ErrInvalidGoal is returned when a goal value is negative or not a finite
// number. Zero is valid and means "no goal set".
var ErrInvalidGoal = errors.New("goal values must be non-negative numbers")

// Settings holds the user's monthly targets in cents: a budget ceiling for
// expenses and a savings floor. Both default to zero when unset.
type Settings struct {
	MonthlyBudget  int64
	MonthlySavings int64
}

//go:generate mockgen -source=service.go -destination=store_mock.go -package=goal
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

// Service owns the process-wide goal settings, persisted independently of
// the ledger.
type Service struct {
	store Store

	mu       sync.RWMutex
	settings Settings
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Load restores the persisted settings. Absent values come back as zero.
func (s *Service) Load(ctx context.Context) error {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading goal settings: %w", err)
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	return nil
}

// Set validates and persists new monthly targets, given in currency units.
// On persist failure the previous settings stay in effect.
func (s *Service) Set(ctx context.Context, budget, savings float64) (Settings, error) {
	budgetCents, err := goalCents(budget)
	if err != nil {
		return Settings{}, err
	}

	savingsCents, err := goalCents(savings)
	if err != nil {
		return Settings{}, err
	}

	next := Settings{MonthlyBudget: budgetCents, MonthlySavings: savingsCents}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, next); err != nil {
		return Settings{}, fmt.Errorf("persisting goal settings: %w", err)
	}

	s.settings = next

	return next, nil
}

// Current returns the settings as last loaded or set.
func (s *Service) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// goalCents converts a goal value in units to cents. Unlike transaction
// amounts, zero is allowed.
func goalCents(units float64) (int64, error) {
	if math.IsNaN(units) || math.IsInf(units, 0) || units < 0 {
		return 0, ErrInvalidGoal
	}

	if units == 0 {
		return 0, nil
	}

	cents, err := transaction.CentsFromFloat(units)
	if err != nil {
		return 0, ErrInvalidGoal
	}

	return cents, nil
}
