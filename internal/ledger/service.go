package ledger

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rgarcia-dev/billetera/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=ledger
type Store interface {
	Load(ctx context.Context) ([]transaction.Transaction, error)
	Save(ctx context.Context, txs []transaction.Transaction) error
}

// Service owns the in-memory transaction set. Every mutation persists a full
// snapshot before it is visible; if persisting fails the mutation is discarded
// so memory never diverges from the store.
type Service struct {
	store Store

	mu     sync.RWMutex
	txs    []transaction.Transaction
	lastID int64
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Load restores the ledger from the store snapshot. The store is responsible
// for dropping malformed entries, so everything returned here is trusted.
func (s *Service) Load(ctx context.Context) error {
	txs, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading ledger snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = txs

	// Seed the id generator past every restored id so new ids stay unique.
	for _, tx := range txs {
		if tx.ID > s.lastID {
			s.lastID = tx.ID
		}
	}

	return nil
}

// nextID derives an id from the current time in milliseconds. Ids must be
// strictly increasing, so rapid successive calls within one clock tick fall
// back to lastID+1. Ids are never reused, even when a persist fails.
func (s *Service) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}

	s.lastID = id

	return id
}

// Add validates the params, appends a new transaction and persists the full
// snapshot. The returned transaction carries the generated id.
func (s *Service) Add(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := transaction.Transaction{
		ID:          s.nextID(),
		Type:        params.Type,
		Category:    params.Category,
		Description: params.Description,
		Amount:      params.Amount,
		Date:        params.Date,
		CreatedAt:   time.Now().UTC(),
	}

	next := append(slices.Clone(s.txs), tx)
	if err := s.store.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("persisting ledger: %w", err)
	}

	s.txs = next

	return &tx, nil
}

// Remove deletes the transaction with the given id and persists the snapshot.
// A missing id is a no-op: it returns (false, nil) and does not touch the store.
func (s *Service) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.txs, func(tx transaction.Transaction) bool {
		return tx.ID == id
	})
	if idx < 0 {
		return false, nil
	}

	next := make([]transaction.Transaction, 0, len(s.txs)-1)
	next = append(next, s.txs[:idx]...)
	next = append(next, s.txs[idx+1:]...)

	if err := s.store.Save(ctx, next); err != nil {
		return false, fmt.Errorf("persisting ledger: %w", err)
	}

	s.txs = next

	return true, nil
}

// All returns a copy of the ledger contents in insertion order.
func (s *Service) All() []transaction.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.txs)
}
