package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindCategory(ctx context.Context, description string) (string, error) {
	// Longest matching pattern wins: "mercadona centro" beats "mercadona".
	query := `
		SELECT category
		FROM category_mappings
		WHERE $1 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var categoryKey string

	err := s.db.QueryRowContext(ctx, query, description).Scan(&categoryKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding category match: %w", err)
	}

	return categoryKey, nil
}

func (s *Store) CreateMapping(ctx context.Context, pattern, categoryKey string) error {
	query := `
		INSERT INTO category_mappings (pattern, category, created_at)
		VALUES ($1, $2, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query, pattern, categoryKey); err != nil {
		return fmt.Errorf("creating category mapping: %w", err)
	}

	return nil
}
