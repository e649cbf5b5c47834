// Package suggest learns description-to-category mappings so imported bank
// rows arrive pre-categorized instead of all landing in the fallback bucket.
package suggest

import (
	"context"
)

type Repository interface {
	FindCategory(ctx context.Context, description string) (string, error)
	CreateMapping(ctx context.Context, pattern, categoryKey string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a category key for the given description.
// Returns empty string if no match found.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	return s.repo.FindCategory(ctx, description)
}

// Learn remembers a new mapping between a description pattern and a category.
func (s *Service) Learn(ctx context.Context, pattern, categoryKey string) error {
	return s.repo.CreateMapping(ctx, pattern, categoryKey)
}
