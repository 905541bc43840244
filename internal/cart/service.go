package cart

import (
	"context"
	"errors"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID string) (*OrderDetails, error) {
	return s.repo.Get(ctx, userID)
}

// Replace overwrites the user's cart with the supplied aggregate after
// merging duplicate lines. This is also how an anonymous cart lands on
// the account at login: the browser pushes it wholesale.
func (s *Service) Replace(ctx context.Context, userID string, details OrderDetails) (*OrderDetails, error) {
	for _, it := range details.Items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("item %s: quantity must be at least 1", it.ItemID)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("item %s: negative price", it.ItemID)
		}
	}
	if details.TipPercentage != nil && *details.TipPercentage < 0 {
		return nil, errors.New("tip percentage must not be negative")
	}
	if details.TipValue < 0 {
		return nil, errors.New("tip value must not be negative")
	}

	details.Items = MergeDuplicateItems(details.Items)

	if err := s.repo.Replace(ctx, userID, details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}
