package order

import "context"

// Repository defines all database operations for placed orders.
type Repository interface {
	Create(ctx context.Context, o Order) (Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)

	// ListByStatus with an empty status lists everything, newest first.
	ListByStatus(ctx context.Context, status string) ([]Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
