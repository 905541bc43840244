package cart

import "context"

// Repository stores one OrderDetails document per user. Writes replace
// the whole document; concurrent tabs resolve by last write wins.
type Repository interface {
	Get(ctx context.Context, userID string) (*OrderDetails, error)
	Replace(ctx context.Context, userID string, details OrderDetails) error
	Clear(ctx context.Context, userID string) error
}
