package pricing

import "context"

// Repository defines the reference-data reads and the admin writes for
// the discount set.
type Repository interface {

	// ActiveDiscounts returns the discount reference set keyed by id,
	// kinds already resolved.
	ActiveDiscounts(ctx context.Context) (map[string]Discount, error)

	CreateDiscount(ctx context.Context, d Discount) (Discount, error)
	DeactivateDiscount(ctx context.Context, id string) error
	ListDiscounts(ctx context.Context) ([]Discount, error)
}
