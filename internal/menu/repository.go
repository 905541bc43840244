package menu

import (
	"context"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

// Repository defines all database operations for menu reference data.
// Service depends ONLY on this interface.
type Repository interface {

	// -------------------------------
	// Items
	// -------------------------------

	ListItems(ctx context.Context, availableOnly bool) ([]Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	CreateItem(ctx context.Context, item Item) (Item, error)
	UpdateItem(ctx context.Context, item Item) error
	SetAvailability(ctx context.Context, id string, available bool) error
	SetPhotoURL(ctx context.Context, id string, url string) error

	// -------------------------------
	// Customizations
	// -------------------------------

	ListCategories(ctx context.Context) ([]CustomizationCategory, error)
	ListChoices(ctx context.Context) ([]pricing.CustomizationChoice, error)
	CreateChoice(ctx context.Context, ch pricing.CustomizationChoice) (pricing.CustomizationChoice, error)
}
