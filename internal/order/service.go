package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/cart"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/menu"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/notify"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidPickupTime = errors.New("selected pickup time is no longer available")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// SlotValidator re-checks the pickup time at submit. Implemented by
// hours.Service.
type SlotValidator interface {
	ValidatePickup(ctx context.Context, isASAP bool, pickupAt time.Time) (bool, error)
}

// MenuSource supplies listing prices and customization reference data.
// Implemented by menu.Service.
type MenuSource interface {
	ItemMap(ctx context.Context) (map[string]menu.Item, error)
	ChoiceMap(ctx context.Context) (map[string]pricing.CustomizationChoice, error)
}

// DiscountSource supplies the active discount set. Implemented by
// pricing.PostgresRepository.
type DiscountSource interface {
	ActiveDiscounts(ctx context.Context) (map[string]pricing.Discount, error)
}

// CartStore lets checkout drop the cart once the order lands.
type CartStore interface {
	Clear(ctx context.Context, userID string) error
}

// RewardsService is the slice of rewards checkout touches. The refund
// methods compensate a checkout that charged the customer but never
// produced an order.
type RewardsService interface {
	Accrue(ctx context.Context, userID string, subtotal money.Cents) (int64, error)
	ApplyGiftCard(ctx context.Context, code string, due money.Cents) (money.Cents, error)
	RefundGiftCard(ctx context.Context, code string, amount money.Cents) error
	ClaimBirthdayReward(ctx context.Context, userID string) error
	SpendPoints(ctx context.Context, userID string) error
	RefundPoints(ctx context.Context, userID string) error
}

// EventPublisher broadcasts order events. A nil notify.Publisher
// satisfies it as a no-op.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev notify.OrderEvent)
}

type Service struct {
	repo      Repository
	slots     SlotValidator
	menus     MenuSource
	discounts DiscountSource
	carts     CartStore
	rewards   RewardsService
	events    EventPublisher
	cfg       pricing.Config
}

func NewService(
	repo Repository,
	slots SlotValidator,
	menus MenuSource,
	discounts DiscountSource,
	carts CartStore,
	rewards RewardsService,
	events EventPublisher,
	cfg pricing.Config,
) *Service {
	return &Service{
		repo:      repo,
		slots:     slots,
		menus:     menus,
		discounts: discounts,
		carts:     carts,
		rewards:   rewards,
		events:    events,
		cfg:       cfg,
	}
}

// Checkout turns the cart aggregate into a placed order. The pickup
// time is re-validated and every price is recomputed from reference
// data; nothing the client claims about money is trusted.
func (s *Service) Checkout(ctx context.Context, userID string, details cart.OrderDetails, isASAP bool, giftCardCode *string) (*Order, error) {
	if len(details.Items) == 0 {
		return nil, ErrEmptyCart
	}

	ok, err := s.slots.ValidatePickup(ctx, isASAP, details.DatetimeToPickup)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidPickupTime
	}

	listing, err := s.menus.ItemMap(ctx)
	if err != nil {
		return nil, err
	}

	items := cart.MergeDuplicateItems(details.Items)
	for i := range items {
		it, ok := listing[items[i].ItemID]
		if !ok {
			return nil, fmt.Errorf("unknown menu item %s", items[i].ItemID)
		}
		if !it.Available {
			return nil, fmt.Errorf("%s is sold out", it.Name)
		}
		if items[i].Quantity < 1 {
			return nil, fmt.Errorf("item %s: quantity must be at least 1", it.Name)
		}
		// Listing price is authoritative.
		items[i].Price = it.Price
	}

	// Reward lines are claimed before pricing: the claim fails the
	// checkout when the customer is not entitled to the reward.
	var pointsSpent int
	for _, it := range items {
		if !it.BirthdayReward && !it.PointReward {
			continue
		}
		if it.Quantity != 1 {
			return nil, fmt.Errorf("reward item %s: quantity must be exactly 1", it.ItemID)
		}
		if it.BirthdayReward {
			if err := s.rewards.ClaimBirthdayReward(ctx, userID); err != nil {
				return nil, err
			}
		}
		if it.PointReward {
			if err := s.rewards.SpendPoints(ctx, userID); err != nil {
				return nil, err
			}
			pointsSpent++
		}
	}

	choices, err := s.menus.ChoiceMap(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.discounts.ActiveDiscounts(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := pricing.TotalCartPrices(s.cfg, pricing.CartInput{
		Items:         items,
		TipPercentage: details.TipPercentage,
		TipValue:      details.TipValue,
		DiscountID:    details.DiscountID,
	}, choices, active)

	due := breakdown.Total
	var giftApplied money.Cents
	if giftCardCode != nil && *giftCardCode != "" {
		giftApplied, err = s.rewards.ApplyGiftCard(ctx, *giftCardCode, due)
		if err != nil {
			return nil, err
		}
		due -= giftApplied
	}

	placed, err := s.repo.Create(ctx, Order{
		UserID:                    userID,
		Status:                    StatusReceived,
		IsASAP:                    isASAP,
		PickupAt:                  details.DatetimeToPickup,
		Items:                     items,
		IncludeNapkinsAndUtensils: details.IncludeNapkinsAndUtensils,
		Subtotal:                  breakdown.Subtotal,
		Tax:                       breakdown.Tax,
		Tip:                       breakdown.Tip,
		Total:                     breakdown.Total,
		GiftCardApplied:           giftApplied,
		AmountDue:                 due,
	})
	if err != nil {
		// The customer was already charged; put the value back.
		if giftApplied > 0 {
			if rerr := s.rewards.RefundGiftCard(ctx, *giftCardCode, giftApplied); rerr != nil {
				log.Printf("order: refund gift card %s: %v", *giftCardCode, rerr)
			}
		}
		for i := 0; i < pointsSpent; i++ {
			if rerr := s.rewards.RefundPoints(ctx, userID); rerr != nil {
				log.Printf("order: refund points for %s: %v", userID, rerr)
			}
		}
		return nil, err
	}

	// Everything past this point is best effort: the order is placed.
	if err := s.carts.Clear(ctx, userID); err != nil {
		log.Printf("order: clear cart for %s: %v", userID, err)
	}
	if _, err := s.rewards.Accrue(ctx, userID, breakdown.Subtotal); err != nil {
		log.Printf("order: accrue points for %s: %v", userID, err)
	}
	s.events.PublishOrderEvent(ctx, notify.OrderEvent{
		OrderID:  placed.ID,
		Status:   placed.Status,
		PickupAt: placed.PickupAt,
		At:       time.Now().UTC(),
	})

	return &placed, nil
}

// History lists a customer's past orders, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

func (s *Service) List(ctx context.Context, status string) ([]Order, error) {
	return s.repo.ListByStatus(ctx, status)
}

// SetStatus advances an order through the kitchen flow (ADMIN).
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ValidTransition(o.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.events.PublishOrderEvent(ctx, notify.OrderEvent{
		OrderID:  id,
		Status:   status,
		PickupAt: o.PickupAt,
		At:       time.Now().UTC(),
	})
	return nil
}
