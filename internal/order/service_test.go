package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/cart"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/menu"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/notify"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type MockRepository struct {
	orders     map[string]*Order
	nextID     int
	failCreate error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{orders: make(map[string]*Order), nextID: 1}
}

func (m *MockRepository) Create(ctx context.Context, o Order) (Order, error) {
	if m.failCreate != nil {
		return Order{}, m.failCreate
	}
	o.ID = "order-" + string(rune('0'+m.nextID))
	m.nextID++
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	m.orders[o.ID] = &o
	return o, nil
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	c := *o
	return &c, nil
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *MockRepository) ListByStatus(ctx context.Context, status string) ([]Order, error) {
	var out []Order
	for _, o := range m.orders {
		if status == "" || o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id, status string) error {
	o, ok := m.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	o.Status = status
	return nil
}

type fakeSlots struct{ valid bool }

func (f fakeSlots) ValidatePickup(ctx context.Context, isASAP bool, pickupAt time.Time) (bool, error) {
	return f.valid, nil
}

type fakeMenu struct {
	items   map[string]menu.Item
	choices map[string]pricing.CustomizationChoice
}

func (f fakeMenu) ItemMap(ctx context.Context) (map[string]menu.Item, error) {
	return f.items, nil
}

func (f fakeMenu) ChoiceMap(ctx context.Context) (map[string]pricing.CustomizationChoice, error) {
	return f.choices, nil
}

type fakeDiscounts struct{ active map[string]pricing.Discount }

func (f fakeDiscounts) ActiveDiscounts(ctx context.Context) (map[string]pricing.Discount, error) {
	return f.active, nil
}

type fakeCarts struct{ cleared []string }

func (f *fakeCarts) Clear(ctx context.Context, userID string) error {
	f.cleared = append(f.cleared, userID)
	return nil
}

type fakeRewards struct {
	accrued        money.Cents
	cardBalance    money.Cents
	cardFailWith   error
	cardRefunded   money.Cents
	birthdayClaims int
	birthdayErr    error
	pointsSpent    int
	pointsRefunded int
	pointsErr      error
}

func (f *fakeRewards) Accrue(ctx context.Context, userID string, subtotal money.Cents) (int64, error) {
	f.accrued += subtotal
	return int64(subtotal) / 100, nil
}

func (f *fakeRewards) ApplyGiftCard(ctx context.Context, code string, due money.Cents) (money.Cents, error) {
	if f.cardFailWith != nil {
		return 0, f.cardFailWith
	}
	applied := f.cardBalance
	if due < applied {
		applied = due
	}
	f.cardBalance -= applied
	return applied, nil
}

func (f *fakeRewards) RefundGiftCard(ctx context.Context, code string, amount money.Cents) error {
	f.cardRefunded += amount
	f.cardBalance += amount
	return nil
}

func (f *fakeRewards) ClaimBirthdayReward(ctx context.Context, userID string) error {
	if f.birthdayErr != nil {
		return f.birthdayErr
	}
	f.birthdayClaims++
	return nil
}

func (f *fakeRewards) SpendPoints(ctx context.Context, userID string) error {
	if f.pointsErr != nil {
		return f.pointsErr
	}
	f.pointsSpent++
	return nil
}

func (f *fakeRewards) RefundPoints(ctx context.Context, userID string) error {
	f.pointsRefunded++
	return nil
}

type fakeEvents struct{ events []notify.OrderEvent }

func (f *fakeEvents) PublishOrderEvent(ctx context.Context, ev notify.OrderEvent) {
	f.events = append(f.events, ev)
}

// --------------------------------------------------
// Fixture
// --------------------------------------------------

type fixture struct {
	repo    *MockRepository
	carts   *fakeCarts
	rewards *fakeRewards
	events  *fakeEvents
	service *Service
}

func newFixture(slotsValid bool) *fixture {
	f := &fixture{
		repo:    NewMockRepository(),
		carts:   &fakeCarts{},
		rewards: &fakeRewards{},
		events:  &fakeEvents{},
	}
	f.service = NewService(
		f.repo,
		fakeSlots{valid: slotsValid},
		fakeMenu{
			items: map[string]menu.Item{
				"banh-mi":  {ID: "banh-mi", Name: "Banh Mi", Price: 1100, Available: true},
				"sold-out": {ID: "sold-out", Name: "Seasonal Special", Price: 900, Available: false},
			},
			choices: map[string]pricing.CustomizationChoice{},
		},
		fakeDiscounts{},
		f.carts,
		f.rewards,
		f.events,
		pricing.DefaultConfig(),
	)
	return f
}

func pickupIn(d time.Duration) time.Time { return time.Now().Add(d) }

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(true)

	_, err := f.service.Checkout(context.Background(), "u1", cart.OrderDetails{}, false, nil)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestCheckoutRejectsInvalidSlot(t *testing.T) {
	f := newFixture(false)

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 1}},
	}
	_, err := f.service.Checkout(context.Background(), "u1", details, false, nil)
	if !errors.Is(err, ErrInvalidPickupTime) {
		t.Fatalf("err = %v, want ErrInvalidPickupTime", err)
	}
}

func TestCheckoutPricesFromListing(t *testing.T) {
	f := newFixture(true)

	// The client claims the sandwich costs a penny; the listing wins.
	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 2, Price: 1}},
	}
	placed, err := f.service.Checkout(context.Background(), "u1", details, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if placed.Subtotal != 2200 {
		t.Errorf("subtotal = %d, want 2200 from the listing", placed.Subtotal)
	}
	if placed.Total != placed.Subtotal+placed.Tax+placed.Tip {
		t.Errorf("total mismatch: %+v", placed)
	}
	if placed.Status != StatusReceived {
		t.Errorf("status = %s, want RECEIVED", placed.Status)
	}
}

func TestCheckoutRejectsSoldOut(t *testing.T) {
	f := newFixture(true)

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "sold-out", Quantity: 1}},
	}
	if _, err := f.service.Checkout(context.Background(), "u1", details, false, nil); err == nil {
		t.Fatal("sold-out item accepted")
	}
}

func TestCheckoutMergesDuplicateLines(t *testing.T) {
	f := newFixture(true)

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items: []pricing.Item{
			{ItemID: "banh-mi", Quantity: 1},
			{ItemID: "banh-mi", Quantity: 2},
		},
	}
	placed, err := f.service.Checkout(context.Background(), "u1", details, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placed.Items) != 1 || placed.Items[0].Quantity != 3 {
		t.Errorf("items = %+v, want one merged line x3", placed.Items)
	}
}

func TestCheckoutGiftCardReducesDueNotTotal(t *testing.T) {
	f := newFixture(true)
	f.rewards.cardBalance = 1000
	code := "gift-1"

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 2}},
	}
	placed, err := f.service.Checkout(context.Background(), "u1", details, false, &code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if placed.GiftCardApplied != 1000 {
		t.Errorf("gift card applied = %d, want 1000", placed.GiftCardApplied)
	}
	if placed.AmountDue != placed.Total-1000 {
		t.Errorf("amount due = %d, want total-1000 = %d", placed.AmountDue, placed.Total-1000)
	}
}

func TestCheckoutSideEffects(t *testing.T) {
	f := newFixture(true)

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 2}},
	}
	placed, err := f.service.Checkout(context.Background(), "u1", details, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.carts.cleared) != 1 || f.carts.cleared[0] != "u1" {
		t.Errorf("cart not cleared: %v", f.carts.cleared)
	}
	if f.rewards.accrued != placed.Subtotal {
		t.Errorf("accrued on %d, want subtotal %d", f.rewards.accrued, placed.Subtotal)
	}
	if len(f.events.events) != 1 || f.events.events[0].OrderID != placed.ID {
		t.Errorf("order event not published: %+v", f.events.events)
	}
}

func TestCheckoutClaimsBirthdayReward(t *testing.T) {
	f := newFixture(true)

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 1, BirthdayReward: true}},
	}
	placed, err := f.service.Checkout(context.Background(), "u1", details, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.rewards.birthdayClaims != 1 {
		t.Errorf("birthday claims = %d, want 1", f.rewards.birthdayClaims)
	}
	if placed.Subtotal != 0 {
		t.Errorf("subtotal = %d, want 0 for a birthday line", placed.Subtotal)
	}
}

func TestCheckoutRejectsIneligibleBirthdayReward(t *testing.T) {
	f := newFixture(true)
	f.rewards.birthdayErr = errors.New("birthday reward not available")

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 1, BirthdayReward: true}},
	}
	if _, err := f.service.Checkout(context.Background(), "u1", details, false, nil); err == nil {
		t.Fatal("ineligible birthday reward accepted")
	}
}

func TestCheckoutSpendsPointsForRewardLine(t *testing.T) {
	f := newFixture(true)

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 1, PointReward: true}},
	}
	placed, err := f.service.Checkout(context.Background(), "u1", details, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.rewards.pointsSpent != 1 {
		t.Errorf("points redemptions = %d, want 1", f.rewards.pointsSpent)
	}
	if placed.Subtotal != 0 {
		t.Errorf("subtotal = %d, want 0 for a points-reward line", placed.Subtotal)
	}
}

func TestCheckoutRejectsUnderfundedPointsRedemption(t *testing.T) {
	f := newFixture(true)
	f.rewards.pointsErr = errors.New("not enough points to redeem")

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 1, PointReward: true}},
	}
	if _, err := f.service.Checkout(context.Background(), "u1", details, false, nil); err == nil {
		t.Fatal("underfunded points redemption accepted")
	}
}

func TestCheckoutRejectsMultiQuantityRewardLine(t *testing.T) {
	f := newFixture(true)

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 2, PointReward: true}},
	}
	if _, err := f.service.Checkout(context.Background(), "u1", details, false, nil); err == nil {
		t.Fatal("reward line with quantity 2 accepted")
	}
	if f.rewards.pointsSpent != 0 {
		t.Errorf("points spent on a rejected checkout: %d", f.rewards.pointsSpent)
	}
}

func TestCheckoutRefundsGiftCardWhenCreateFails(t *testing.T) {
	f := newFixture(true)
	f.repo.failCreate = errors.New("connection reset")
	f.rewards.cardBalance = 1000
	code := "gift-1"

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 2}},
	}
	if _, err := f.service.Checkout(context.Background(), "u1", details, false, &code); err == nil {
		t.Fatal("checkout succeeded although the insert failed")
	}

	if f.rewards.cardRefunded != 1000 {
		t.Errorf("gift card refunded %d, want 1000", f.rewards.cardRefunded)
	}
	if f.rewards.cardBalance != 1000 {
		t.Errorf("card balance = %d, want the original 1000", f.rewards.cardBalance)
	}
}

func TestCheckoutRefundsPointsWhenCreateFails(t *testing.T) {
	f := newFixture(true)
	f.repo.failCreate = errors.New("connection reset")

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 1, PointReward: true}},
	}
	if _, err := f.service.Checkout(context.Background(), "u1", details, false, nil); err == nil {
		t.Fatal("checkout succeeded although the insert failed")
	}

	if f.rewards.pointsRefunded != 1 {
		t.Errorf("points refunds = %d, want 1", f.rewards.pointsRefunded)
	}
}

func TestSetStatusTransitions(t *testing.T) {
	f := newFixture(true)

	details := cart.OrderDetails{
		DatetimeToPickup: pickupIn(time.Hour),
		Items:            []pricing.Item{{ItemID: "banh-mi", Quantity: 1}},
	}
	placed, err := f.service.Checkout(context.Background(), "u1", details, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// RECEIVED cannot jump straight to COMPLETED.
	if err := f.service.SetStatus(context.Background(), placed.ID, StatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}

	for _, next := range []string{StatusPreparing, StatusReady, StatusCompleted} {
		if err := f.service.SetStatus(context.Background(), placed.ID, next); err != nil {
			t.Fatalf("transition to %s failed: %v", next, err)
		}
	}

	// Each successful transition broadcast an event, plus checkout's.
	if len(f.events.events) != 4 {
		t.Errorf("published %d events, want 4", len(f.events.events))
	}
}
