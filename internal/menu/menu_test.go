package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

var errItemNotFound = errors.New("item not found")

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	items   map[string]*Item
	choices []pricing.CustomizationChoice
}

func NewMockRepository() *MockRepository {
	return &MockRepository{items: make(map[string]*Item)}
}

func (m *MockRepository) ListItems(ctx context.Context, availableOnly bool) ([]Item, error) {
	var out []Item
	for _, it := range m.items {
		if availableOnly && !it.Available {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (m *MockRepository) GetItem(ctx context.Context, id string) (*Item, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, errItemNotFound
	}
	return it, nil
}

func (m *MockRepository) CreateItem(ctx context.Context, item Item) (Item, error) {
	if item.ID == "" {
		item.ID = "mock-" + item.Name
	}
	m.items[item.ID] = &item
	return item, nil
}

func (m *MockRepository) UpdateItem(ctx context.Context, item Item) error {
	m.items[item.ID] = &item
	return nil
}

func (m *MockRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	it, ok := m.items[id]
	if !ok {
		return errItemNotFound
	}
	it.Available = available
	return nil
}

func (m *MockRepository) SetPhotoURL(ctx context.Context, id string, url string) error {
	it, ok := m.items[id]
	if !ok {
		return errItemNotFound
	}
	it.PhotoURL = &url
	return nil
}

func (m *MockRepository) ListCategories(ctx context.Context) ([]CustomizationCategory, error) {
	return nil, nil
}

func (m *MockRepository) ListChoices(ctx context.Context) ([]pricing.CustomizationChoice, error) {
	return m.choices, nil
}

func (m *MockRepository) CreateChoice(ctx context.Context, ch pricing.CustomizationChoice) (pricing.CustomizationChoice, error) {
	m.choices = append(m.choices, ch)
	return ch, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestPublicMenuHidesUnavailable(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo, nil)

	if _, err := service.CreateItem(context.Background(), Item{Name: "Pho", Category: "Entrees", Price: 1400}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	soldOut, err := service.CreateItem(context.Background(), Item{Name: "Banh Mi", Category: "Entrees", Price: 1100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.SetAvailability(context.Background(), soldOut.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grouped, err := service.PublicMenu(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entrees := grouped["Entrees"]
	if len(entrees) != 1 || entrees[0].Name != "Pho" {
		t.Errorf("public menu = %+v, want only Pho", entrees)
	}

	// Unavailable items stay reachable for checkout price verification.
	all, _ := service.ItemMap(context.Background())
	if _, ok := all[soldOut.ID]; !ok {
		t.Error("sold-out item dropped from the item map")
	}
}

func TestCreateItemValidation(t *testing.T) {
	service := NewService(NewMockRepository(), nil)

	if _, err := service.CreateItem(context.Background(), Item{Category: "Entrees"}); err == nil {
		t.Error("item without a name accepted")
	}
	if _, err := service.CreateItem(context.Background(), Item{Name: "Pho", Category: "Entrees", Price: -100}); err == nil {
		t.Error("negative price accepted")
	}
}

func TestChoiceMapKeyedByID(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo, nil)

	ch, err := service.CreateChoice(context.Background(), pricing.CustomizationChoice{
		ID: "tofu", CategoryID: "protein", Name: "Tofu", PriceAdjustment: -100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID, err := service.ChoiceMap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := byID[ch.ID]; !ok || got.PriceAdjustment != -100 {
		t.Errorf("choice map missing %s: %+v", ch.ID, byID)
	}
}
