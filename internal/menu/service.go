package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

// Storage is where item photos land (R2 in production).
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// PublicMenu lists what customers can order right now: available items
// grouped by category, in the admin's display order.
func (s *Service) PublicMenu(ctx context.Context) (map[string][]Item, error) {
	items, err := s.repo.ListItems(ctx, true)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]Item)
	for _, it := range items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	return grouped, nil
}

// ChoiceMap loads the customization reference set keyed by choice id,
// the shape the price calculator wants.
func (s *Service) ChoiceMap(ctx context.Context) (map[string]pricing.CustomizationChoice, error) {
	choices, err := s.repo.ListChoices(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]pricing.CustomizationChoice, len(choices))
	for _, ch := range choices {
		byID[ch.ID] = ch
	}
	return byID, nil
}

// ItemMap loads all items keyed by id, including unavailable ones, so
// checkout can verify prices against the listing.
func (s *Service) ItemMap(ctx context.Context) (map[string]Item, error) {
	items, err := s.repo.ListItems(ctx, false)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return byID, nil
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

func (s *Service) AllItems(ctx context.Context) ([]Item, error) {
	return s.repo.ListItems(ctx, false)
}

func (s *Service) CreateItem(ctx context.Context, item Item) (Item, error) {
	if item.Name == "" || item.Category == "" {
		return Item{}, errors.New("name and category are required")
	}
	if item.Price < 0 {
		return Item{}, errors.New("price must not be negative")
	}
	item.Available = true
	return s.repo.CreateItem(ctx, item)
}

func (s *Service) UpdateItem(ctx context.Context, item Item) error {
	if item.ID == "" {
		return errors.New("item id is required")
	}
	if item.Price < 0 {
		return errors.New("price must not be negative")
	}
	return s.repo.UpdateItem(ctx, item)
}

func (s *Service) SetAvailability(ctx context.Context, id string, available bool) error {
	return s.repo.SetAvailability(ctx, id, available)
}

// UploadPhoto stores an item photo and saves its public URL.
func (s *Service) UploadPhoto(ctx context.Context, itemID string, file multipart.File, filename, contentType string) (string, error) {
	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf("items/%s/%s%s", itemID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetPhotoURL(ctx, itemID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *Service) Categories(ctx context.Context) ([]CustomizationCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) Choices(ctx context.Context) ([]pricing.CustomizationChoice, error) {
	return s.repo.ListChoices(ctx)
}

func (s *Service) CreateChoice(ctx context.Context, ch pricing.CustomizationChoice) (pricing.CustomizationChoice, error) {
	if ch.CategoryID == "" || ch.Name == "" {
		return pricing.CustomizationChoice{}, errors.New("category and name are required")
	}
	return s.repo.CreateChoice(ctx, ch)
}
