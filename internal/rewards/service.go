package rewards

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/hours"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Account(ctx context.Context, userID string) (*Account, error) {
	return s.repo.GetAccount(ctx, userID)
}

func (s *Service) SetBirthday(ctx context.Context, userID string, month, day int) error {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return errors.New("invalid birthday")
	}
	return s.repo.SetBirthday(ctx, userID, month, day)
}

// --------------------------------------------------
// Points
// --------------------------------------------------

// Accrue grants points for a completed checkout: one point per whole
// dollar of the discounted subtotal.
func (s *Service) Accrue(ctx context.Context, userID string, subtotal money.Cents) (int64, error) {
	pts := int64(subtotal) / 100 * PointsPerDollar
	if pts <= 0 {
		return 0, nil
	}
	return pts, s.repo.AddPoints(ctx, userID, pts)
}

// SpendPoints deducts a redemption's worth of points. The caller
// prices the redeemed line as a reward item separately.
func (s *Service) SpendPoints(ctx context.Context, userID string) error {
	acct, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return err
	}
	if acct.Points < RedeemThreshold {
		return errors.New("not enough points to redeem")
	}
	return s.repo.AddPoints(ctx, userID, -RedeemThreshold)
}

// RefundPoints gives back one redemption, compensating a checkout that
// spent points but never produced an order.
func (s *Service) RefundPoints(ctx context.Context, userID string) error {
	return s.repo.AddPoints(ctx, userID, RedeemThreshold)
}

// --------------------------------------------------
// Birthday reward
// --------------------------------------------------

// BirthdayEligible reports whether the user can claim the annual
// birthday item: it must be their birthday month (restaurant-local)
// and the reward must not have been used this year.
func (s *Service) BirthdayEligible(ctx context.Context, userID string) (bool, error) {
	acct, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return false, err
	}
	if acct.BirthdayMonth == 0 {
		return false, nil
	}

	now := s.now().In(hours.Location)
	if int(now.Month()) != acct.BirthdayMonth {
		return false, nil
	}
	return acct.LastBirthdayRewardYear < now.Year(), nil
}

// ClaimBirthdayReward consumes this year's reward.
func (s *Service) ClaimBirthdayReward(ctx context.Context, userID string) error {
	ok, err := s.BirthdayEligible(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("birthday reward not available")
	}
	return s.repo.MarkBirthdayRewardUsed(ctx, userID, s.now().In(hours.Location).Year())
}

// --------------------------------------------------
// Gift cards
// --------------------------------------------------

// IssueGiftCard mints a card with a fresh code (ADMIN).
func (s *Service) IssueGiftCard(ctx context.Context, amount money.Cents) (GiftCard, error) {
	if amount <= 0 {
		return GiftCard{}, errors.New("gift card amount must be positive")
	}

	card := GiftCard{
		Code:    uuid.New().String(),
		Balance: amount,
		Active:  true,
	}
	if err := s.repo.CreateGiftCard(ctx, card); err != nil {
		return GiftCard{}, err
	}
	return card, nil
}

// ApplyGiftCard takes as much of due as the card holds and returns the
// amount actually applied. The remainder stays on the card.
func (s *Service) ApplyGiftCard(ctx context.Context, code string, due money.Cents) (money.Cents, error) {
	if due <= 0 {
		return 0, nil
	}

	card, err := s.repo.GetGiftCard(ctx, code)
	if err != nil {
		return 0, err
	}
	if !card.Active || card.Balance <= 0 {
		return 0, errors.New("gift card is not usable")
	}

	applied := card.Balance
	if due < applied {
		applied = due
	}

	if err := s.repo.DeductGiftCard(ctx, code, applied); err != nil {
		return 0, err
	}
	return applied, nil
}

// RefundGiftCard puts a deducted amount back, compensating a checkout
// that failed after the card was charged.
func (s *Service) RefundGiftCard(ctx context.Context, code string, amount money.Cents) error {
	if amount <= 0 {
		return nil
	}
	return s.repo.CreditGiftCard(ctx, code, amount)
}

// GiftCardBalance looks a card up by code.
func (s *Service) GiftCardBalance(ctx context.Context, code string) (*GiftCard, error) {
	return s.repo.GetGiftCard(ctx, code)
}
