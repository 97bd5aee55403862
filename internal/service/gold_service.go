package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
)

// GoldService handles gold purchases and the aggregate position.
type GoldService struct {
	goldRepo *repository.GoldRepository
}

// NewGoldService creates a new GoldService
func NewGoldService(goldRepo *repository.GoldRepository) *GoldService {
	return &GoldService{
		goldRepo: goldRepo,
	}
}

// GetPortfolio returns a user's gold purchases with the aggregate position
// valued at the latest recorded market price. With no recorded price the
// position values at zero and reports as a loss.
func (s *GoldService) GetPortfolio(userID string) ([]model.GoldEntry, GoldPosition, error) {
	entries, err := s.goldRepo.GetEntriesOnUserID(userID)
	if err != nil {
		return nil, GoldPosition{}, err
	}

	currentPrice := 0.0
	price, err := s.goldRepo.GetLatestPrice()
	if err != nil && !errors.Is(err, apperrors.ErrGoldPriceNotFound) {
		return nil, GoldPosition{}, err
	}
	if err == nil {
		currentPrice = price.Price
	}

	return entries, CalculateGoldPosition(entries, currentPrice), nil
}

// CreateEntry records a new gold purchase.
func (s *GoldService) CreateEntry(userID string, purchaseDate time.Time, grams, price float64, comments string) (model.GoldEntry, error) {
	entry := model.GoldEntry{
		ID:           uuid.New().String(),
		UserID:       userID,
		PurchaseDate: purchaseDate,
		Grams:        grams,
		Price:        price,
		Comments:     comments,
	}

	if err := s.goldRepo.CreateEntry(entry); err != nil {
		return model.GoldEntry{}, err
	}

	return entry, nil
}

// UpdateEntry applies the non-nil fields onto a stored gold purchase.
func (s *GoldService) UpdateEntry(entryID string, purchaseDate *time.Time, grams, price *float64, comments *string) (model.GoldEntry, error) {
	entry, err := s.goldRepo.GetEntryOnID(entryID)
	if err != nil {
		return model.GoldEntry{}, err
	}

	if purchaseDate != nil {
		entry.PurchaseDate = *purchaseDate
	}
	if grams != nil {
		entry.Grams = *grams
	}
	if price != nil {
		entry.Price = *price
	}
	if comments != nil {
		entry.Comments = *comments
	}

	if err := s.goldRepo.UpdateEntry(entry); err != nil {
		return model.GoldEntry{}, err
	}

	return entry, nil
}

// DeleteEntry removes a gold purchase.
func (s *GoldService) DeleteEntry(entryID string) error {
	return s.goldRepo.DeleteEntry(entryID)
}

// GetTodayPrice returns the latest recorded market price.
func (s *GoldService) GetTodayPrice() (model.GoldPrice, error) {
	return s.goldRepo.GetLatestPrice()
}

// SetTodayPrice records the market price for a date, replacing any earlier
// observation for the same date.
func (s *GoldService) SetTodayPrice(date time.Time, price float64) (model.GoldPrice, error) {
	observation := model.GoldPrice{
		ID:    uuid.New().String(),
		Date:  date,
		Price: price,
	}

	if err := s.goldRepo.UpsertPrice(observation); err != nil {
		return model.GoldPrice{}, err
	}

	return observation, nil
}
