package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
)

// EntryService handles fund entry management.
type EntryService struct {
	entryRepo *repository.EntryRepository
	fundRepo  *repository.FundRepository
}

// NewEntryService creates a new EntryService
func NewEntryService(entryRepo *repository.EntryRepository, fundRepo *repository.FundRepository) *EntryService {
	return &EntryService{
		entryRepo: entryRepo,
		fundRepo:  fundRepo,
	}
}

// GetEntries returns all fund entries for a user.
func (s *EntryService) GetEntries(userID string) ([]model.FundEntry, error) {
	return s.entryRepo.GetEntriesOnUserID(userID)
}

// CreateEntry records a new fund entry. When no NAV is supplied the latest
// stored NAV for the fund backfills nav, units and balance units so the
// entry values correctly from day one. An entry for a fund with no stored
// NAV is kept with nil unit fields and values at zero until a refresh runs.
func (s *EntryService) CreateEntry(userID, fundID string, date time.Time, investType string, amount float64, nav, units, balanceUnit, principalRedeem *float64) (model.FundEntry, error) {
	if _, err := s.fundRepo.GetFundOnID(fundID); err != nil {
		return model.FundEntry{}, err
	}

	entry := model.FundEntry{
		ID:              uuid.New().String(),
		UserID:          userID,
		FundID:          fundID,
		Date:            date,
		InvestType:      investType,
		Amount:          amount,
		Nav:             nav,
		Units:           units,
		BalanceUnit:     balanceUnit,
		PrincipalRedeem: principalRedeem,
	}

	if err := s.backfillUnits(&entry); err != nil {
		return model.FundEntry{}, err
	}

	if err := s.entryRepo.CreateEntry(entry); err != nil {
		return model.FundEntry{}, err
	}

	return entry, nil
}

// UpdateEntry applies the non-nil fields onto the stored entry and
// recomputes its unit fields from the stored NAV when the amount changed.
func (s *EntryService) UpdateEntry(entryID string, fundID *string, date *time.Time, investType *string, amount, nav, units, balanceUnit, principalRedeem *float64) (model.FundEntry, error) {
	entry, err := s.entryRepo.GetEntryOnID(entryID)
	if err != nil {
		return model.FundEntry{}, err
	}

	if fundID != nil {
		if _, err := s.fundRepo.GetFundOnID(*fundID); err != nil {
			return model.FundEntry{}, err
		}
		entry.FundID = *fundID
	}
	if date != nil {
		entry.Date = *date
	}
	if investType != nil {
		entry.InvestType = *investType
	}

	amountChanged := false
	if amount != nil {
		amountChanged = entry.Amount != *amount
		entry.Amount = *amount
	}
	if nav != nil {
		entry.Nav = nav
	}
	if units != nil {
		entry.Units = units
	}
	if balanceUnit != nil {
		entry.BalanceUnit = balanceUnit
	}
	if principalRedeem != nil {
		entry.PrincipalRedeem = principalRedeem
	}

	// A changed amount invalidates the derived unit fields unless the
	// caller supplied them explicitly.
	if amountChanged && units == nil && balanceUnit == nil {
		entry.Nav = nil
		entry.Units = nil
		entry.BalanceUnit = nil
		if err := s.backfillUnits(&entry); err != nil {
			return model.FundEntry{}, err
		}
	}

	if err := s.entryRepo.UpdateEntry(entry); err != nil {
		return model.FundEntry{}, err
	}

	return entry, nil
}

// DeleteEntry removes a fund entry.
func (s *EntryService) DeleteEntry(entryID string) error {
	return s.entryRepo.DeleteEntry(entryID)
}

// backfillUnits fills nav, units and balance units from the latest stored
// NAV when the entry arrived without them. Funds with no stored NAV are
// left untouched.
func (s *EntryService) backfillUnits(entry *model.FundEntry) error {
	if entry.InvestType != "Invest" || entry.Nav != nil || entry.Units != nil {
		return nil
	}

	latest, err := s.fundRepo.GetLatestNavOnFundID(entry.FundID)
	if errors.Is(err, apperrors.ErrFundNavNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if latest.Nav <= 0 {
		return nil
	}

	nav := latest.Nav
	units := round(entry.Amount / latest.Nav)
	entry.Nav = &nav
	entry.Units = &units

	if entry.BalanceUnit == nil {
		balance := units
		entry.BalanceUnit = &balance
	}

	return nil
}
