package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
)

// setupYears is the span of monthly entries created by a ledger setup.
// PPF accounts mature after fifteen years.
const setupYears = 15

// PFService handles provident fund ledgers (PPF, PF, EPS): interest rate
// windows, monthly entries and the financial year view. The balance and
// interest arithmetic lives in the pure engines (RecalculateLedger,
// GroupByFinancialYear).
type PFService struct {
	pfRepo *repository.PFRepository
}

// NewPFService creates a new PFService
func NewPFService(pfRepo *repository.PFRepository) *PFService {
	return &PFService{
		pfRepo: pfRepo,
	}
}

// GetTypes returns the provident fund ledger kinds.
func (s *PFService) GetTypes() ([]model.PFType, error) {
	return s.pfRepo.GetPFTypes()
}

// GetInterestRates returns all interest rate windows ordered by start date.
func (s *PFService) GetInterestRates() ([]model.PFInterestRate, error) {
	return s.pfRepo.GetInterestRates()
}

// CreateInterestRate adds a new interest rate window. The window must start
// the day after the latest existing window ends so the rate table stays
// contiguous. The first window may start anywhere.
func (s *PFService) CreateInterestRate(startDate, endDate time.Time, rate float64) (model.PFInterestRate, error) {
	rates, err := s.pfRepo.GetInterestRates()
	if err != nil {
		return model.PFInterestRate{}, err
	}

	if len(rates) > 0 {
		latest := rates[len(rates)-1]
		expected := latest.EndDate.AddDate(0, 0, 1)
		if !startDate.Equal(expected) {
			return model.PFInterestRate{}, apperrors.ErrNonContiguousRate
		}
	}

	window := model.PFInterestRate{
		ID:        uuid.New().String(),
		StartDate: startDate,
		EndDate:   endDate,
		Rate:      rate,
	}

	if err := s.pfRepo.CreateInterestRate(window); err != nil {
		return model.PFInterestRate{}, err
	}

	return window, nil
}

// UpdateInterestRate applies the non-nil fields onto a stored rate window.
func (s *PFService) UpdateInterestRate(rateID string, startDate, endDate *time.Time, rate *float64) (model.PFInterestRate, error) {
	rates, err := s.pfRepo.GetInterestRates()
	if err != nil {
		return model.PFInterestRate{}, err
	}

	var window *model.PFInterestRate
	for i := range rates {
		if rates[i].ID == rateID {
			window = &rates[i]
			break
		}
	}
	if window == nil {
		return model.PFInterestRate{}, apperrors.ErrInterestRateNotFound
	}

	if startDate != nil {
		window.StartDate = *startDate
	}
	if endDate != nil {
		window.EndDate = *endDate
	}
	if rate != nil {
		window.Rate = *rate
	}

	if err := s.pfRepo.UpdateInterestRate(*window); err != nil {
		return model.PFInterestRate{}, err
	}

	return *window, nil
}

// DeleteInterestRate removes a rate window.
func (s *PFService) DeleteInterestRate(rateID string) error {
	return s.pfRepo.DeleteInterestRate(rateID)
}

// GetLedger returns a user's ledger for one provident fund type.
func (s *PFService) GetLedger(userID, pfTypeID string) ([]model.PFEntry, error) {
	if _, err := s.pfRepo.GetPFTypeOnID(pfTypeID); err != nil {
		return nil, err
	}
	return s.pfRepo.GetEntriesOnUserAndType(userID, pfTypeID)
}

// DeleteLedger wipes a user's ledger for one provident fund type.
func (s *PFService) DeleteLedger(userID, pfTypeID string) error {
	if _, err := s.pfRepo.GetPFTypeOnID(pfTypeID); err != nil {
		return err
	}
	return s.pfRepo.DeleteEntriesOnUserAndType(userID, pfTypeID)
}

// SetupLedger bulk-creates fifteen years of monthly entries starting from
// startDate, each with the given deposit, and computes balances and interest
// from the stored rate table. Setup is refused when the ledger already has
// entries.
func (s *PFService) SetupLedger(userID, pfTypeID string, startDate time.Time, deposit float64) ([]model.PFEntry, error) {
	if _, err := s.pfRepo.GetPFTypeOnID(pfTypeID); err != nil {
		return nil, err
	}

	count, err := s.pfRepo.CountEntriesOnUserAndType(userID, pfTypeID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.ErrLedgerAlreadySetUp
	}

	rates, err := s.pfRepo.GetInterestRates()
	if err != nil {
		return nil, err
	}

	entries := make([]model.PFEntry, 0, setupYears*12)
	for month := 0; month < setupYears*12; month++ {
		entries = append(entries, model.PFEntry{
			ID:              uuid.New().String(),
			UserID:          userID,
			PFTypeID:        pfTypeID,
			Date:            startDate.AddDate(0, month, 0),
			AmountDeposited: deposit,
		})
	}

	entries = RecalculateLedger(entries, rates)

	if err := s.pfRepo.CreateEntries(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// UpdateEntry changes the deposit of one ledger entry, then recalculates the
// whole ledger: the entry's month interest follows the day-of-month rule and
// every later balance shifts. Returns the full recalculated ledger so the
// caller does not need a second read.
func (s *PFService) UpdateEntry(entryID string, amountDeposited float64) ([]model.PFEntry, error) {
	entry, err := s.pfRepo.GetEntryOnID(entryID)
	if err != nil {
		return nil, err
	}

	entries, err := s.pfRepo.GetEntriesOnUserAndType(entry.UserID, entry.PFTypeID)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].ID == entryID {
			entries[i].AmountDeposited = amountDeposited
			break
		}
	}

	rates, err := s.pfRepo.GetInterestRates()
	if err != nil {
		return nil, err
	}

	entries = RecalculateLedger(entries, rates)

	if err := s.pfRepo.UpdateEntries(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// RecalculateAll rebuilds balances and interest for every ledger in the
// system, for use after the rate table changes. Returns the number of
// ledgers recalculated.
func (s *PFService) RecalculateAll() (int, error) {
	keys, err := s.pfRepo.GetLedgerKeys()
	if err != nil {
		return 0, err
	}

	rates, err := s.pfRepo.GetInterestRates()
	if err != nil {
		return 0, err
	}

	for _, key := range keys {
		entries, err := s.pfRepo.GetEntriesOnUserAndType(key[0], key[1])
		if err != nil {
			return 0, err
		}

		entries = RecalculateLedger(entries, rates)

		if err := s.pfRepo.UpdateEntries(entries); err != nil {
			return 0, err
		}
	}

	return len(keys), nil
}

// GetYearwise returns a user's ledger grouped into financial years.
func (s *PFService) GetYearwise(userID, pfTypeID string) ([]FinancialYearGroup, error) {
	entries, err := s.GetLedger(userID, pfTypeID)
	if err != nil {
		return nil, err
	}
	return GroupByFinancialYear(entries), nil
}
