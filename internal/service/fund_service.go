package service

import (
	"sort"

	"github.com/google/uuid"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
)

// FundService handles fund metadata management and the derived fund views:
// per-fund summaries and the cap type cross-tab. The derivations themselves
// live in the pure engines (AggregateFundSummaries, BuildCapTypeCrossTab);
// this service only loads data and hands it over.
type FundService struct {
	fundRepo       *repository.FundRepository
	capTypeRepo    *repository.CapTypeRepository
	entryRepo      *repository.EntryRepository
	sipRepo        *repository.SIPRepository
	allocationRepo *repository.AllocationRepository
}

// NewFundService creates a new FundService
func NewFundService(
	fundRepo *repository.FundRepository,
	capTypeRepo *repository.CapTypeRepository,
	entryRepo *repository.EntryRepository,
	sipRepo *repository.SIPRepository,
	allocationRepo *repository.AllocationRepository,
) *FundService {
	return &FundService{
		fundRepo:       fundRepo,
		capTypeRepo:    capTypeRepo,
		entryRepo:      entryRepo,
		sipRepo:        sipRepo,
		allocationRepo: allocationRepo,
	}
}

// GetFunds returns all fund metadata rows.
func (s *FundService) GetFunds() ([]model.FundMetadata, error) {
	return s.fundRepo.GetFunds()
}

// CreateFund creates a new fund after verifying its cap type exists.
func (s *FundService) CreateFund(name, symbol, capTypeID, activeOrPassive string) (model.FundMetadata, error) {
	if _, err := s.capTypeRepo.GetCapTypeOnID(capTypeID); err != nil {
		return model.FundMetadata{}, err
	}

	fund := model.FundMetadata{
		ID:              uuid.New().String(),
		Name:            name,
		Symbol:          symbol,
		CapTypeID:       capTypeID,
		ActiveOrPassive: activeOrPassive,
	}

	if err := s.fundRepo.CreateFund(fund); err != nil {
		return model.FundMetadata{}, err
	}

	return fund, nil
}

// UpdateFund applies the non-nil fields onto the stored fund.
func (s *FundService) UpdateFund(fundID string, name, symbol, capTypeID, activeOrPassive *string) (model.FundMetadata, error) {
	fund, err := s.fundRepo.GetFundOnID(fundID)
	if err != nil {
		return model.FundMetadata{}, err
	}

	if name != nil {
		fund.Name = *name
	}
	if symbol != nil {
		fund.Symbol = *symbol
	}
	if capTypeID != nil {
		if _, err := s.capTypeRepo.GetCapTypeOnID(*capTypeID); err != nil {
			return model.FundMetadata{}, err
		}
		fund.CapTypeID = *capTypeID
	}
	if activeOrPassive != nil {
		fund.ActiveOrPassive = *activeOrPassive
	}

	if err := s.fundRepo.UpdateFund(fund); err != nil {
		return model.FundMetadata{}, err
	}

	return fund, nil
}

// DeleteFund removes a fund. Funds with recorded entries cannot be deleted.
func (s *FundService) DeleteFund(fundID string) error {
	count, err := s.fundRepo.CountEntriesOnFund(fundID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrFundInUse
	}

	return s.fundRepo.DeleteFund(fundID)
}

// GetFundSummaries aggregates a user's entries into per-fund summary rows.
// sortBy may be one of: name, invested, balanceUnits, todayValue, profitLoss;
// an empty sortBy keeps the engine's metadata order. order is "desc" for
// descending, anything else sorts ascending.
func (s *FundService) GetFundSummaries(userID, sortBy, order string) ([]FundSummary, error) {
	entries, err := s.entryRepo.GetEntriesOnUserID(userID)
	if err != nil {
		return nil, err
	}

	funds, err := s.fundRepo.GetFunds()
	if err != nil {
		return nil, err
	}

	navs, err := s.fundRepo.GetLatestNavs()
	if err != nil {
		return nil, err
	}

	summaries := AggregateFundSummaries(entries, funds, navs)
	sortFundSummaries(summaries, sortBy, order)

	return summaries, nil
}

// GetFundMetrics builds the cap type cross-tab for a user from their fund
// summaries, SIPs and saved allocations.
func (s *FundService) GetFundMetrics(userID string) (CrossTab, error) {
	summaries, err := s.GetFundSummaries(userID, "", "")
	if err != nil {
		return CrossTab{}, err
	}

	capTypes, err := s.capTypeRepo.GetCapTypes()
	if err != nil {
		return CrossTab{}, err
	}

	sips, err := s.sipRepo.GetSIPsOnUserID(userID)
	if err != nil {
		return CrossTab{}, err
	}

	allocations, err := s.allocationRepo.GetAllocationsOnUserID(userID)
	if err != nil {
		return CrossTab{}, err
	}

	sipMonthlyByFund := make(map[string]float64, len(sips))
	for _, sip := range sips {
		sipMonthlyByFund[sip.FundID] += MonthlyEquivalent(sip.Amount, sip.Frequency)
	}

	return BuildCapTypeCrossTab(summaries, capTypes, sipMonthlyByFund, allocations), nil
}

// sortFundSummaries orders summary rows in place by the requested field.
func sortFundSummaries(summaries []FundSummary, sortBy, order string) {
	if sortBy == "" {
		return
	}

	less := func(i, j int) bool {
		switch sortBy {
		case "name":
			return summaries[i].FundName < summaries[j].FundName
		case "invested":
			return summaries[i].Invested < summaries[j].Invested
		case "balanceUnits":
			return summaries[i].BalanceUnits < summaries[j].BalanceUnits
		case "todayValue":
			return summaries[i].TodayValue < summaries[j].TodayValue
		case "profitLoss":
			return summaries[i].ProfitLoss < summaries[j].ProfitLoss
		default:
			return false
		}
	}

	if order == "desc" {
		sort.SliceStable(summaries, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(summaries, less)
	}
}
