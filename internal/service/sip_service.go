package service

import (
	"github.com/google/uuid"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
)

// SIPService handles systematic investment plan management.
type SIPService struct {
	sipRepo  *repository.SIPRepository
	fundRepo *repository.FundRepository
}

// NewSIPService creates a new SIPService
func NewSIPService(sipRepo *repository.SIPRepository, fundRepo *repository.FundRepository) *SIPService {
	return &SIPService{
		sipRepo:  sipRepo,
		fundRepo: fundRepo,
	}
}

// GetSIPs returns a user's SIPs with the total monthly-equivalent outflow.
// SIPs with unrecognized frequencies contribute zero to the total.
func (s *SIPService) GetSIPs(userID string) ([]model.SIPInfo, float64, error) {
	sips, err := s.sipRepo.GetSIPsOnUserID(userID)
	if err != nil {
		return nil, 0, err
	}

	total := 0.0
	for _, sip := range sips {
		total += MonthlyEquivalent(sip.Amount, sip.Frequency)
	}

	return sips, round(total), nil
}

// CreateSIP registers a new SIP after verifying the fund exists.
func (s *SIPService) CreateSIP(userID, fundID string, amount float64, frequency string) (model.SIPInfo, error) {
	if _, err := s.fundRepo.GetFundOnID(fundID); err != nil {
		return model.SIPInfo{}, err
	}

	sip := model.SIPInfo{
		ID:        uuid.New().String(),
		UserID:    userID,
		FundID:    fundID,
		Amount:    amount,
		Frequency: frequency,
	}

	if err := s.sipRepo.CreateSIP(sip); err != nil {
		return model.SIPInfo{}, err
	}

	return sip, nil
}

// UpdateSIP applies the non-nil fields onto the stored SIP.
func (s *SIPService) UpdateSIP(sipID string, fundID *string, amount *float64, frequency *string) (model.SIPInfo, error) {
	sip, err := s.sipRepo.GetSIPOnID(sipID)
	if err != nil {
		return model.SIPInfo{}, err
	}

	if fundID != nil {
		if _, err := s.fundRepo.GetFundOnID(*fundID); err != nil {
			return model.SIPInfo{}, err
		}
		sip.FundID = *fundID
	}
	if amount != nil {
		sip.Amount = *amount
	}
	if frequency != nil {
		sip.Frequency = *frequency
	}

	if err := s.sipRepo.UpdateSIP(sip); err != nil {
		return model.SIPInfo{}, err
	}

	return sip, nil
}

// DeleteSIP removes a SIP.
func (s *SIPService) DeleteSIP(sipID string) error {
	return s.sipRepo.DeleteSIP(sipID)
}
