package service

import (
	"github.com/google/uuid"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/validation"
)

// AllocationService handles saved target allocations.
type AllocationService struct {
	allocationRepo *repository.AllocationRepository
	capTypeRepo    *repository.CapTypeRepository
}

// NewAllocationService creates a new AllocationService
func NewAllocationService(allocationRepo *repository.AllocationRepository, capTypeRepo *repository.CapTypeRepository) *AllocationService {
	return &AllocationService{
		allocationRepo: allocationRepo,
		capTypeRepo:    capTypeRepo,
	}
}

// GetAllocations returns a user's saved target allocations.
func (s *AllocationService) GetAllocations(userID string) ([]model.ExpectedAllocation, error) {
	return s.allocationRepo.GetAllocationsOnUserID(userID)
}

// SaveAllocations validates and replaces a user's saved allocations.
// A validation failure aborts the save and leaves the previously saved
// allocations untouched.
func (s *AllocationService) SaveAllocations(userID string, req request.SaveAllocationsRequest) ([]model.ExpectedAllocation, error) {
	capTypes, err := s.capTypeRepo.GetCapTypes()
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(capTypes))
	for _, capType := range capTypes {
		names[capType.ID] = capType.Name
	}

	if err := validation.ValidateSaveAllocations(req, names); err != nil {
		return nil, err
	}

	allocations := make([]model.ExpectedAllocation, len(req.Allocations))
	for i, item := range req.Allocations {
		allocations[i] = model.ExpectedAllocation{
			ID:         uuid.New().String(),
			UserID:     userID,
			CapTypeID:  item.CapTypeID,
			TargetPct:  item.TargetPct,
			ActivePct:  item.ActivePct,
			PassivePct: item.PassivePct,
		}
	}

	if err := s.allocationRepo.ReplaceAllocations(userID, allocations); err != nil {
		return nil, err
	}

	return allocations, nil
}
