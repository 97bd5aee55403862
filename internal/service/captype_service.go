package service

import (
	"github.com/google/uuid"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
)

// CapTypeService handles cap type management.
type CapTypeService struct {
	capTypeRepo *repository.CapTypeRepository
}

// NewCapTypeService creates a new CapTypeService
func NewCapTypeService(capTypeRepo *repository.CapTypeRepository) *CapTypeService {
	return &CapTypeService{
		capTypeRepo: capTypeRepo,
	}
}

// GetCapTypes returns all cap types in display order (fixed priority for the
// well-known names, alphabetical for the rest).
func (s *CapTypeService) GetCapTypes() ([]model.CapType, error) {
	capTypes, err := s.capTypeRepo.GetCapTypes()
	if err != nil {
		return nil, err
	}
	return SortCapTypes(capTypes), nil
}

// CreateCapType creates a new cap type and returns it with its generated ID.
func (s *CapTypeService) CreateCapType(name string) (model.CapType, error) {
	capType := model.CapType{
		ID:   uuid.New().String(),
		Name: name,
	}

	if err := s.capTypeRepo.CreateCapType(capType); err != nil {
		return model.CapType{}, err
	}

	return capType, nil
}

// UpdateCapType renames a cap type.
func (s *CapTypeService) UpdateCapType(capTypeID, name string) (model.CapType, error) {
	capType := model.CapType{
		ID:   capTypeID,
		Name: name,
	}

	if err := s.capTypeRepo.UpdateCapType(capType); err != nil {
		return model.CapType{}, err
	}

	return capType, nil
}

// DeleteCapType removes a cap type. Cap types still referenced by funds
// cannot be deleted.
func (s *CapTypeService) DeleteCapType(capTypeID string) error {
	count, err := s.capTypeRepo.CountFundsOnCapType(capTypeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrCapTypeInUse
	}

	return s.capTypeRepo.DeleteCapType(capTypeID)
}
