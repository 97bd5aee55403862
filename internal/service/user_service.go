package service

import (
	"github.com/google/uuid"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
)

// UserService handles user-related operations
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUsers returns all users.
func (s *UserService) GetUsers() ([]model.User, error) {
	return s.userRepo.GetUsers()
}

// CreateUser creates a new user and returns it with its generated ID.
func (s *UserService) CreateUser(name string) (model.User, error) {
	user := model.User{
		ID:   uuid.New().String(),
		Name: name,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

// DeleteUser removes a user and all their dependent records.
func (s *UserService) DeleteUser(userID string) error {
	return s.userRepo.DeleteUser(userID)
}
