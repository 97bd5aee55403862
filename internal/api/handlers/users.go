package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Users handles GET requests to retrieve all users.
func (h *UserHandler) Users(w http.ResponseWriter, _ *http.Request) {
	users, err := h.userService.GetUsers()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve users", err.Error())
		return
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = UserResponse{ID: u.ID, Name: u.Name}
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateUser handles POST requests to create a new user.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateUserRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "name is required")
		return
	}

	user, err := h.userService.CreateUser(req.Name)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, UserResponse{ID: user.ID, Name: user.Name})
}

// DeleteUser handles DELETE requests to remove a user.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	if err := h.userService.DeleteUser(userID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete user", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
