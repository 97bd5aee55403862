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

// CapTypeHandler handles cap type HTTP requests
type CapTypeHandler struct {
	capTypeService *service.CapTypeService
}

// NewCapTypeHandler creates a new CapTypeHandler
func NewCapTypeHandler(capTypeService *service.CapTypeService) *CapTypeHandler {
	return &CapTypeHandler{
		capTypeService: capTypeService,
	}
}

// CapTypeResponse represents a cap type in API responses
type CapTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CapTypes handles GET requests to retrieve all cap types in display order.
func (h *CapTypeHandler) CapTypes(w http.ResponseWriter, _ *http.Request) {
	capTypes, err := h.capTypeService.GetCapTypes()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve cap types", err.Error())
		return
	}

	resp := make([]CapTypeResponse, len(capTypes))
	for i, c := range capTypes {
		resp[i] = CapTypeResponse{ID: c.ID, Name: c.Name}
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateCapType handles POST requests to create a new cap type.
func (h *CapTypeHandler) CreateCapType(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateCapTypeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "name is required")
		return
	}

	capType, err := h.capTypeService.CreateCapType(req.Name)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create cap type", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, CapTypeResponse{ID: capType.ID, Name: capType.Name})
}

// UpdateCapType handles PUT requests to rename a cap type.
func (h *CapTypeHandler) UpdateCapType(w http.ResponseWriter, r *http.Request) {
	capTypeID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateCapTypeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "name is required")
		return
	}

	capType, err := h.capTypeService.UpdateCapType(capTypeID, req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrCapTypeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCapTypeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update cap type", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, CapTypeResponse{ID: capType.ID, Name: capType.Name})
}

// DeleteCapType handles DELETE requests to remove a cap type.
// A cap type referenced by any fund cannot be deleted.
func (h *CapTypeHandler) DeleteCapType(w http.ResponseWriter, r *http.Request) {
	capTypeID := chi.URLParam(r, "uuid")

	if err := h.capTypeService.DeleteCapType(capTypeID); err != nil {
		if errors.Is(err, apperrors.ErrCapTypeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCapTypeNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrCapTypeInUse) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCapTypeInUse.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete cap type", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
