package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/validation"
)

// AllocationHandler handles HTTP requests for saved target allocations.
type AllocationHandler struct {
	allocationService *service.AllocationService
}

// NewAllocationHandler creates a new AllocationHandler
func NewAllocationHandler(allocationService *service.AllocationService) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
	}
}

// AllocationResponse represents one saved target allocation
type AllocationResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	CapTypeID  string  `json:"capTypeId"`
	TargetPct  float64 `json:"targetPct"`
	ActivePct  float64 `json:"activePct"`
	PassivePct float64 `json:"passivePct"`
}

func toAllocationResponses(allocations []model.ExpectedAllocation) []AllocationResponse {
	resp := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		resp[i] = AllocationResponse{
			ID:         a.ID,
			UserID:     a.UserID,
			CapTypeID:  a.CapTypeID,
			TargetPct:  a.TargetPct,
			ActivePct:  a.ActivePct,
			PassivePct: a.PassivePct,
		}
	}
	return resp
}

// AllocationsPerUser handles GET requests for a user's saved allocations.
//
// Endpoint: GET /api/allocation/user/{uuid}
// Response: 200 OK with array of AllocationResponse
func (h *AllocationHandler) AllocationsPerUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	allocations, err := h.allocationService.GetAllocations(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve allocations", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toAllocationResponses(allocations))
}

// SaveAllocations handles PUT requests to replace a user's saved allocations.
// Target percentages must total 100 and each cap type's active/passive split
// must total 100 whenever either side is nonzero. A validation failure leaves
// the previously saved rows untouched.
//
// Endpoint: PUT /api/allocation/user/{uuid}
// Response: 200 OK with array of AllocationResponse
// Error: 400 Bad Request naming the offending cap type and computed total
func (h *AllocationHandler) SaveAllocations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.SaveAllocationsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	allocations, err := h.allocationService.SaveAllocations(userID, req)
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to save allocations", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toAllocationResponses(allocations))
}
