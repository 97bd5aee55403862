package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/validation"
)

// EntryHandler handles HTTP requests for fund entries.
type EntryHandler struct {
	entryService *service.EntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// EntryResponse represents a fund entry in API responses
type EntryResponse struct {
	ID              string   `json:"id"`
	UserID          string   `json:"userId"`
	FundID          string   `json:"fundId"`
	Date            string   `json:"date"`
	InvestType      string   `json:"investType"`
	Amount          float64  `json:"amount"`
	Nav             *float64 `json:"nav"`
	Units           *float64 `json:"units"`
	BalanceUnit     *float64 `json:"balanceUnit"`
	PrincipalRedeem *float64 `json:"principalRedeem"`
}

func toEntryResponse(e model.FundEntry) EntryResponse {
	return EntryResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		FundID:          e.FundID,
		Date:            e.Date.Format("2006-01-02"),
		InvestType:      e.InvestType,
		Amount:          e.Amount,
		Nav:             e.Nav,
		Units:           e.Units,
		BalanceUnit:     e.BalanceUnit,
		PrincipalRedeem: e.PrincipalRedeem,
	}
}

// EntriesPerUser handles GET requests to retrieve all fund entries for a user.
//
// Endpoint: GET /api/entry/user/{uuid}
// Response: 200 OK with array of EntryResponse
func (h *EntryHandler) EntriesPerUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	entries, err := h.entryService.GetEntries(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve entries", err.Error())
		return
	}

	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateEntry handles POST requests to record a fund entry.
// Invest entries arriving without a NAV are backfilled from the latest
// stored NAV for the fund.
//
// Endpoint: POST /api/entry
// Response: 201 Created with EntryResponse
// Error: 400 Bad Request if validation fails or the fund does not exist
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.entryService.CreateEntry(req.UserID, req.FundID, date, req.InvestType, req.Amount, req.Nav, req.Units, req.BalanceUnit, req.PrincipalRedeem)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create entry", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// UpdateEntry handles PUT requests to update a fund entry.
// A changed amount recomputes units and balance units from the stored NAV
// unless the caller supplied them.
//
// Endpoint: PUT /api/entry/{uuid}
// Response: 200 OK with EntryResponse
// Error: 404 Not Found if the entry does not exist
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := validation.ParseDate(*req.Date)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		date = &parsed
	}

	entry, err := h.entryService.UpdateEntry(entryID, req.FundID, date, req.InvestType, req.Amount, req.Nav, req.Units, req.BalanceUnit, req.PrincipalRedeem)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundEntryNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update entry", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toEntryResponse(entry))
}

// DeleteEntry handles DELETE requests to remove a fund entry.
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	if err := h.entryService.DeleteEntry(entryID); err != nil {
		if errors.Is(err, apperrors.ErrFundEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete entry", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
