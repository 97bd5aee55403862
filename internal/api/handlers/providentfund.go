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

// PFHandler handles HTTP requests for provident fund ledgers.
type PFHandler struct {
	pfService *service.PFService
}

// NewPFHandler creates a new PFHandler
func NewPFHandler(pfService *service.PFService) *PFHandler {
	return &PFHandler{
		pfService: pfService,
	}
}

// PFTypeResponse represents a provident fund ledger kind
type PFTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InterestRateResponse represents an interest rate window
type InterestRateResponse struct {
	ID        string  `json:"id"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Rate      float64 `json:"rate"`
}

// PFEntryResponse represents one month of a ledger
type PFEntryResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	PFTypeID        string  `json:"pfTypeId"`
	Date            string  `json:"date"`
	OpeningBalance  float64 `json:"openingBalance"`
	LowestBalance   float64 `json:"lowestBalance"`
	CurrentBalance  float64 `json:"currentBalance"`
	AmountDeposited float64 `json:"amountDeposited"`
	MonthInterest   float64 `json:"monthInterest"`
	InterestRateID  *string `json:"interestRateId"`
}

// YearwiseGroupResponse represents one financial year of a ledger
type YearwiseGroupResponse struct {
	Label          string            `json:"label"`
	StartYear      int               `json:"startYear"`
	OpeningBalance float64           `json:"openingBalance"`
	TotalDeposited float64           `json:"totalDeposited"`
	TotalInterest  float64           `json:"totalInterest"`
	ClosingBalance float64           `json:"closingBalance"`
	Entries        []PFEntryResponse `json:"entries"`
}

func toInterestRateResponse(rate model.PFInterestRate) InterestRateResponse {
	return InterestRateResponse{
		ID:        rate.ID,
		StartDate: rate.StartDate.Format("2006-01-02"),
		EndDate:   rate.EndDate.Format("2006-01-02"),
		Rate:      rate.Rate,
	}
}

func toPFEntryResponses(entries []model.PFEntry) []PFEntryResponse {
	resp := make([]PFEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = PFEntryResponse{
			ID:              e.ID,
			UserID:          e.UserID,
			PFTypeID:        e.PFTypeID,
			Date:            e.Date.Format("2006-01-02"),
			OpeningBalance:  e.OpeningBalance,
			LowestBalance:   e.LowestBalance,
			CurrentBalance:  e.CurrentBalance,
			AmountDeposited: e.AmountDeposited,
			MonthInterest:   e.MonthInterest,
			InterestRateID:  e.InterestRateID,
		}
	}
	return resp
}

// Types handles GET requests to list the provident fund ledger kinds.
func (h *PFHandler) Types(w http.ResponseWriter, _ *http.Request) {
	types, err := h.pfService.GetTypes()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve pf types", err.Error())
		return
	}

	resp := make([]PFTypeResponse, len(types))
	for i, t := range types {
		resp[i] = PFTypeResponse{ID: t.ID, Name: t.Name}
	}

	respondJSON(w, http.StatusOK, resp)
}

// InterestRates handles GET requests to list interest rate windows.
func (h *PFHandler) InterestRates(w http.ResponseWriter, _ *http.Request) {
	rates, err := h.pfService.GetInterestRates()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve interest rates", err.Error())
		return
	}

	resp := make([]InterestRateResponse, len(rates))
	for i, rate := range rates {
		resp[i] = toInterestRateResponse(rate)
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateInterestRate handles POST requests to add an interest rate window.
// The new window must start the day after the latest window ends.
//
// Endpoint: POST /api/pf/interest
// Response: 201 Created with InterestRateResponse
// Error: 400 Bad Request if validation fails or the window is not contiguous
func (h *PFHandler) CreateInterestRate(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInterestRateRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInterestRate(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	startDate, _ := validation.ParseDate(req.StartDate)
	endDate, _ := validation.ParseDate(req.EndDate)

	rate, err := h.pfService.CreateInterestRate(startDate, endDate, req.Rate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNonContiguousRate) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrNonContiguousRate.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create interest rate", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, toInterestRateResponse(rate))
}

// UpdateInterestRate handles PUT requests to update an interest rate window.
func (h *PFHandler) UpdateInterestRate(w http.ResponseWriter, r *http.Request) {
	rateID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateInterestRateRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var startDate, endDate *time.Time
	if req.StartDate != nil {
		parsed, err := validation.ParseDate(*req.StartDate)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		startDate = &parsed
	}
	if req.EndDate != nil {
		parsed, err := validation.ParseDate(*req.EndDate)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		endDate = &parsed
	}

	rate, err := h.pfService.UpdateInterestRate(rateID, startDate, endDate, req.Rate)
	if err != nil {
		if errors.Is(err, apperrors.ErrInterestRateNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInterestRateNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update interest rate", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toInterestRateResponse(rate))
}

// DeleteInterestRate handles DELETE requests to remove an interest rate window.
func (h *PFHandler) DeleteInterestRate(w http.ResponseWriter, r *http.Request) {
	rateID := chi.URLParam(r, "uuid")

	if err := h.pfService.DeleteInterestRate(rateID); err != nil {
		if errors.Is(err, apperrors.ErrInterestRateNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInterestRateNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete interest rate", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Ledger handles GET requests for a user's ledger of one pf type.
//
// Endpoint: GET /api/pf/user/{uuid}/type/{typeuuid}
// Response: 200 OK with array of PFEntryResponse
func (h *PFHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")
	pfTypeID := chi.URLParam(r, "typeuuid")

	if err := validation.ValidateUUID(pfTypeID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
		return
	}

	entries, err := h.pfService.GetLedger(userID, pfTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPFTypeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPFTypeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve ledger", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toPFEntryResponses(entries))
}

// DeleteLedger handles DELETE requests to wipe a user's ledger of one pf type.
func (h *PFHandler) DeleteLedger(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")
	pfTypeID := chi.URLParam(r, "typeuuid")

	if err := validation.ValidateUUID(pfTypeID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
		return
	}

	if err := h.pfService.DeleteLedger(userID, pfTypeID); err != nil {
		if errors.Is(err, apperrors.ErrPFTypeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPFTypeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete ledger", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// SetupLedger handles POST requests to bulk-create a ledger: fifteen years
// of monthly entries from the start date, balances computed from the stored
// rate table.
//
// Endpoint: POST /api/pf/setup
// Response: 201 Created with array of PFEntryResponse
// Error: 400 Bad Request if the ledger already has entries
func (h *PFHandler) SetupLedger(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetupLedgerRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSetupLedger(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	startDate, _ := validation.ParseDate(req.StartDate)

	entries, err := h.pfService.SetupLedger(req.UserID, req.PFTypeID, startDate, req.Deposit)
	if err != nil {
		if errors.Is(err, apperrors.ErrPFTypeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPFTypeNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrLedgerAlreadySetUp) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrLedgerAlreadySetUp.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to set up ledger", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, toPFEntryResponses(entries))
}

// UpdateEntry handles PUT requests to change one entry's deposit. The whole
// ledger is recalculated and returned so the caller sees the shifted
// balances without a second request.
//
// Endpoint: PUT /api/pf/entry/{uuid}
// Response: 200 OK with the full recalculated array of PFEntryResponse
// Error: 404 Not Found if the entry does not exist
func (h *PFHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePFEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdatePFEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entries, err := h.pfService.UpdateEntry(entryID, req.AmountDeposited)
	if err != nil {
		if errors.Is(err, apperrors.ErrPFEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPFEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update pf entry", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toPFEntryResponses(entries))
}

// Recalculate handles POST requests to rebuild every ledger from the rate
// table, for use after rate windows change.
func (h *PFHandler) Recalculate(w http.ResponseWriter, _ *http.Request) {
	count, err := h.pfService.RecalculateAll()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to recalculate ledgers", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"recalculated": count})
}

// Yearwise handles GET requests for a ledger grouped into financial years.
//
// Endpoint: GET /api/pf/user/{uuid}/type/{typeuuid}/yearwise
// Response: 200 OK with array of YearwiseGroupResponse
func (h *PFHandler) Yearwise(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")
	pfTypeID := chi.URLParam(r, "typeuuid")

	if err := validation.ValidateUUID(pfTypeID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
		return
	}

	groups, err := h.pfService.GetYearwise(userID, pfTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPFTypeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPFTypeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve yearwise ledger", err.Error())
		return
	}

	resp := make([]YearwiseGroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = YearwiseGroupResponse{
			Label:          g.Label,
			StartYear:      g.StartYear,
			OpeningBalance: g.OpeningBalance,
			TotalDeposited: g.TotalDeposited,
			TotalInterest:  g.TotalInterest,
			ClosingBalance: g.ClosingBalance,
			Entries:        toPFEntryResponses(g.Entries),
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
