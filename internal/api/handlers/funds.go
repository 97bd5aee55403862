package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/validation"
)

// FundHandler handles HTTP requests for fund metadata, the per-fund
// summary view and the cap type metrics view.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// FundResponse represents fund metadata in API responses
type FundResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol,omitempty"`
	CapTypeID       string `json:"capTypeId"`
	ActiveOrPassive string `json:"activeOrPassive"`
}

// Funds handles GET requests to retrieve all fund metadata.
func (h *FundHandler) Funds(w http.ResponseWriter, _ *http.Request) {
	funds, err := h.fundService.GetFunds()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve funds", err.Error())
		return
	}

	resp := make([]FundResponse, len(funds))
	for i, f := range funds {
		resp[i] = FundResponse{
			ID:              f.ID,
			Name:            f.Name,
			Symbol:          f.Symbol,
			CapTypeID:       f.CapTypeID,
			ActiveOrPassive: f.ActiveOrPassive,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateFund handles POST requests to register a new fund.
//
// Endpoint: POST /api/fund
// Response: 201 Created with FundResponse
// Error: 400 Bad Request if validation fails or the cap type does not exist
// Error: 500 Internal Server Error if creation fails
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.CreateFund(req.Name, req.Symbol, req.CapTypeID, req.ActiveOrPassive)
	if err != nil {
		if errors.Is(err, apperrors.ErrCapTypeNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCapTypeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create fund", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, FundResponse{
		ID:              fund.ID,
		Name:            fund.Name,
		Symbol:          fund.Symbol,
		CapTypeID:       fund.CapTypeID,
		ActiveOrPassive: fund.ActiveOrPassive,
	})
}

// UpdateFund handles PUT requests to update fund metadata.
//
// Endpoint: PUT /api/fund/{uuid}
// Response: 200 OK with FundResponse
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) UpdateFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.UpdateFund(fundID, req.Name, req.Symbol, req.CapTypeID, req.ActiveOrPassive)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrCapTypeNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCapTypeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update fund", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, FundResponse{
		ID:              fund.ID,
		Name:            fund.Name,
		Symbol:          fund.Symbol,
		CapTypeID:       fund.CapTypeID,
		ActiveOrPassive: fund.ActiveOrPassive,
	})
}

// DeleteFund handles DELETE requests to remove a fund.
// A fund with recorded entries cannot be deleted.
func (h *FundHandler) DeleteFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	if err := h.fundService.DeleteFund(fundID); err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrFundInUse) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrFundInUse.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete fund", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// FundSummaryResponse represents one fund's aggregated holdings
type FundSummaryResponse struct {
	FundID          string   `json:"fundId"`
	FundName        string   `json:"fundName"`
	CapTypeID       string   `json:"capTypeId"`
	ActiveOrPassive string   `json:"activeOrPassive"`
	Invested        float64  `json:"invested"`
	BalanceUnits    float64  `json:"balanceUnits"`
	TodayValue      float64  `json:"todayValue"`
	ProfitLoss      float64  `json:"profitLoss"`
	Nav             *float64 `json:"nav"`
}

// FundSummary handles GET requests for a user's per-fund summary rows.
// Supports optional ?sortBy=name|invested|balanceUnits|todayValue|profitLoss
// and ?order=asc|desc query parameters.
//
// Endpoint: GET /api/fund/summary/{uuid}
// Response: 200 OK with array of FundSummaryResponse
func (h *FundHandler) FundSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")
	sortBy := r.URL.Query().Get("sortBy")
	order := r.URL.Query().Get("order")

	summaries, err := h.fundService.GetFundSummaries(userID, sortBy, order)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve fund summary", err.Error())
		return
	}

	resp := make([]FundSummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = FundSummaryResponse{
			FundID:          s.FundID,
			FundName:        s.FundName,
			CapTypeID:       s.CapTypeID,
			ActiveOrPassive: s.ActiveOrPassive,
			Invested:        s.Invested,
			BalanceUnits:    s.BalanceUnits,
			TodayValue:      s.TodayValue,
			ProfitLoss:      s.ProfitLoss,
			Nav:             s.Nav,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// CrossTabCellResponse represents one cap type / management style cell
type CrossTabCellResponse struct {
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Pct        float64 `json:"pct"`
	SIPMonthly float64 `json:"sipMonthly"`
	Expected   float64 `json:"expected"`
}

// CrossTabRowResponse represents one cap type row of the metrics view
type CrossTabRowResponse struct {
	CapTypeID   string                 `json:"capTypeId"`
	CapTypeName string                 `json:"capTypeName"`
	Amount      float64                `json:"amount"`
	Pct         float64                `json:"pct"`
	TargetPct   float64                `json:"targetPct"`
	Expected    float64                `json:"expected"`
	Cells       []CrossTabCellResponse `json:"cells"`
}

// CrossTabResponse represents the full metrics view for a user
type CrossTabResponse struct {
	TotalInvested float64               `json:"totalInvested"`
	SIPMonthly    float64               `json:"sipMonthly"`
	Columns       []string              `json:"columns"`
	Rows          []CrossTabRowResponse `json:"rows"`
}

// FundMetrics handles GET requests for the cap type cross-tabulation.
//
// Endpoint: GET /api/fund/metrics/{uuid}
// Response: 200 OK with CrossTabResponse
func (h *FundHandler) FundMetrics(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	crossTab, err := h.fundService.GetFundMetrics(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve fund metrics", err.Error())
		return
	}

	rows := make([]CrossTabRowResponse, len(crossTab.Rows))
	for i, row := range crossTab.Rows {
		cells := make([]CrossTabCellResponse, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = CrossTabCellResponse{
				Label:      cell.Label,
				Amount:     cell.Amount,
				Pct:        cell.Pct,
				SIPMonthly: cell.SIPMonthly,
				Expected:   cell.Expected,
			}
		}
		rows[i] = CrossTabRowResponse{
			CapTypeID:   row.CapTypeID,
			CapTypeName: row.CapTypeName,
			Amount:      row.Amount,
			Pct:         row.Pct,
			TargetPct:   row.TargetPct,
			Expected:    row.Expected,
			Cells:       cells,
		}
	}

	respondJSON(w, http.StatusOK, CrossTabResponse{
		TotalInvested: crossTab.TotalInvested,
		SIPMonthly:    crossTab.SIPMonthly,
		Columns:       crossTab.Columns,
		Rows:          rows,
	})
}
