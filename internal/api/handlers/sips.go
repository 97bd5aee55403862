package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/validation"
)

// SIPHandler handles HTTP requests for systematic investment plans.
type SIPHandler struct {
	sipService *service.SIPService
}

// NewSIPHandler creates a new SIPHandler
func NewSIPHandler(sipService *service.SIPService) *SIPHandler {
	return &SIPHandler{
		sipService: sipService,
	}
}

// SIPResponse represents a SIP in API responses
type SIPResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	FundID    string  `json:"fundId"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

// SIPListResponse represents a user's SIPs with the total monthly outflow
type SIPListResponse struct {
	Sips          []SIPResponse `json:"sips"`
	TotalPerMonth float64       `json:"totalPerMonth"`
}

func toSIPResponse(s model.SIPInfo) SIPResponse {
	return SIPResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		FundID:    s.FundID,
		Amount:    s.Amount,
		Frequency: s.Frequency,
	}
}

// SIPsPerUser handles GET requests to retrieve a user's SIPs.
// The response carries the total monthly-equivalent outflow across all SIPs.
//
// Endpoint: GET /api/sip/user/{uuid}
// Response: 200 OK with SIPListResponse
func (h *SIPHandler) SIPsPerUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	sips, totalPerMonth, err := h.sipService.GetSIPs(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve sips", err.Error())
		return
	}

	resp := SIPListResponse{
		Sips:          make([]SIPResponse, len(sips)),
		TotalPerMonth: totalPerMonth,
	}
	for i, s := range sips {
		resp.Sips[i] = toSIPResponse(s)
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateSIP handles POST requests to register a SIP.
func (h *SIPHandler) CreateSIP(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSIPRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSIP(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	sip, err := h.sipService.CreateSIP(req.UserID, req.FundID, req.Amount, req.Frequency)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create sip", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, toSIPResponse(sip))
}

// UpdateSIP handles PUT requests to update a SIP.
func (h *SIPHandler) UpdateSIP(w http.ResponseWriter, r *http.Request) {
	sipID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateSIPRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateSIP(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	sip, err := h.sipService.UpdateSIP(sipID, req.FundID, req.Amount, req.Frequency)
	if err != nil {
		if errors.Is(err, apperrors.ErrSIPNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSIPNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update sip", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toSIPResponse(sip))
}

// DeleteSIP handles DELETE requests to remove a SIP.
func (h *SIPHandler) DeleteSIP(w http.ResponseWriter, r *http.Request) {
	sipID := chi.URLParam(r, "uuid")

	if err := h.sipService.DeleteSIP(sipID); err != nil {
		if errors.Is(err, apperrors.ErrSIPNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSIPNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete sip", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
