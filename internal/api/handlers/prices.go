package handlers

import (
	"errors"
	"net/http"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
)

// PriceHandler handles HTTP requests for NAV refreshes and the provider
// configuration.
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// Refresh handles POST requests to fetch the latest NAV for every fund with
// a lookup symbol. Failed symbols are reported in the result; NAVs fetched
// before a failure stay saved.
//
// Endpoint: POST /api/price/refresh
// Response: 200 OK with RefreshResult
// Error: 400 Bad Request if the provider is configured but disabled
func (h *PriceHandler) Refresh(w http.ResponseWriter, _ *http.Request) {
	result, err := h.priceService.RefreshAll()
	if err != nil {
		if errors.Is(err, apperrors.ErrProviderDisabled) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrProviderDisabled.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh prices", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Provider handles GET requests for the provider configuration status.
// The stored token is never echoed back.
func (h *PriceHandler) Provider(w http.ResponseWriter, _ *http.Request) {
	status, err := h.priceService.GetProvider()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve provider configuration", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// SetProvider handles PUT requests to store the provider configuration.
// The token is encrypted before it is written.
func (h *PriceHandler) SetProvider(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetProviderRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	status, err := h.priceService.SetProvider(req.APIToken, req.Enabled)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to save provider configuration", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, status)
}
