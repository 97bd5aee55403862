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

// GoldHandler handles HTTP requests for gold purchases.
type GoldHandler struct {
	goldService *service.GoldService
}

// NewGoldHandler creates a new GoldHandler
func NewGoldHandler(goldService *service.GoldService) *GoldHandler {
	return &GoldHandler{
		goldService: goldService,
	}
}

// GoldEntryResponse represents a gold purchase in API responses
type GoldEntryResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	PurchaseDate string  `json:"purchaseDate"`
	Grams        float64 `json:"grams"`
	Price        float64 `json:"price"`
	Comments     string  `json:"comments,omitempty"`
}

// GoldPortfolioResponse represents a user's purchases with position scalars
type GoldPortfolioResponse struct {
	Entries      []GoldEntryResponse `json:"entries"`
	TotalGrams   float64             `json:"totalGrams"`
	TotalCost    float64             `json:"totalCost"`
	AveragePrice float64             `json:"averagePrice"`
	TodayValue   float64             `json:"todayValue"`
	IsGain       bool                `json:"isGain"`
}

// GoldPriceResponse represents a market price observation
type GoldPriceResponse struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

func toGoldEntryResponse(e model.GoldEntry) GoldEntryResponse {
	return GoldEntryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		PurchaseDate: e.PurchaseDate.Format("2006-01-02"),
		Grams:        e.Grams,
		Price:        e.Price,
		Comments:     e.Comments,
	}
}

// Portfolio handles GET requests for a user's gold purchases and position.
//
// Endpoint: GET /api/gold/user/{uuid}
// Response: 200 OK with GoldPortfolioResponse
func (h *GoldHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	entries, position, err := h.goldService.GetPortfolio(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve gold portfolio", err.Error())
		return
	}

	resp := GoldPortfolioResponse{
		Entries:      make([]GoldEntryResponse, len(entries)),
		TotalGrams:   position.TotalGrams,
		TotalCost:    position.TotalCost,
		AveragePrice: position.AveragePrice,
		TodayValue:   position.TodayValue,
		IsGain:       position.IsGain,
	}
	for i, e := range entries {
		resp.Entries[i] = toGoldEntryResponse(e)
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateEntry handles POST requests to record a gold purchase.
func (h *GoldHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateGoldEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateGoldEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	purchaseDate, _ := validation.ParseDate(req.PurchaseDate)

	entry, err := h.goldService.CreateEntry(req.UserID, purchaseDate, req.Grams, req.Price, req.Comments)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create gold entry", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, toGoldEntryResponse(entry))
}

// UpdateEntry handles PUT requests to update a gold purchase.
func (h *GoldHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateGoldEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateGoldEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	var purchaseDate *time.Time
	if req.PurchaseDate != nil {
		parsed, err := validation.ParseDate(*req.PurchaseDate)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		purchaseDate = &parsed
	}

	entry, err := h.goldService.UpdateEntry(entryID, purchaseDate, req.Grams, req.Price, req.Comments)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoldEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoldEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update gold entry", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toGoldEntryResponse(entry))
}

// DeleteEntry handles DELETE requests to remove a gold purchase.
func (h *GoldHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	if err := h.goldService.DeleteEntry(entryID); err != nil {
		if errors.Is(err, apperrors.ErrGoldEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoldEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete gold entry", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// TodayPrice handles GET requests for the latest recorded market price.
//
// Endpoint: GET /api/gold/price
// Response: 200 OK with GoldPriceResponse
// Error: 404 Not Found when no price has been recorded yet
func (h *GoldHandler) TodayPrice(w http.ResponseWriter, _ *http.Request) {
	price, err := h.goldService.GetTodayPrice()
	if err != nil {
		if errors.Is(err, apperrors.ErrGoldPriceNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoldPriceNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve gold price", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, GoldPriceResponse{
		Date:  price.Date.Format("2006-01-02"),
		Price: price.Price,
	})
}

// SetTodayPrice handles PUT requests to record the market price for a date.
func (h *GoldHandler) SetTodayPrice(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetGoldPriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSetGoldPrice(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, _ := validation.ParseDate(req.Date)

	price, err := h.goldService.SetTodayPrice(date, req.Price)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to set gold price", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, GoldPriceResponse{
		Date:  price.Date.Format("2006-01-02"),
		Price: price.Price,
	})
}
