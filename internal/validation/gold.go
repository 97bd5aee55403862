package validation

import (
	"strings"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
)

// ValidateCreateGoldEntry validates a gold purchase creation request.
//
// Required fields:
//   - userId: Must be a valid UUID
//   - purchaseDate: Must be in YYYY-MM-DD format
//   - grams: Must be positive
//   - price: Must be positive (total purchase price, not per gram)
func ValidateCreateGoldEntry(req request.CreateGoldEntryRequest) error {
	if err := ValidateUUID(req.UserID); err != nil {
		return err
	}

	errors := make(map[string]string)

	if strings.TrimSpace(req.PurchaseDate) == "" {
		errors["purchaseDate"] = "purchaseDate is required"
	}
	_, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		errors["purchaseDate"] = err.Error()
	}

	if req.Grams <= 0.0 {
		errors["grams"] = "grams must be positive"
	}

	if req.Price <= 0.0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateGoldEntry validates a gold purchase update request.
// All fields are optional, but if provided they must meet the same constraints as create.
func ValidateUpdateGoldEntry(req request.UpdateGoldEntryRequest) error {
	errors := make(map[string]string)

	if req.PurchaseDate != nil {
		if strings.TrimSpace(*req.PurchaseDate) == "" {
			errors["purchaseDate"] = "purchaseDate is required"
		}
		_, err := time.Parse("2006-01-02", *req.PurchaseDate)
		if err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}
	if req.Grams != nil && *req.Grams <= 0.0 {
		errors["grams"] = "grams must be positive"
	}
	if req.Price != nil && *req.Price <= 0.0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateSetGoldPrice validates a market price update.
func ValidateSetGoldPrice(req request.SetGoldPriceRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	}
	_, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		errors["date"] = err.Error()
	}

	if req.Price <= 0.0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
