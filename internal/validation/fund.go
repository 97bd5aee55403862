package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
)

// ValidInvestType contains the allowed fund entry types.
var ValidInvestType = map[string]bool{
	"Invest": true, "Redeem": true,
}

// ValidateCreateFund validates a fund metadata creation request.
//
// Required fields:
//   - name: Non-empty, 255 characters or less
//   - capTypeId: Must be a valid UUID
//   - activeOrPassive: Non-empty management style label
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateFund(req request.CreateFundRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 255 {
		errors["name"] = "name must be 255 characters or less"
	}

	if err := ValidateUUID(req.CapTypeID); err != nil {
		errors["capTypeId"] = err.Error()
	}

	if strings.TrimSpace(req.ActiveOrPassive) == "" {
		errors["activeOrPassive"] = "activeOrPassive is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateFund validates a fund metadata update request.
// All fields are optional, but if provided they must meet the same constraints as create.
func ValidateUpdateFund(req request.UpdateFundRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name is required"
		} else if len(*req.Name) > 255 {
			errors["name"] = "name must be 255 characters or less"
		}
	}
	if req.CapTypeID != nil {
		if err := ValidateUUID(*req.CapTypeID); err != nil {
			errors["capTypeId"] = err.Error()
		}
	}
	if req.ActiveOrPassive != nil {
		if strings.TrimSpace(*req.ActiveOrPassive) == "" {
			errors["activeOrPassive"] = "activeOrPassive is required"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateCreateEntry validates a fund entry creation request.
//
// Required fields:
//   - userId, fundId: Must be valid UUIDs
//   - date: Must be in YYYY-MM-DD format
//   - investType: Must be Invest or Redeem
//   - amount: Must be positive
func ValidateCreateEntry(req request.CreateEntryRequest) error {
	if err := ValidateUUID(req.UserID); err != nil {
		return err
	}
	if err := ValidateUUID(req.FundID); err != nil {
		return err
	}

	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	}
	_, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.InvestType) == "" {
		errors["investType"] = "investType is required"
	} else if !ValidInvestType[req.InvestType] {
		errors["investType"] = fmt.Sprintf("invalid investType: %s", req.InvestType)
	}

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if req.BalanceUnit != nil && *req.BalanceUnit < 0.0 {
		errors["balanceUnit"] = "balanceUnit cannot be negative"
	}

	if req.PrincipalRedeem != nil && *req.PrincipalRedeem < 0.0 {
		errors["principalRedeem"] = "principalRedeem cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateEntry validates a fund entry update request.
// All fields are optional, but if provided they must meet the same constraints as create.
func ValidateUpdateEntry(req request.UpdateEntryRequest) error {
	if req.FundID != nil {
		if err := ValidateUUID(*req.FundID); err != nil {
			return err
		}
	}

	errors := make(map[string]string)

	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date is required"
		}
		_, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.InvestType != nil {
		if strings.TrimSpace(*req.InvestType) == "" {
			errors["investType"] = "investType is required"
		} else if !ValidInvestType[*req.InvestType] {
			errors["investType"] = fmt.Sprintf("invalid investType: %s", *req.InvestType)
		}
	}
	if req.Amount != nil {
		if *req.Amount <= 0.0 {
			errors["amount"] = "amount must be positive"
		}
	}
	if req.BalanceUnit != nil && *req.BalanceUnit < 0.0 {
		errors["balanceUnit"] = "balanceUnit cannot be negative"
	}
	if req.PrincipalRedeem != nil && *req.PrincipalRedeem < 0.0 {
		errors["principalRedeem"] = "principalRedeem cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
