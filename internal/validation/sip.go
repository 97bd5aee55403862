package validation

import (
	"fmt"
	"strings"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
)

// ValidSIPFrequency contains the allowed SIP frequency labels.
var ValidSIPFrequency = map[string]bool{
	"Daily": true, "Weekly": true, "BiWeekly": true, "Monthly": true,
}

// ValidateCreateSIP validates a SIP creation request.
//
// Required fields:
//   - userId, fundId: Must be valid UUIDs
//   - amount: Must be positive
//   - frequency: Must be one of: Daily, Weekly, BiWeekly, Monthly
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateSIP(req request.CreateSIPRequest) error {
	if err := ValidateUUID(req.UserID); err != nil {
		return err
	}
	if err := ValidateUUID(req.FundID); err != nil {
		return err
	}

	errors := make(map[string]string)

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if strings.TrimSpace(req.Frequency) == "" {
		errors["frequency"] = "frequency is required"
	} else if !ValidSIPFrequency[req.Frequency] {
		errors["frequency"] = fmt.Sprintf("invalid frequency: %s", req.Frequency)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateSIP validates a SIP update request.
// All fields are optional, but if provided they must meet the same constraints as create.
func ValidateUpdateSIP(req request.UpdateSIPRequest) error {
	if req.FundID != nil {
		if err := ValidateUUID(*req.FundID); err != nil {
			return err
		}
	}

	errors := make(map[string]string)

	if req.Amount != nil {
		if *req.Amount <= 0.0 {
			errors["amount"] = "amount must be positive"
		}
	}
	if req.Frequency != nil {
		if strings.TrimSpace(*req.Frequency) == "" {
			errors["frequency"] = "frequency is required"
		} else if !ValidSIPFrequency[*req.Frequency] {
			errors["frequency"] = fmt.Sprintf("invalid frequency: %s", *req.Frequency)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
