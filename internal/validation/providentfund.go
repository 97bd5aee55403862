package validation

import (
	"strings"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
)

// ValidateCreateInterestRate validates an interest rate window creation request.
// Contiguity with the previous window is a business rule checked in the
// service layer, which has the stored windows at hand.
func ValidateCreateInterestRate(req request.CreateInterestRateRequest) error {
	errors := make(map[string]string)

	start, startErr := validateDateField(errors, "startDate", req.StartDate)
	end, endErr := validateDateField(errors, "endDate", req.EndDate)

	if startErr == nil && endErr == nil && end.Before(start) {
		errors["endDate"] = "endDate must not be before startDate"
	}

	if req.Rate <= 0.0 {
		errors["rate"] = "rate must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateSetupLedger validates a bulk ledger setup request.
func ValidateSetupLedger(req request.SetupLedgerRequest) error {
	if err := ValidateUUID(req.UserID); err != nil {
		return err
	}
	if err := ValidateUUID(req.PFTypeID); err != nil {
		return err
	}

	errors := make(map[string]string)

	_, _ = validateDateField(errors, "startDate", req.StartDate)

	if req.Deposit < 0.0 {
		errors["deposit"] = "deposit cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdatePFEntry validates a ledger entry deposit edit.
func ValidateUpdatePFEntry(req request.UpdatePFEntryRequest) error {
	if req.AmountDeposited < 0.0 {
		return &Error{Fields: map[string]string{
			"amountDeposited": "amountDeposited cannot be negative",
		}}
	}
	return nil
}

// validateDateField parses a required YYYY-MM-DD field, recording problems
// into the shared error map.
func validateDateField(errors map[string]string, field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		errors[field] = field + " is required"
		return time.Time{}, ErrInvalidDate
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		errors[field] = err.Error()
		return time.Time{}, err
	}
	return date.UTC(), nil
}
