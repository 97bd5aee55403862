package validation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
)

// splitTolerance absorbs floating point drift when checking percentage sums.
const splitTolerance = 0.01

// ValidateSaveAllocations validates an allocation save request against two rules:
//
//  1. For every cap type where either split is nonzero, the active and passive
//     splits must sum to 100 (within tolerance).
//  2. The target percentages across all cap types must sum to 100 (within
//     tolerance).
//
// capTypeNames maps cap type IDs to display names so failure messages can
// name the offending cap type. Failures return a *Error whose "allocations"
// field carries the message the client surfaces to the user, e.g.:
//
//	Active/Passive split for Mid must equal 100%. Current total: 87%
func ValidateSaveAllocations(req request.SaveAllocationsRequest, capTypeNames map[string]string) error {
	if len(req.Allocations) == 0 {
		return &Error{Fields: map[string]string{
			"allocations": "at least one allocation is required",
		}}
	}

	targetTotal := 0.0
	for _, item := range req.Allocations {
		if err := ValidateUUID(item.CapTypeID); err != nil {
			return &Error{Fields: map[string]string{"capTypeId": err.Error()}}
		}
		if item.TargetPct < 0 || item.ActivePct < 0 || item.PassivePct < 0 {
			return &Error{Fields: map[string]string{
				"allocations": "allocation percentages cannot be negative",
			}}
		}

		if item.ActivePct != 0 || item.PassivePct != 0 {
			split := item.ActivePct + item.PassivePct
			if math.Abs(split-100) > splitTolerance {
				name := capTypeNames[item.CapTypeID]
				if name == "" {
					name = item.CapTypeID
				}
				return &Error{Fields: map[string]string{
					"allocations": fmt.Sprintf(
						"Active/Passive split for %s must equal 100%%. Current total: %s%%",
						name, formatPct(split),
					),
				}}
			}
		}

		targetTotal += item.TargetPct
	}

	if math.Abs(targetTotal-100) > splitTolerance {
		return &Error{Fields: map[string]string{
			"allocations": fmt.Sprintf(
				"Target allocations must total 100%%. Current total: %s%%",
				formatPct(targetTotal),
			),
		}}
	}

	return nil
}

// formatPct renders a percentage without trailing zeros (87 not 87.00).
func formatPct(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
