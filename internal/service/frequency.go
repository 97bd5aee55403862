package service

import "strings"

// MonthlyFactor converts a SIP frequency label into the number of installments
// per month. Matching is a case-insensitive substring check, evaluated in a
// fixed precedence order so that labels like "Bi-Weekly" resolve to 2 rather
// than 4.
//
// Mapping:
//   - "monthly" -> 1
//   - "daily" -> 20 (trading days in a month)
//   - "bi" or "fortnight" -> 2
//   - "weekly" -> 4
//
// Unrecognized labels return 0, so a SIP with a malformed frequency silently
// contributes nothing to monthly totals.
func MonthlyFactor(frequency string) int {
	label := strings.ToLower(frequency)

	switch {
	case strings.Contains(label, "monthly"):
		return 1
	case strings.Contains(label, "daily"):
		return 20
	case strings.Contains(label, "bi"), strings.Contains(label, "fortnight"):
		return 2
	case strings.Contains(label, "weekly"):
		return 4
	default:
		return 0
	}
}

// MonthlyEquivalent returns the monthly outflow of a SIP installment amount
// at the given frequency.
func MonthlyEquivalent(amount float64, frequency string) float64 {
	return amount * float64(MonthlyFactor(frequency))
}
