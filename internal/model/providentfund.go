package model

import "time"

// PFType represents a provident fund ledger kind (PPF, PF, EPS).
type PFType struct {
	ID   string
	Name string
}

// PFInterestRate represents a government-declared interest rate window.
// Windows are contiguous: a new window starts the day after the previous one ends.
type PFInterestRate struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Rate      float64
}

// PFEntry represents one month of a provident fund ledger.
type PFEntry struct {
	ID              string
	UserID          string
	PFTypeID        string
	Date            time.Time
	OpeningBalance  float64
	LowestBalance   float64
	CurrentBalance  float64
	AmountDeposited float64
	MonthInterest   float64
	InterestRateID  *string
}
