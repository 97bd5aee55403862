package model

// ExpectedAllocation represents a user's target allocation for one cap type.
// TargetPct is the share of the total portfolio, ActivePct and PassivePct
// split that target between active and passive funds.
type ExpectedAllocation struct {
	ID         string
	UserID     string
	CapTypeID  string
	TargetPct  float64
	ActivePct  float64
	PassivePct float64
}
