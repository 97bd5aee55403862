package request

type CreateInterestRateRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Rate      float64 `json:"rate"`
}

type UpdateInterestRateRequest struct {
	StartDate *string  `json:"startDate,omitempty"`
	EndDate   *string  `json:"endDate,omitempty"`
	Rate      *float64 `json:"rate,omitempty"`
}

// SetupLedgerRequest bulk-creates fifteen years of monthly ledger entries
// starting from StartDate.
type SetupLedgerRequest struct {
	UserID    string  `json:"userId"`
	PFTypeID  string  `json:"pfTypeId"`
	StartDate string  `json:"startDate"`
	Deposit   float64 `json:"deposit"`
}

type UpdatePFEntryRequest struct {
	AmountDeposited float64 `json:"amountDeposited"`
}
