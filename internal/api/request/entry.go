package request

type CreateEntryRequest struct {
	UserID          string   `json:"userId"`
	FundID          string   `json:"fundId"`
	Date            string   `json:"date"`
	InvestType      string   `json:"investType"`
	Amount          float64  `json:"amount"`
	Nav             *float64 `json:"nav,omitempty"`
	Units           *float64 `json:"units,omitempty"`
	BalanceUnit     *float64 `json:"balanceUnit,omitempty"`
	PrincipalRedeem *float64 `json:"principalRedeem,omitempty"`
}

type UpdateEntryRequest struct {
	FundID          *string  `json:"fundId,omitempty"`
	Date            *string  `json:"date,omitempty"`
	InvestType      *string  `json:"investType,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Nav             *float64 `json:"nav,omitempty"`
	Units           *float64 `json:"units,omitempty"`
	BalanceUnit     *float64 `json:"balanceUnit,omitempty"`
	PrincipalRedeem *float64 `json:"principalRedeem,omitempty"`
}
