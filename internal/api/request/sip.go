package request

type CreateSIPRequest struct {
	UserID    string  `json:"userId"`
	FundID    string  `json:"fundId"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

type UpdateSIPRequest struct {
	FundID    *string  `json:"fundId,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Frequency *string  `json:"frequency,omitempty"`
}
