package model

// SIPInfo represents a systematic investment plan registered against a fund.
type SIPInfo struct {
	ID        string
	UserID    string
	FundID    string
	Amount    float64
	Frequency string
}
