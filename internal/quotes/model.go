package quotes

import "time"

// Response represents the raw JSON response from the mutual fund NAV API.
// The API returns scheme metadata plus a list of date/NAV observations,
// newest first. NAV values arrive as strings and are parsed on demand.
type Response struct {
	Meta struct {
		FundHouse  string `json:"fund_house"`
		SchemeType string `json:"scheme_type"`
		SchemeCode int    `json:"scheme_code"`
		SchemeName string `json:"scheme_name"`
	} `json:"meta"`
	Data []struct {
		Date string `json:"date"`
		Nav  string `json:"nav"`
	} `json:"data"`
	Status string `json:"status"`
}

// NAV represents a parsed NAV observation for a scheme.
type NAV struct {
	Symbol string
	Date   time.Time
	Value  float64
}
