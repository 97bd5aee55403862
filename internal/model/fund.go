package model

import "time"

// CapType represents a market-cap classification (Large, Mid, Small, ...).
type CapType struct {
	ID   string
	Name string
}

// FundMetadata represents a mutual fund from the database.
// Symbol is the scheme code used for NAV lookups and may be empty
// for funds that are no longer tracked.
type FundMetadata struct {
	ID              string
	Name            string
	Symbol          string
	CapTypeID       string
	ActiveOrPassive string
}

// FundEntry represents a single investment or redemption in a fund.
// Nav, Units, BalanceUnit and PrincipalRedeem are nullable because
// historical imports predate NAV tracking.
type FundEntry struct {
	ID              string
	UserID          string
	FundID          string
	Date            time.Time
	InvestType      string
	Amount          float64
	Nav             *float64
	Units           *float64
	BalanceUnit     *float64
	PrincipalRedeem *float64
}

// FundNav represents a stored NAV observation for a fund.
type FundNav struct {
	ID     string
	FundID string
	Date   time.Time
	Nav    float64
}
