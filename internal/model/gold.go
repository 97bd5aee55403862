package model

import "time"

// GoldEntry represents a physical gold purchase.
// Price is the total paid for the purchase, not a per-gram rate.
type GoldEntry struct {
	ID           string
	UserID       string
	PurchaseDate time.Time
	Grams        float64
	Price        float64
	Comments     string
}

// GoldPrice represents a market price observation for one gram of gold.
// The most recent row is treated as today's price.
type GoldPrice struct {
	ID    string
	Date  time.Time
	Price float64
}
