package service

import (
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// GoldPosition represents the aggregate gold holding for a user.
type GoldPosition struct {
	TotalGrams   float64
	TotalCost    float64
	AveragePrice float64 // Cost per gram, 0 when no grams are held
	TodayValue   float64 // Grams valued at the current market price, 0 when no price is known
	IsGain       bool    // True only when today's value strictly exceeds cost
}

// CalculateGoldPosition sums gold purchases into a single position valued at
// the current per-gram market price. A currentPrice of 0 means no market
// price is known and today's value reports 0.
//
// IsGain uses a strict comparison: a position worth exactly its cost reports
// as a loss.
func CalculateGoldPosition(entries []model.GoldEntry, currentPrice float64) GoldPosition {
	var position GoldPosition

	for _, entry := range entries {
		position.TotalGrams += entry.Grams
		position.TotalCost += entry.Price
	}

	if position.TotalGrams > 0 {
		position.AveragePrice = round(position.TotalCost / position.TotalGrams)
		if currentPrice > 0 {
			position.TodayValue = round(position.TotalGrams * currentPrice)
		}
	}

	position.TotalGrams = round(position.TotalGrams)
	position.TotalCost = round(position.TotalCost)
	position.IsGain = position.TodayValue > position.TotalCost

	return position
}
