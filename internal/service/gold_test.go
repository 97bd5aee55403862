package service_test

import (
	"testing"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
)

// TestCalculateGoldPosition tests the aggregate gold position calculation.
// WHY: The gold screen shows one rolled-up position; the average price and
// the strict gain comparison are the two spots where off-by-a-paisa bugs
// would show.
func TestCalculateGoldPosition(t *testing.T) {
	t.Run("Position values at current market price", func(t *testing.T) {
		// Setup
		entries := []model.GoldEntry{
			{Grams: 10, Price: 5000},
			{Grams: 5, Price: 2600},
		}

		// Execute
		position := service.CalculateGoldPosition(entries, 520)

		// Assert
		if position.TotalGrams != 15 {
			t.Errorf("Expected 15 grams, got %v", position.TotalGrams)
		}
		if position.TotalCost != 7600 {
			t.Errorf("Expected cost 7600, got %v", position.TotalCost)
		}
		if position.AveragePrice != 506.67 {
			t.Errorf("Expected average price 506.67, got %v", position.AveragePrice)
		}
		if position.TodayValue != 7800 {
			t.Errorf("Expected today value 7800, got %v", position.TodayValue)
		}
		if !position.IsGain {
			t.Error("Expected position to report a gain")
		}
	})

	t.Run("Value equal to cost reports as loss", func(t *testing.T) {
		// Setup
		entries := []model.GoldEntry{{Grams: 1, Price: 520}}

		// Execute
		position := service.CalculateGoldPosition(entries, 520)

		// Assert
		if position.TodayValue != 520 {
			t.Errorf("Expected today value 520, got %v", position.TodayValue)
		}
		if position.IsGain {
			t.Error("Expected strict comparison to report no gain at break-even")
		}
	})

	t.Run("Unknown market price values at zero", func(t *testing.T) {
		// Setup
		entries := []model.GoldEntry{{Grams: 10, Price: 5000}}

		// Execute
		position := service.CalculateGoldPosition(entries, 0)

		// Assert
		if position.TodayValue != 0 {
			t.Errorf("Expected today value 0, got %v", position.TodayValue)
		}
		if position.AveragePrice != 500 {
			t.Errorf("Expected average price 500, got %v", position.AveragePrice)
		}
		if position.IsGain {
			t.Error("Expected no gain without a market price")
		}
	})

	t.Run("No purchases yields empty position", func(t *testing.T) {
		// Execute
		position := service.CalculateGoldPosition(nil, 520)

		// Assert
		if position.TotalGrams != 0 || position.TotalCost != 0 || position.AveragePrice != 0 || position.TodayValue != 0 {
			t.Errorf("Expected zeroed position, got %+v", position)
		}
		if position.IsGain {
			t.Error("Expected no gain for an empty position")
		}
	})
}
