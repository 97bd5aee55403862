package service_test

import (
	"testing"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
)

// TestFinancialYearStart tests the Indian financial year boundary.
// WHY: January through March belong to the financial year that started the
// previous April; getting the boundary wrong shifts three months of deposits
// into the wrong year's totals.
func TestFinancialYearStart(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "April first starts new year", date: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), want: 2023},
		{name: "December stays in same year", date: time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC), want: 2023},
		{name: "January belongs to previous year", date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), want: 2023},
		{name: "March thirtyfirst closes previous year", date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), want: 2023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.FinancialYearStart(tt.date)

			if got != tt.want {
				t.Errorf("FinancialYearStart(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

// TestFinancialYearLabel tests the display label format.
func TestFinancialYearLabel(t *testing.T) {
	if got := service.FinancialYearLabel(2023); got != "FY 2023-24" {
		t.Errorf("Expected FY 2023-24, got %s", got)
	}
	if got := service.FinancialYearLabel(1999); got != "FY 1999-00" {
		t.Errorf("Expected FY 1999-00, got %s", got)
	}
}

// TestGroupByFinancialYear tests bucketing ledger entries into financial years.
// WHY: The yearwise view chains each year's opening balance from the previous
// year's totals, so both the bucketing and the chaining order matter.
func TestGroupByFinancialYear(t *testing.T) {
	t.Run("Empty ledger yields empty slice", func(t *testing.T) {
		// Execute
		groups := service.GroupByFinancialYear(nil)

		// Assert
		if groups == nil {
			t.Fatal("Expected empty slice, got nil")
		}
		if len(groups) != 0 {
			t.Errorf("Expected no groups, got %d", len(groups))
		}
	})

	t.Run("Opening balances chain across years", func(t *testing.T) {
		// Setup: unsorted on purpose, March 2024 belongs to FY 2023-24
		entries := []model.PFEntry{
			{Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), AmountDeposited: 500, MonthInterest: 10},
			{Date: time.Date(2022, 4, 5, 0, 0, 0, 0, time.UTC), AmountDeposited: 1000, MonthInterest: 50},
			{Date: time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC), AmountDeposited: 2000, MonthInterest: 0},
		}

		// Execute
		groups := service.GroupByFinancialYear(entries)

		// Assert
		if len(groups) != 2 {
			t.Fatalf("Expected 2 groups, got %d", len(groups))
		}

		first := groups[0]
		if first.Label != "FY 2022-23" {
			t.Errorf("Expected label FY 2022-23, got %s", first.Label)
		}
		if first.OpeningBalance != 0 {
			t.Errorf("Expected first year to open at 0, got %v", first.OpeningBalance)
		}
		if first.TotalDeposited != 1000 || first.TotalInterest != 50 {
			t.Errorf("Expected deposits 1000 interest 50, got %v and %v", first.TotalDeposited, first.TotalInterest)
		}
		if first.ClosingBalance != 1050 {
			t.Errorf("Expected closing 1050, got %v", first.ClosingBalance)
		}

		second := groups[1]
		if second.Label != "FY 2023-24" {
			t.Errorf("Expected label FY 2023-24, got %s", second.Label)
		}
		if second.OpeningBalance != 1050 {
			t.Errorf("Expected second year to open at 1050, got %v", second.OpeningBalance)
		}
		if second.TotalDeposited != 2500 || second.TotalInterest != 10 {
			t.Errorf("Expected deposits 2500 interest 10, got %v and %v", second.TotalDeposited, second.TotalInterest)
		}
		if second.ClosingBalance != 3560 {
			t.Errorf("Expected closing 3560, got %v", second.ClosingBalance)
		}
		if len(second.Entries) != 2 {
			t.Errorf("Expected 2 entries in FY 2023-24, got %d", len(second.Entries))
		}
	})
}

// TestMonthlyInterest tests the deposit day cutoff and the interest formula.
// WHY: Deposits after the 5th earn nothing for that month; the rule comes
// from how provident fund interest is credited.
func TestMonthlyInterest(t *testing.T) {
	t.Run("Deposit on the fifth qualifies", func(t *testing.T) {
		date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

		got := service.MonthlyInterest(12000, 7.1, date)

		if got != 71 {
			t.Errorf("Expected interest 71, got %v", got)
		}
	})

	t.Run("Deposit on the sixth earns nothing", func(t *testing.T) {
		date := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

		got := service.MonthlyInterest(12000, 7.1, date)

		if got != 0 {
			t.Errorf("Expected interest 0, got %v", got)
		}
	})

	t.Run("Interest rounds to two decimals", func(t *testing.T) {
		date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

		got := service.MonthlyInterest(1000, 7.1, date)

		if got != 5.92 {
			t.Errorf("Expected interest 5.92, got %v", got)
		}
	})
}

// TestRateForDate tests interest rate window lookup with inclusive bounds.
func TestRateForDate(t *testing.T) {
	rates := []model.PFInterestRate{
		{
			ID:        "r1",
			StartDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			Rate:      8.0,
		},
	}

	tests := []struct {
		name  string
		date  time.Time
		found bool
	}{
		{name: "Start date inclusive", date: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), found: true},
		{name: "End date inclusive", date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), found: true},
		{name: "Before window", date: time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC), found: false},
		{name: "After window", date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, found := service.RateForDate(rates, tt.date)

			if found != tt.found {
				t.Fatalf("Expected found=%v for %s, got %v", tt.found, tt.date.Format("2006-01-02"), found)
			}
			if found && rate.ID != "r1" {
				t.Errorf("Expected rate r1, got %s", rate.ID)
			}
		})
	}
}

// TestRecalculateLedger tests rebuilding running balances and interest.
// WHY: Editing one month or changing a rate window triggers a full ledger
// recalculation, so each month must open at the previous month's closing
// balance including credited interest.
func TestRecalculateLedger(t *testing.T) {
	rates := []model.PFInterestRate{
		{
			ID:        "r1",
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			Rate:      12.0,
		},
	}

	// Setup: out of order, third deposit lands after the cutoff day,
	// fourth falls outside any rate window
	entries := []model.PFEntry{
		{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), AmountDeposited: 500},
		{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), AmountDeposited: 1000},
		{Date: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), AmountDeposited: 1000},
		{Date: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), AmountDeposited: 100},
	}

	// Execute
	recalculated := service.RecalculateLedger(entries, rates)

	// Assert
	if len(recalculated) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(recalculated))
	}

	first := recalculated[0]
	if first.OpeningBalance != 0 || first.CurrentBalance != 1000 || first.LowestBalance != 0 {
		t.Errorf("Expected first month 0/1000/0, got %v/%v/%v", first.OpeningBalance, first.CurrentBalance, first.LowestBalance)
	}
	if first.MonthInterest != 10 {
		t.Errorf("Expected first month interest 10, got %v", first.MonthInterest)
	}
	if first.InterestRateID == nil || *first.InterestRateID != "r1" {
		t.Errorf("Expected interest rate r1 on first month, got %v", first.InterestRateID)
	}

	second := recalculated[1]
	if second.OpeningBalance != 1010 || second.CurrentBalance != 2010 || second.LowestBalance != 1010 {
		t.Errorf("Expected second month 1010/2010/1010, got %v/%v/%v", second.OpeningBalance, second.CurrentBalance, second.LowestBalance)
	}
	if second.MonthInterest != 10 {
		t.Errorf("Expected second month interest 10, got %v", second.MonthInterest)
	}

	third := recalculated[2]
	if third.OpeningBalance != 2020 || third.CurrentBalance != 2520 {
		t.Errorf("Expected third month 2020/2520, got %v/%v", third.OpeningBalance, third.CurrentBalance)
	}
	if third.MonthInterest != 0 {
		t.Errorf("Expected no interest for a deposit after the fifth, got %v", third.MonthInterest)
	}
	if third.InterestRateID == nil {
		t.Error("Expected rate window reference even when interest is zero")
	}

	fourth := recalculated[3]
	if fourth.OpeningBalance != 2520 || fourth.CurrentBalance != 2620 {
		t.Errorf("Expected fourth month 2520/2620, got %v/%v", fourth.OpeningBalance, fourth.CurrentBalance)
	}
	if fourth.MonthInterest != 0 || fourth.InterestRateID != nil {
		t.Errorf("Expected no rate outside any window, got interest %v rate %v", fourth.MonthInterest, fourth.InterestRateID)
	}
}
