package service_test

import (
	"testing"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
)

func fptr(v float64) *float64 {
	return &v
}

// TestAggregateFundSummaries tests the fund entry roll-up engine.
// WHY: The summary endpoint and the cross-tab both build on this aggregation,
// so the inclusion rules (Invest only, positive balance units) and the
// principal redeem offset must hold exactly.
func TestAggregateFundSummaries(t *testing.T) {
	t.Run("Single fund with nav values at balance units times nav", func(t *testing.T) {
		// Setup
		funds := []model.FundMetadata{
			{ID: "f1", Name: "Index Fund", CapTypeID: "ct1", ActiveOrPassive: "Passive"},
		}
		entries := []model.FundEntry{
			{FundID: "f1", InvestType: "Invest", Amount: 1000, BalanceUnit: fptr(10)},
		}
		navs := map[string]float64{"f1": 12}

		// Execute
		summaries := service.AggregateFundSummaries(entries, funds, navs)

		// Assert
		if len(summaries) != 1 {
			t.Fatalf("Expected 1 summary, got %d", len(summaries))
		}
		s := summaries[0]
		if s.Invested != 1000 {
			t.Errorf("Expected invested 1000, got %v", s.Invested)
		}
		if s.BalanceUnits != 10 {
			t.Errorf("Expected balance units 10, got %v", s.BalanceUnits)
		}
		if s.TodayValue != 120 {
			t.Errorf("Expected today value 120, got %v", s.TodayValue)
		}
		if s.ProfitLoss != -880 {
			t.Errorf("Expected profit loss -880, got %v", s.ProfitLoss)
		}
		if s.Nav == nil || *s.Nav != 12 {
			t.Errorf("Expected nav 12, got %v", s.Nav)
		}
	})

	t.Run("Entries referencing unknown funds are skipped", func(t *testing.T) {
		// Setup
		funds := []model.FundMetadata{
			{ID: "f1", Name: "Known Fund", CapTypeID: "ct1", ActiveOrPassive: "Active"},
		}
		entries := []model.FundEntry{
			{FundID: "f1", InvestType: "Invest", Amount: 500, BalanceUnit: fptr(5)},
			{FundID: "ghost", InvestType: "Invest", Amount: 9999, BalanceUnit: fptr(99)},
		}

		// Execute
		summaries := service.AggregateFundSummaries(entries, funds, nil)

		// Assert
		if len(summaries) != 1 {
			t.Fatalf("Expected 1 summary, got %d", len(summaries))
		}
		if summaries[0].Invested != 500 {
			t.Errorf("Expected invested 500, got %v", summaries[0].Invested)
		}
	})

	t.Run("Redeem entries and exhausted balances are excluded", func(t *testing.T) {
		// Setup
		funds := []model.FundMetadata{
			{ID: "f1", Name: "Fund", CapTypeID: "ct1", ActiveOrPassive: "Active"},
		}
		entries := []model.FundEntry{
			{FundID: "f1", InvestType: "Invest", Amount: 1000, BalanceUnit: fptr(10)},
			{FundID: "f1", InvestType: "Redeem", Amount: 400, BalanceUnit: fptr(4)},
			{FundID: "f1", InvestType: "Invest", Amount: 300, BalanceUnit: fptr(0)},
			{FundID: "f1", InvestType: "Invest", Amount: 200},
		}

		// Execute
		summaries := service.AggregateFundSummaries(entries, funds, nil)

		// Assert
		if len(summaries) != 1 {
			t.Fatalf("Expected 1 summary, got %d", len(summaries))
		}
		if summaries[0].Invested != 1000 {
			t.Errorf("Expected invested 1000, got %v", summaries[0].Invested)
		}
		if summaries[0].BalanceUnits != 10 {
			t.Errorf("Expected balance units 10, got %v", summaries[0].BalanceUnits)
		}
	})

	t.Run("Principal redeemed reduces invested amount", func(t *testing.T) {
		// Setup
		funds := []model.FundMetadata{
			{ID: "f1", Name: "Fund", CapTypeID: "ct1", ActiveOrPassive: "Active"},
		}
		entries := []model.FundEntry{
			{FundID: "f1", InvestType: "Invest", Amount: 1000, BalanceUnit: fptr(8), PrincipalRedeem: fptr(200)},
		}

		// Execute
		summaries := service.AggregateFundSummaries(entries, funds, nil)

		// Assert
		if summaries[0].Invested != 800 {
			t.Errorf("Expected invested 800, got %v", summaries[0].Invested)
		}
	})

	t.Run("Fund without recorded nav values at zero with nil nav", func(t *testing.T) {
		// Setup
		funds := []model.FundMetadata{
			{ID: "f1", Name: "Fund", CapTypeID: "ct1", ActiveOrPassive: "Active"},
		}
		entries := []model.FundEntry{
			{FundID: "f1", InvestType: "Invest", Amount: 1000, BalanceUnit: fptr(10)},
		}

		// Execute
		summaries := service.AggregateFundSummaries(entries, funds, map[string]float64{})

		// Assert
		s := summaries[0]
		if s.TodayValue != 0 {
			t.Errorf("Expected today value 0, got %v", s.TodayValue)
		}
		if s.ProfitLoss != -1000 {
			t.Errorf("Expected profit loss -1000, got %v", s.ProfitLoss)
		}
		if s.Nav != nil {
			t.Errorf("Expected nil nav, got %v", *s.Nav)
		}
	})

	t.Run("Funds without holdings are omitted", func(t *testing.T) {
		// Setup
		funds := []model.FundMetadata{
			{ID: "f1", Name: "Held Fund", CapTypeID: "ct1", ActiveOrPassive: "Active"},
			{ID: "f2", Name: "Empty Fund", CapTypeID: "ct1", ActiveOrPassive: "Active"},
		}
		entries := []model.FundEntry{
			{FundID: "f1", InvestType: "Invest", Amount: 100, BalanceUnit: fptr(1)},
		}

		// Execute
		summaries := service.AggregateFundSummaries(entries, funds, nil)

		// Assert
		if len(summaries) != 1 {
			t.Fatalf("Expected 1 summary, got %d", len(summaries))
		}
		if summaries[0].FundID != "f1" {
			t.Errorf("Expected fund f1, got %s", summaries[0].FundID)
		}
	})

	t.Run("Summaries follow metadata order", func(t *testing.T) {
		// Setup
		funds := []model.FundMetadata{
			{ID: "f2", Name: "Second", CapTypeID: "ct1", ActiveOrPassive: "Active"},
			{ID: "f1", Name: "First", CapTypeID: "ct1", ActiveOrPassive: "Active"},
		}
		entries := []model.FundEntry{
			{FundID: "f1", InvestType: "Invest", Amount: 100, BalanceUnit: fptr(1)},
			{FundID: "f2", InvestType: "Invest", Amount: 100, BalanceUnit: fptr(1)},
		}

		// Execute
		summaries := service.AggregateFundSummaries(entries, funds, nil)

		// Assert
		if len(summaries) != 2 {
			t.Fatalf("Expected 2 summaries, got %d", len(summaries))
		}
		if summaries[0].FundID != "f2" || summaries[1].FundID != "f1" {
			t.Errorf("Expected metadata order f2, f1; got %s, %s", summaries[0].FundID, summaries[1].FundID)
		}
	})
}
