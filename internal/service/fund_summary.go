package service

import (
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// FundSummary represents aggregated holdings for a single fund.
// This structure is returned by AggregateFundSummaries and is the input
// row for the cap type cross-tab.
type FundSummary struct {
	FundID          string   // Fund identifier
	FundName        string   // Fund display name
	CapTypeID       string   // Cap type the fund belongs to
	ActiveOrPassive string   // Management style axis label
	Invested        float64  // Net invested amount (deposits minus principal redeemed)
	BalanceUnits    float64  // Units still held
	TodayValue      float64  // Current value (balance units * latest NAV)
	ProfitLoss      float64  // TodayValue - Invested
	Nav             *float64 // Latest NAV used for valuation, nil when none recorded
}

// AggregateFundSummaries rolls up fund entries into one summary row per fund.
// This is the core aggregation engine behind the fund summary endpoint.
//
// Processing rules:
//   - Entries referencing a fund that is not in the metadata set are skipped.
//   - Only "Invest" entries with a positive balance unit contribute.
//   - Invested accumulates amount minus any principal redeemed against the entry.
//   - TodayValue accumulates balance units times the fund's latest NAV;
//     a fund without a recorded NAV values at zero.
//   - ProfitLoss is computed once per fund after all entries are summed.
//
// A fund appears in the result only if it has a positive invested amount,
// positive balance units, or a positive current value. Funds are emitted
// in metadata order so the result is deterministic.
func AggregateFundSummaries(entries []model.FundEntry, funds []model.FundMetadata, navByFund map[string]float64) []FundSummary {
	byFund := make(map[string]*FundSummary, len(funds))
	for _, f := range funds {
		byFund[f.ID] = &FundSummary{
			FundID:          f.ID,
			FundName:        f.Name,
			CapTypeID:       f.CapTypeID,
			ActiveOrPassive: f.ActiveOrPassive,
		}
	}

	for _, entry := range entries {
		summary, ok := byFund[entry.FundID]
		if !ok {
			continue
		}

		if entry.InvestType != "Invest" {
			continue
		}
		if entry.BalanceUnit == nil || *entry.BalanceUnit <= 0 {
			continue
		}

		principalRedeem := 0.0
		if entry.PrincipalRedeem != nil {
			principalRedeem = *entry.PrincipalRedeem
		}

		summary.Invested += entry.Amount - principalRedeem
		summary.BalanceUnits += *entry.BalanceUnit

		if nav, ok := navByFund[entry.FundID]; ok {
			summary.TodayValue += *entry.BalanceUnit * nav
		}
	}

	summaries := []FundSummary{}
	for _, f := range funds {
		summary := byFund[f.ID]

		if summary.Invested <= 0 && summary.BalanceUnits <= 0 && summary.TodayValue <= 0 {
			continue
		}

		summary.Invested = round(summary.Invested)
		summary.TodayValue = round(summary.TodayValue)
		summary.ProfitLoss = round(summary.TodayValue - summary.Invested)

		if nav, ok := navByFund[f.ID]; ok {
			navValue := nav
			summary.Nav = &navValue
		}

		summaries = append(summaries, *summary)
	}

	return summaries
}
