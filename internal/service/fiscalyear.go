package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// FinancialYearGroup represents one Indian financial year (April 1 to March 31)
// of a provident fund ledger.
type FinancialYearGroup struct {
	Label          string // e.g. "FY 2023-24"
	StartYear      int    // Calendar year the financial year starts in
	OpeningBalance float64
	TotalDeposited float64
	TotalInterest  float64
	ClosingBalance float64
	Entries        []model.PFEntry
}

// FinancialYearStart returns the calendar year in which the financial year
// containing the given date starts. Dates in January through March belong to
// the financial year that started the previous April.
func FinancialYearStart(date time.Time) int {
	if date.Month() >= time.April {
		return date.Year()
	}
	return date.Year() - 1
}

// FinancialYearLabel formats a financial year label from its start year,
// e.g. 2023 -> "FY 2023-24".
func FinancialYearLabel(startYear int) string {
	return fmt.Sprintf("FY %d-%02d", startYear, (startYear+1)%100)
}

// GroupByFinancialYear buckets ledger entries into financial years.
//
// Entries are sorted ascending by date before grouping, the final partial
// year is emitted like any other, and opening balances are chained after
// grouping: the first year opens at zero and each subsequent year opens at
// the previous year's opening balance plus its deposits and interest.
func GroupByFinancialYear(entries []model.PFEntry) []FinancialYearGroup {
	if len(entries) == 0 {
		return []FinancialYearGroup{}
	}

	sorted := make([]model.PFEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	groups := []FinancialYearGroup{}
	for _, entry := range sorted {
		startYear := FinancialYearStart(entry.Date)

		if len(groups) == 0 || groups[len(groups)-1].StartYear != startYear {
			groups = append(groups, FinancialYearGroup{
				Label:     FinancialYearLabel(startYear),
				StartYear: startYear,
			})
		}

		group := &groups[len(groups)-1]
		group.Entries = append(group.Entries, entry)
		group.TotalDeposited += entry.AmountDeposited
		group.TotalInterest += entry.MonthInterest
	}

	// Chain opening balances through the grouped years.
	for i := range groups {
		if i > 0 {
			prev := groups[i-1]
			groups[i].OpeningBalance = round(prev.OpeningBalance + prev.TotalDeposited + prev.TotalInterest)
		}
		groups[i].TotalDeposited = round(groups[i].TotalDeposited)
		groups[i].TotalInterest = round(groups[i].TotalInterest)
		groups[i].ClosingBalance = round(groups[i].OpeningBalance + groups[i].TotalDeposited + groups[i].TotalInterest)
	}

	return groups
}

// QualifiesForMonthlyInterest reports whether a deposit made on the given date
// earns interest for that month. Deposits after the 5th earn nothing.
func QualifiesForMonthlyInterest(date time.Time) bool {
	return date.Day() <= 5
}

// MonthlyInterest computes the interest earned in one month on a deposit of
// the given amount at the given annual rate. Returns 0 when the deposit date
// does not qualify, otherwise amount * (1/12) * (rate/100) rounded to two
// decimal places.
func MonthlyInterest(amount, annualRate float64, date time.Time) float64 {
	if !QualifiesForMonthlyInterest(date) {
		return 0
	}
	return round(amount * (1.0 / 12.0) * (annualRate / 100))
}

// RateForDate finds the interest rate window in force on the given date.
// Returns false when no window covers the date.
func RateForDate(rates []model.PFInterestRate, date time.Time) (model.PFInterestRate, bool) {
	for _, rate := range rates {
		if !date.Before(rate.StartDate) && !date.After(rate.EndDate) {
			return rate, true
		}
	}
	return model.PFInterestRate{}, false
}

// RecalculateLedger rebuilds running balances and monthly interest for a
// provident fund ledger. Entries are sorted ascending, each month opens at
// the previous month's closing balance, and interest is recomputed from the
// rate window in force on the entry date.
func RecalculateLedger(entries []model.PFEntry, rates []model.PFInterestRate) []model.PFEntry {
	sorted := make([]model.PFEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	running := 0.0
	for i := range sorted {
		entry := &sorted[i]

		entry.OpeningBalance = round(running)
		entry.CurrentBalance = round(running + entry.AmountDeposited)
		if entry.OpeningBalance < entry.CurrentBalance {
			entry.LowestBalance = entry.OpeningBalance
		} else {
			entry.LowestBalance = entry.CurrentBalance
		}

		entry.MonthInterest = 0
		entry.InterestRateID = nil
		if rate, ok := RateForDate(rates, entry.Date); ok {
			entry.MonthInterest = MonthlyInterest(entry.AmountDeposited, rate.Rate, entry.Date)
			rateID := rate.ID
			entry.InterestRateID = &rateID
		}

		running = entry.CurrentBalance + entry.MonthInterest
	}

	return sorted
}
