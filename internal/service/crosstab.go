package service

import (
	"sort"
	"strings"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// capTypePriority fixes the display order of the common cap types.
// Cap types not listed here sort alphabetically after these.
var capTypePriority = map[string]int{
	"Large":       0,
	"Mid":         1,
	"Small":       2,
	"Large & Mid": 3,
	"Mix":         4,
}

// CrossTabCell represents one cap type / management style intersection.
type CrossTabCell struct {
	Label      string  // Axis label (e.g. "Active", "Passive")
	Amount     float64 // Invested amount in this cell
	Pct        float64 // Share of the cap type subtotal, 0 when the subtotal is 0
	SIPMonthly float64 // Monthly SIP equivalent flowing into this cell
	Expected   float64 // Expected amount from the saved allocation, 0 when none saved
}

// CrossTabRow represents one cap type with its subtotal and per-style cells.
type CrossTabRow struct {
	CapTypeID   string
	CapTypeName string
	Amount      float64 // Cap type subtotal
	Pct         float64 // Share of the grand total, 0 when the total is 0
	TargetPct   float64 // Saved target allocation, 0 when none saved
	Expected    float64 // Total invested * target pct
	Cells       []CrossTabCell
}

// CrossTab represents the full cap type cross-tabulation for a user.
type CrossTab struct {
	TotalInvested float64
	SIPMonthly    float64  // Total monthly SIP equivalent
	Columns       []string // Axis labels in display order
	Rows          []CrossTabRow
}

// BuildCapTypeCrossTab cross-tabulates fund summaries by cap type and
// management style.
//
// Row order follows capTypePriority (Large, Mid, Small, Large & Mid, Mix)
// with unlisted cap types appended alphabetically. Column order puts labels
// containing "passive" (case-insensitive) first, the rest alphabetically.
//
// Each cell percentage divides by its cap type subtotal, not the grand total,
// so the cells of one row always sum to 100 when the subtotal is nonzero.
// A zero subtotal yields zero percentages throughout the row.
//
// Expected amounts are derived from the user's saved allocations as
// total * targetPct/100 * splitPct/100, where splitPct is the passive split
// for passive columns and the active split otherwise. Cap types without a
// saved allocation report zero expected amounts.
func BuildCapTypeCrossTab(
	summaries []FundSummary,
	capTypes []model.CapType,
	sipMonthlyByFund map[string]float64,
	allocations []model.ExpectedAllocation,
) CrossTab {
	orderedCapTypes := SortCapTypes(capTypes)
	columns := axisLabels(summaries)

	allocationByCapType := make(map[string]model.ExpectedAllocation, len(allocations))
	for _, a := range allocations {
		allocationByCapType[a.CapTypeID] = a
	}

	var totalInvested, totalSIP float64
	for _, s := range summaries {
		totalInvested += s.Invested
		totalSIP += sipMonthlyByFund[s.FundID]
	}

	rows := make([]CrossTabRow, 0, len(orderedCapTypes))
	for _, capType := range orderedCapTypes {
		row := CrossTabRow{
			CapTypeID:   capType.ID,
			CapTypeName: capType.Name,
		}

		cells := make([]CrossTabCell, len(columns))
		for i, label := range columns {
			cells[i] = CrossTabCell{Label: label}
		}

		for _, s := range summaries {
			if s.CapTypeID != capType.ID {
				continue
			}
			row.Amount += s.Invested
			for i, label := range columns {
				if s.ActiveOrPassive == label {
					cells[i].Amount += s.Invested
					cells[i].SIPMonthly += sipMonthlyByFund[s.FundID]
				}
			}
		}

		if totalInvested > 0 {
			row.Pct = round(row.Amount / totalInvested * 100)
		}

		allocation, hasAllocation := allocationByCapType[capType.ID]
		if hasAllocation {
			row.TargetPct = allocation.TargetPct
			row.Expected = round(totalInvested * allocation.TargetPct / 100)
		}

		for i := range cells {
			if row.Amount > 0 {
				cells[i].Pct = round(cells[i].Amount / row.Amount * 100)
			}
			if hasAllocation {
				split := allocation.ActivePct
				if isPassiveLabel(cells[i].Label) {
					split = allocation.PassivePct
				}
				cells[i].Expected = round(totalInvested * allocation.TargetPct / 100 * split / 100)
			}
			cells[i].Amount = round(cells[i].Amount)
			cells[i].SIPMonthly = round(cells[i].SIPMonthly)
		}

		row.Amount = round(row.Amount)
		row.Cells = cells
		rows = append(rows, row)
	}

	return CrossTab{
		TotalInvested: round(totalInvested),
		SIPMonthly:    round(totalSIP),
		Columns:       columns,
		Rows:          rows,
	}
}

// SortCapTypes orders cap types by the fixed priority list, then alphabetically.
func SortCapTypes(capTypes []model.CapType) []model.CapType {
	ordered := make([]model.CapType, len(capTypes))
	copy(ordered, capTypes)

	sort.SliceStable(ordered, func(i, j int) bool {
		pi, iKnown := capTypePriority[ordered[i].Name]
		pj, jKnown := capTypePriority[ordered[j].Name]

		switch {
		case iKnown && jKnown:
			return pi < pj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return ordered[i].Name < ordered[j].Name
		}
	})

	return ordered
}

// axisLabels collects the distinct management style labels from the summaries,
// passive labels first, each group sorted alphabetically.
func axisLabels(summaries []FundSummary) []string {
	seen := make(map[string]bool)
	var passive, active []string

	for _, s := range summaries {
		if s.ActiveOrPassive == "" || seen[s.ActiveOrPassive] {
			continue
		}
		seen[s.ActiveOrPassive] = true
		if isPassiveLabel(s.ActiveOrPassive) {
			passive = append(passive, s.ActiveOrPassive)
		} else {
			active = append(active, s.ActiveOrPassive)
		}
	}

	sort.Strings(passive)
	sort.Strings(active)

	return append(passive, active...)
}

func isPassiveLabel(label string) bool {
	return strings.Contains(strings.ToLower(label), "passive")
}
