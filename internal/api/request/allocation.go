package request

// AllocationItem is one cap type's target and active/passive split.
type AllocationItem struct {
	CapTypeID  string  `json:"capTypeId"`
	TargetPct  float64 `json:"targetPct"`
	ActivePct  float64 `json:"activePct"`
	PassivePct float64 `json:"passivePct"`
}

// SaveAllocationsRequest replaces a user's saved allocations in full.
type SaveAllocationsRequest struct {
	Allocations []AllocationItem `json:"allocations"`
}
