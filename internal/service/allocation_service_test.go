package service_test

import (
	"errors"
	"testing"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/testutil"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/validation"
)

// TestSaveAllocations tests the replace-in-full allocation save.
// WHY: A save replaces the user's whole allocation set in one transaction;
// a validation failure must leave the previously saved rows untouched.
func TestSaveAllocations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	allocationService := testutil.NewTestAllocationService(t, db)

	user := testutil.CreateUser(t, db, "")
	large := testutil.CreateCapType(t, db, "Large")
	mid := testutil.CreateCapType(t, db, "Mid")

	t.Run("Valid save replaces existing allocations", func(t *testing.T) {
		// Setup
		testutil.CreateAllocation(t, db, user.ID, large.ID, 100, 50, 50)

		req := request.SaveAllocationsRequest{
			Allocations: []request.AllocationItem{
				{CapTypeID: large.ID, TargetPct: 60, ActivePct: 70, PassivePct: 30},
				{CapTypeID: mid.ID, TargetPct: 40, ActivePct: 0, PassivePct: 0},
			},
		}

		// Execute
		saved, err := allocationService.SaveAllocations(user.ID, req)

		// Assert
		if err != nil {
			t.Fatalf("Failed to save allocations: %v", err)
		}
		if len(saved) != 2 {
			t.Fatalf("Expected 2 allocations, got %d", len(saved))
		}
		testutil.AssertRowCount(t, db, "expected_allocation", 2)

		stored, err := allocationService.GetAllocations(user.ID)
		if err != nil {
			t.Fatalf("Failed to get allocations: %v", err)
		}
		for _, a := range stored {
			if a.CapTypeID == large.ID && a.TargetPct != 60 {
				t.Errorf("Expected Large target 60, got %v", a.TargetPct)
			}
		}
	})

	t.Run("Validation failure leaves stored allocations untouched", func(t *testing.T) {
		// Setup: targets total 95
		req := request.SaveAllocationsRequest{
			Allocations: []request.AllocationItem{
				{CapTypeID: large.ID, TargetPct: 60, ActivePct: 70, PassivePct: 30},
				{CapTypeID: mid.ID, TargetPct: 35, ActivePct: 0, PassivePct: 0},
			},
		}

		// Execute
		_, err := allocationService.SaveAllocations(user.ID, req)

		// Assert
		if err == nil {
			t.Fatal("Expected validation failure")
		}
		testutil.AssertRowCount(t, db, "expected_allocation", 2)

		stored, err := allocationService.GetAllocations(user.ID)
		if err != nil {
			t.Fatalf("Failed to get allocations: %v", err)
		}
		for _, a := range stored {
			if a.CapTypeID == large.ID && a.TargetPct != 60 {
				t.Errorf("Expected previous Large target 60 to survive, got %v", a.TargetPct)
			}
		}
	})

	t.Run("Split failure names the stored cap type", func(t *testing.T) {
		// Setup
		req := request.SaveAllocationsRequest{
			Allocations: []request.AllocationItem{
				{CapTypeID: mid.ID, TargetPct: 100, ActivePct: 57, PassivePct: 30},
			},
		}

		// Execute
		_, err := allocationService.SaveAllocations(user.ID, req)

		// Assert
		var validationErr *validation.Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected a validation error, got %v", err)
		}
		want := "Active/Passive split for Mid must equal 100%. Current total: 87%"
		if validationErr.Fields["allocations"] != want {
			t.Errorf("Expected %q, got %q", want, validationErr.Fields["allocations"])
		}
	})
}
