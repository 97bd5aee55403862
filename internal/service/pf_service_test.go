package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/testutil"
)

// TestCreateInterestRate tests the contiguity rule for rate windows.
// WHY: Interest recalculation looks rates up by date; a gap or overlap in
// the rate table would silently zero or double interest for those months.
func TestCreateInterestRate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	pfService := testutil.NewTestPFService(t, db)

	t.Run("First window may start anywhere", func(t *testing.T) {
		// Execute
		window, err := pfService.CreateInterestRate(
			time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 3, 31, 0, 0, 0, 0, time.UTC),
			7.1,
		)

		// Assert
		if err != nil {
			t.Fatalf("Failed to create first window: %v", err)
		}
		if window.Rate != 7.1 {
			t.Errorf("Expected rate 7.1, got %v", window.Rate)
		}
	})

	t.Run("Window leaving a gap is rejected", func(t *testing.T) {
		// Execute
		_, err := pfService.CreateInterestRate(
			time.Date(2021, 4, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2022, 3, 31, 0, 0, 0, 0, time.UTC),
			7.1,
		)

		// Assert
		if !errors.Is(err, apperrors.ErrNonContiguousRate) {
			t.Errorf("Expected ErrNonContiguousRate, got %v", err)
		}
		testutil.AssertRowCount(t, db, "pf_interest_rate", 1)
	})

	t.Run("Window starting the day after is accepted", func(t *testing.T) {
		// Execute
		_, err := pfService.CreateInterestRate(
			time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2022, 3, 31, 0, 0, 0, 0, time.UTC),
			7.5,
		)

		// Assert
		if err != nil {
			t.Fatalf("Failed to create contiguous window: %v", err)
		}
		testutil.AssertRowCount(t, db, "pf_interest_rate", 2)
	})
}

// TestSetupLedger tests the fifteen year ledger bulk creation.
// WHY: Setup seeds one entry per month with balances and interest computed
// from the rate table; re-running it would duplicate the whole ledger.
func TestSetupLedger(t *testing.T) {
	db := testutil.SetupTestDB(t)
	pfService := testutil.NewTestPFService(t, db)

	user := testutil.CreateUser(t, db, "")
	ppfID := testutil.PFTypeID(t, db, "PPF")

	testutil.CreateInterestRate(t, db,
		time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2040, 3, 31, 0, 0, 0, 0, time.UTC),
		12.0,
	)

	t.Run("Setup creates fifteen years of monthly entries", func(t *testing.T) {
		// Execute
		entries, err := pfService.SetupLedger(user.ID, ppfID, time.Date(2020, 4, 3, 0, 0, 0, 0, time.UTC), 1000)

		// Assert
		if err != nil {
			t.Fatalf("Failed to set up ledger: %v", err)
		}
		if len(entries) != 180 {
			t.Fatalf("Expected 180 entries, got %d", len(entries))
		}
		testutil.AssertRowCount(t, db, "pf_entry", 180)

		first := entries[0]
		if first.OpeningBalance != 0 || first.CurrentBalance != 1000 {
			t.Errorf("Expected first month 0/1000, got %v/%v", first.OpeningBalance, first.CurrentBalance)
		}
		if first.MonthInterest != 10 {
			t.Errorf("Expected first month interest 10, got %v", first.MonthInterest)
		}

		second := entries[1]
		if second.OpeningBalance != 1010 {
			t.Errorf("Expected second month to open at 1010, got %v", second.OpeningBalance)
		}
	})

	t.Run("Second setup for the same ledger is refused", func(t *testing.T) {
		// Execute
		_, err := pfService.SetupLedger(user.ID, ppfID, time.Date(2020, 4, 3, 0, 0, 0, 0, time.UTC), 1000)

		// Assert
		if !errors.Is(err, apperrors.ErrLedgerAlreadySetUp) {
			t.Errorf("Expected ErrLedgerAlreadySetUp, got %v", err)
		}
		testutil.AssertRowCount(t, db, "pf_entry", 180)
	})

	t.Run("Same user may set up a different type", func(t *testing.T) {
		// Setup
		epsID := testutil.PFTypeID(t, db, "EPS")

		// Execute
		entries, err := pfService.SetupLedger(user.ID, epsID, time.Date(2020, 4, 3, 0, 0, 0, 0, time.UTC), 500)

		// Assert
		if err != nil {
			t.Fatalf("Failed to set up second ledger: %v", err)
		}
		if len(entries) != 180 {
			t.Errorf("Expected 180 entries, got %d", len(entries))
		}
	})

	t.Run("Unknown pf type is rejected", func(t *testing.T) {
		// Execute
		_, err := pfService.SetupLedger(user.ID, testutil.MakeID(), time.Date(2020, 4, 3, 0, 0, 0, 0, time.UTC), 1000)

		// Assert
		if !errors.Is(err, apperrors.ErrPFTypeNotFound) {
			t.Errorf("Expected ErrPFTypeNotFound, got %v", err)
		}
	})
}

// TestUpdatePFEntry tests the single-entry edit with full ledger recalculation.
// WHY: Changing one month's deposit shifts every later balance; the service
// returns the whole recalculated ledger so the caller sees the ripple.
func TestUpdatePFEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	pfService := testutil.NewTestPFService(t, db)

	user := testutil.CreateUser(t, db, "")
	pfID := testutil.PFTypeID(t, db, "PF")

	testutil.CreateInterestRate(t, db,
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2040, 12, 31, 0, 0, 0, 0, time.UTC),
		12.0,
	)

	entries, err := pfService.SetupLedger(user.ID, pfID, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), 1000)
	if err != nil {
		t.Fatalf("Failed to set up ledger: %v", err)
	}

	// Execute: double the first deposit
	recalculated, err := pfService.UpdateEntry(entries[0].ID, 2000)

	// Assert
	if err != nil {
		t.Fatalf("Failed to update entry: %v", err)
	}
	if len(recalculated) != 180 {
		t.Fatalf("Expected full ledger back, got %d entries", len(recalculated))
	}

	first := recalculated[0]
	if first.AmountDeposited != 2000 || first.CurrentBalance != 2000 {
		t.Errorf("Expected first month deposit 2000 current 2000, got %v and %v", first.AmountDeposited, first.CurrentBalance)
	}
	if first.MonthInterest != 20 {
		t.Errorf("Expected first month interest 20, got %v", first.MonthInterest)
	}

	second := recalculated[1]
	if second.OpeningBalance != 2020 {
		t.Errorf("Expected second month to open at 2020, got %v", second.OpeningBalance)
	}

	// The stored ledger reflects the recalculation
	stored, err := pfService.GetLedger(user.ID, pfID)
	if err != nil {
		t.Fatalf("Failed to get ledger: %v", err)
	}
	if stored[1].OpeningBalance != 2020 {
		t.Errorf("Expected persisted opening 2020, got %v", stored[1].OpeningBalance)
	}

	if _, err := pfService.UpdateEntry(testutil.MakeID(), 100); !errors.Is(err, apperrors.ErrPFEntryNotFound) {
		t.Errorf("Expected ErrPFEntryNotFound, got %v", err)
	}
}

// TestRecalculateAll tests rebuilding every ledger after a rate change.
func TestRecalculateAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	pfService := testutil.NewTestPFService(t, db)

	userA := testutil.CreateUser(t, db, "")
	userB := testutil.CreateUser(t, db, "")
	ppfID := testutil.PFTypeID(t, db, "PPF")
	pfID := testutil.PFTypeID(t, db, "PF")

	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	if _, err := pfService.SetupLedger(userA.ID, ppfID, start, 1000); err != nil {
		t.Fatalf("Failed to set up ledger: %v", err)
	}
	if _, err := pfService.SetupLedger(userA.ID, pfID, start, 500); err != nil {
		t.Fatalf("Failed to set up ledger: %v", err)
	}
	if _, err := pfService.SetupLedger(userB.ID, ppfID, start, 2000); err != nil {
		t.Fatalf("Failed to set up ledger: %v", err)
	}

	// A rate window arriving after setup changes every ledger
	testutil.CreateInterestRate(t, db,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2040, 12, 31, 0, 0, 0, 0, time.UTC),
		12.0,
	)

	// Execute
	count, err := pfService.RecalculateAll()

	// Assert
	if err != nil {
		t.Fatalf("Failed to recalculate: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 ledgers recalculated, got %d", count)
	}

	ledger, err := pfService.GetLedger(userA.ID, ppfID)
	if err != nil {
		t.Fatalf("Failed to get ledger: %v", err)
	}
	if ledger[0].MonthInterest != 10 {
		t.Errorf("Expected interest 10 after recalculation, got %v", ledger[0].MonthInterest)
	}
	if ledger[0].InterestRateID == nil {
		t.Error("Expected rate window reference after recalculation")
	}
}

// TestGetYearwise tests the financial year view of a stored ledger.
func TestGetYearwise(t *testing.T) {
	db := testutil.SetupTestDB(t)
	pfService := testutil.NewTestPFService(t, db)

	user := testutil.CreateUser(t, db, "")
	ppfID := testutil.PFTypeID(t, db, "PPF")

	if _, err := pfService.SetupLedger(user.ID, ppfID, time.Date(2020, 4, 3, 0, 0, 0, 0, time.UTC), 1000); err != nil {
		t.Fatalf("Failed to set up ledger: %v", err)
	}

	// Execute
	groups, err := pfService.GetYearwise(user.ID, ppfID)

	// Assert
	if err != nil {
		t.Fatalf("Failed to get yearwise view: %v", err)
	}
	// April 2020 through March 2035 spans exactly fifteen financial years
	if len(groups) != 15 {
		t.Fatalf("Expected 15 financial years, got %d", len(groups))
	}
	if groups[0].Label != "FY 2020-21" {
		t.Errorf("Expected first group FY 2020-21, got %s", groups[0].Label)
	}
	if groups[0].OpeningBalance != 0 {
		t.Errorf("Expected first year to open at 0, got %v", groups[0].OpeningBalance)
	}
	// No rate table: each year holds twelve deposits and no interest
	if groups[0].TotalDeposited != 12000 {
		t.Errorf("Expected 12000 deposited, got %v", groups[0].TotalDeposited)
	}
	if groups[1].OpeningBalance != 12000 {
		t.Errorf("Expected second year to open at 12000, got %v", groups[1].OpeningBalance)
	}

	t.Run("Yearwise for unknown type fails", func(t *testing.T) {
		_, err := pfService.GetYearwise(user.ID, testutil.MakeID())
		if !errors.Is(err, apperrors.ErrPFTypeNotFound) {
			t.Errorf("Expected ErrPFTypeNotFound, got %v", err)
		}
	})
}

// TestDeleteLedger tests wiping one user's ledger for one type.
func TestDeleteLedger(t *testing.T) {
	db := testutil.SetupTestDB(t)
	pfService := testutil.NewTestPFService(t, db)

	user := testutil.CreateUser(t, db, "")
	ppfID := testutil.PFTypeID(t, db, "PPF")
	epsID := testutil.PFTypeID(t, db, "EPS")

	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	if _, err := pfService.SetupLedger(user.ID, ppfID, start, 1000); err != nil {
		t.Fatalf("Failed to set up ledger: %v", err)
	}
	if _, err := pfService.SetupLedger(user.ID, epsID, start, 500); err != nil {
		t.Fatalf("Failed to set up ledger: %v", err)
	}

	// Execute
	if err := pfService.DeleteLedger(user.ID, ppfID); err != nil {
		t.Fatalf("Failed to delete ledger: %v", err)
	}

	// Assert: the other type's ledger survives
	testutil.AssertRowCount(t, db, "pf_entry", 180)

	remaining, err := pfService.GetLedger(user.ID, ppfID)
	if err != nil {
		t.Fatalf("Failed to get ledger: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("Expected empty PPF ledger, got %d entries", len(remaining))
	}
}
