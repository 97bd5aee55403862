package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/testutil"
)

// TestFundCRUD tests fund metadata management against the database.
// WHY: Fund creation enforces the cap type foreign relation at the service
// layer so the API can return a clean 400 instead of a driver error.
func TestFundCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fundService := testutil.NewTestFundService(t, db)

	t.Run("Create fund with valid cap type", func(t *testing.T) {
		// Setup
		capType := testutil.CreateCapType(t, db, "Large")

		// Execute
		fund, err := fundService.CreateFund("Bluechip Fund", "118551", capType.ID, "Active")

		// Assert
		if err != nil {
			t.Fatalf("Failed to create fund: %v", err)
		}
		if fund.ID == "" {
			t.Error("Expected generated fund ID")
		}
		if fund.CapTypeID != capType.ID {
			t.Errorf("Expected cap type %s, got %s", capType.ID, fund.CapTypeID)
		}
		testutil.AssertRowCount(t, db, "mf_metadata", 1)

		testutil.CleanDatabase(t, db)
	})

	t.Run("Create fund with unknown cap type fails", func(t *testing.T) {
		// Execute
		_, err := fundService.CreateFund("Orphan Fund", "", testutil.MakeID(), "Active")

		// Assert
		if !errors.Is(err, apperrors.ErrCapTypeNotFound) {
			t.Errorf("Expected ErrCapTypeNotFound, got %v", err)
		}
		testutil.AssertRowCount(t, db, "mf_metadata", 0)
	})

	t.Run("Update applies only provided fields", func(t *testing.T) {
		// Setup
		capType := testutil.CreateCapType(t, db, "Mid")
		fund := testutil.NewFund(capType.ID).WithName("Old Name").Build(t, db)

		// Execute
		newName := "New Name"
		updated, err := fundService.UpdateFund(fund.ID, &newName, nil, nil, nil)

		// Assert
		if err != nil {
			t.Fatalf("Failed to update fund: %v", err)
		}
		if updated.Name != "New Name" {
			t.Errorf("Expected renamed fund, got %s", updated.Name)
		}
		if updated.Symbol != fund.Symbol {
			t.Errorf("Expected symbol untouched, got %s", updated.Symbol)
		}

		testutil.CleanDatabase(t, db)
	})

	t.Run("Delete fund with entries is refused", func(t *testing.T) {
		// Setup
		user := testutil.CreateUser(t, db, "")
		capType := testutil.CreateCapType(t, db, "Small")
		fund := testutil.NewFund(capType.ID).Build(t, db)
		testutil.NewEntry(user.ID, fund.ID).Build(t, db)

		// Execute
		err := fundService.DeleteFund(fund.ID)

		// Assert
		if !errors.Is(err, apperrors.ErrFundInUse) {
			t.Errorf("Expected ErrFundInUse, got %v", err)
		}
		testutil.AssertRowCount(t, db, "mf_metadata", 1)

		testutil.CleanDatabase(t, db)
	})
}

// TestGetFundSummaries tests the summary endpoint's data loading and sorting.
// WHY: The engine is covered separately; this exercises the wiring from
// stored entries and NAVs through to sorted summary rows.
func TestGetFundSummaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fundService := testutil.NewTestFundService(t, db)

	// Setup: two funds, the cheaper one invested more
	user := testutil.CreateUser(t, db, "")
	capType := testutil.CreateCapType(t, db, "Large")
	alpha := testutil.NewFund(capType.ID).WithName("Alpha Fund").Build(t, db)
	beta := testutil.NewFund(capType.ID).WithName("Beta Fund").Build(t, db)

	navDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	testutil.CreateNav(t, db, alpha.ID, navDate, 50)
	testutil.CreateNav(t, db, beta.ID, navDate, 20)

	testutil.NewEntry(user.ID, alpha.ID).WithAmount(1000).WithUnits(20, 20).Build(t, db)
	testutil.NewEntry(user.ID, beta.ID).WithAmount(3000).WithUnits(150, 150).Build(t, db)

	t.Run("Summaries value against latest nav", func(t *testing.T) {
		// Execute
		summaries, err := fundService.GetFundSummaries(user.ID, "", "")

		// Assert
		if err != nil {
			t.Fatalf("Failed to get summaries: %v", err)
		}
		if len(summaries) != 2 {
			t.Fatalf("Expected 2 summaries, got %d", len(summaries))
		}

		byName := map[string]float64{}
		for _, s := range summaries {
			byName[s.FundName] = s.TodayValue
		}
		if byName["Alpha Fund"] != 1000 {
			t.Errorf("Expected Alpha Fund valued at 1000, got %v", byName["Alpha Fund"])
		}
		if byName["Beta Fund"] != 3000 {
			t.Errorf("Expected Beta Fund valued at 3000, got %v", byName["Beta Fund"])
		}
	})

	t.Run("Sort by invested descending", func(t *testing.T) {
		// Execute
		summaries, err := fundService.GetFundSummaries(user.ID, "invested", "desc")

		// Assert
		if err != nil {
			t.Fatalf("Failed to get summaries: %v", err)
		}
		if summaries[0].FundName != "Beta Fund" {
			t.Errorf("Expected Beta Fund first when sorting by invested desc, got %s", summaries[0].FundName)
		}
	})

	t.Run("Sort by name ascending", func(t *testing.T) {
		// Execute
		summaries, err := fundService.GetFundSummaries(user.ID, "name", "asc")

		// Assert
		if err != nil {
			t.Fatalf("Failed to get summaries: %v", err)
		}
		if summaries[0].FundName != "Alpha Fund" {
			t.Errorf("Expected Alpha Fund first when sorting by name, got %s", summaries[0].FundName)
		}
	})

	t.Run("User without entries gets empty summaries", func(t *testing.T) {
		// Setup
		other := testutil.CreateUser(t, db, "")

		// Execute
		summaries, err := fundService.GetFundSummaries(other.ID, "", "")

		// Assert
		if err != nil {
			t.Fatalf("Failed to get summaries: %v", err)
		}
		if len(summaries) != 0 {
			t.Errorf("Expected no summaries, got %d", len(summaries))
		}
	})
}

// TestGetFundMetrics tests the cross-tab assembly from stored data.
// WHY: The metrics endpoint joins four tables worth of data; this checks the
// SIP monthly equivalents and saved allocations actually reach the engine.
func TestGetFundMetrics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fundService := testutil.NewTestFundService(t, db)

	// Setup
	user := testutil.CreateUser(t, db, "")
	large := testutil.CreateCapType(t, db, "Large")
	mid := testutil.CreateCapType(t, db, "Mid")

	activeFund := testutil.NewFund(large.ID).Build(t, db)
	passiveFund := testutil.NewFund(large.ID).Passive().Build(t, db)
	midFund := testutil.NewFund(mid.ID).Build(t, db)

	testutil.NewEntry(user.ID, activeFund.ID).WithAmount(600).WithUnits(6, 6).Build(t, db)
	testutil.NewEntry(user.ID, passiveFund.ID).WithAmount(400).WithUnits(4, 4).Build(t, db)
	testutil.NewEntry(user.ID, midFund.ID).WithAmount(1000).WithUnits(10, 10).Build(t, db)

	testutil.CreateSIP(t, db, user.ID, activeFund.ID, 500, "Monthly")
	testutil.CreateSIP(t, db, user.ID, midFund.ID, 100, "Weekly")

	testutil.CreateAllocation(t, db, user.ID, large.ID, 50, 60, 40)

	// Execute
	crossTab, err := fundService.GetFundMetrics(user.ID)

	// Assert
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	if crossTab.TotalInvested != 2000 {
		t.Errorf("Expected total invested 2000, got %v", crossTab.TotalInvested)
	}
	if crossTab.SIPMonthly != 900 {
		t.Errorf("Expected monthly sip 900, got %v", crossTab.SIPMonthly)
	}
	if len(crossTab.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(crossTab.Rows))
	}

	largeRow := crossTab.Rows[0]
	if largeRow.CapTypeName != "Large" {
		t.Fatalf("Expected Large row first, got %s", largeRow.CapTypeName)
	}
	if largeRow.TargetPct != 50 || largeRow.Expected != 1000 {
		t.Errorf("Expected Large target 50 expected 1000, got %v and %v", largeRow.TargetPct, largeRow.Expected)
	}
}
