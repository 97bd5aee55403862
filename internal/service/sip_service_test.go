package service_test

import (
	"errors"
	"testing"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/testutil"
)

// TestGetSIPs tests SIP listing with the monthly-equivalent total.
// WHY: The total in the SIP list footer converts every frequency to a
// monthly outflow; a weekly SIP must count four times its amount.
func TestGetSIPs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	sipService := testutil.NewTestSIPService(t, db)

	// Setup
	user := testutil.CreateUser(t, db, "")
	capType := testutil.CreateCapType(t, db, "Large")
	fund := testutil.NewFund(capType.ID).Build(t, db)

	testutil.CreateSIP(t, db, user.ID, fund.ID, 1000, "Monthly")
	testutil.CreateSIP(t, db, user.ID, fund.ID, 250, "Weekly")
	testutil.CreateSIP(t, db, user.ID, fund.ID, 500, "Quarterly")

	// Execute
	sips, total, err := sipService.GetSIPs(user.ID)

	// Assert
	if err != nil {
		t.Fatalf("Failed to get sips: %v", err)
	}
	if len(sips) != 3 {
		t.Fatalf("Expected 3 sips, got %d", len(sips))
	}
	// 1000 monthly + 250*4 weekly, the unrecognized frequency adds nothing
	if total != 2000 {
		t.Errorf("Expected monthly total 2000, got %v", total)
	}
}

// TestSIPCRUD tests SIP creation, update and deletion.
func TestSIPCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	sipService := testutil.NewTestSIPService(t, db)

	user := testutil.CreateUser(t, db, "")
	capType := testutil.CreateCapType(t, db, "Mid")
	fund := testutil.NewFund(capType.ID).Build(t, db)

	t.Run("Create sip for unknown fund fails", func(t *testing.T) {
		// Execute
		_, err := sipService.CreateSIP(user.ID, testutil.MakeID(), 500, "Monthly")

		// Assert
		if !errors.Is(err, apperrors.ErrFundNotFound) {
			t.Errorf("Expected ErrFundNotFound, got %v", err)
		}
		testutil.AssertRowCount(t, db, "sip_info", 0)
	})

	t.Run("Create then update amount", func(t *testing.T) {
		// Setup
		sip, err := sipService.CreateSIP(user.ID, fund.ID, 500, "Monthly")
		if err != nil {
			t.Fatalf("Failed to create sip: %v", err)
		}

		// Execute
		amount := 750.0
		updated, err := sipService.UpdateSIP(sip.ID, nil, &amount, nil)

		// Assert
		if err != nil {
			t.Fatalf("Failed to update sip: %v", err)
		}
		if updated.Amount != 750 {
			t.Errorf("Expected amount 750, got %v", updated.Amount)
		}
		if updated.Frequency != "Monthly" {
			t.Errorf("Expected frequency untouched, got %s", updated.Frequency)
		}
	})

	t.Run("Update unknown sip fails", func(t *testing.T) {
		// Execute
		amount := 100.0
		_, err := sipService.UpdateSIP(testutil.MakeID(), nil, &amount, nil)

		// Assert
		if !errors.Is(err, apperrors.ErrSIPNotFound) {
			t.Errorf("Expected ErrSIPNotFound, got %v", err)
		}
	})

	t.Run("Delete removes the sip", func(t *testing.T) {
		// Setup
		sip := testutil.CreateSIP(t, db, user.ID, fund.ID, 200, "Daily")

		// Execute
		if err := sipService.DeleteSIP(sip.ID); err != nil {
			t.Fatalf("Failed to delete sip: %v", err)
		}

		// Assert
		sips, _, err := sipService.GetSIPs(user.ID)
		if err != nil {
			t.Fatalf("Failed to get sips: %v", err)
		}
		for _, s := range sips {
			if s.ID == sip.ID {
				t.Error("Expected sip to be deleted")
			}
		}
	})
}
