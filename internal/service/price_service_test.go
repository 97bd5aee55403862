package service_test

import (
	"errors"
	"testing"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/testutil"
)

// TestRefreshAll tests the NAV refresh run against a mock quote client.
// WHY: A refresh must be partial-failure tolerant: one unresolvable scheme
// code cannot discard the NAVs already fetched for the others.
func TestRefreshAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mock := testutil.NewMockQuotesClient()
	priceService := testutil.NewTestPriceService(t, db, mock)

	// Setup: two resolvable funds, one bad scheme code, one without a code
	capType := testutil.CreateCapType(t, db, "Large")
	good1 := testutil.NewFund(capType.ID).WithSymbol("118551").Build(t, db)
	good2 := testutil.NewFund(capType.ID).WithSymbol("120503").Build(t, db)
	testutil.NewFund(capType.ID).WithSymbol("999999").Build(t, db)
	testutil.NewFund(capType.ID).WithoutSymbol().Build(t, db)

	mock.SetNAV("118551", 95.5)
	mock.SetNAV("120503", 42.25)

	// Execute
	result, err := priceService.RefreshAll()

	// Assert
	if err != nil {
		t.Fatalf("Failed to refresh: %v", err)
	}
	if result.Refreshed != 2 {
		t.Errorf("Expected 2 refreshed, got %d", result.Refreshed)
	}
	if result.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", result.Failed)
	}
	if len(result.FailedSymbols) != 1 || result.FailedSymbols[0] != "999999" {
		t.Errorf("Expected failed symbol 999999, got %v", result.FailedSymbols)
	}

	// Successful fetches persisted despite the failure
	testutil.AssertRowCount(t, db, "fund_nav", 2)

	// Funds without a scheme code never reach the client
	for _, symbol := range mock.Calls() {
		if symbol == "" {
			t.Error("Expected no lookup for a fund without a scheme code")
		}
	}

	t.Run("Second refresh upserts instead of duplicating", func(t *testing.T) {
		// Execute
		result, err := priceService.RefreshAll()

		// Assert
		if err != nil {
			t.Fatalf("Failed to refresh: %v", err)
		}
		if result.Refreshed != 2 {
			t.Errorf("Expected 2 refreshed, got %d", result.Refreshed)
		}
		testutil.AssertRowCount(t, db, "fund_nav", 2)
	})

	t.Run("Refreshed navs value fund summaries", func(t *testing.T) {
		// Setup
		user := testutil.CreateUser(t, db, "")
		testutil.NewEntry(user.ID, good1.ID).WithAmount(955).WithUnits(10, 10).Build(t, db)
		testutil.NewEntry(user.ID, good2.ID).WithAmount(400).WithUnits(10, 10).Build(t, db)

		fundService := testutil.NewTestFundService(t, db)

		// Execute
		summaries, err := fundService.GetFundSummaries(user.ID, "invested", "desc")

		// Assert
		if err != nil {
			t.Fatalf("Failed to get summaries: %v", err)
		}
		if len(summaries) != 2 {
			t.Fatalf("Expected 2 summaries, got %d", len(summaries))
		}
		if summaries[0].TodayValue != 955 {
			t.Errorf("Expected today value 955 from refreshed nav, got %v", summaries[0].TodayValue)
		}
		if summaries[1].TodayValue != 422.5 {
			t.Errorf("Expected today value 422.5 from refreshed nav, got %v", summaries[1].TodayValue)
		}
	})
}

// TestProviderConfig tests provider configuration and token handling.
// WHY: The API token must be encrypted at rest, never echoed back through
// the status, and must reach the quote client in the clear during a refresh.
func TestProviderConfig(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mock := testutil.NewMockQuotesClient()
	priceService := testutil.NewTestPriceService(t, db, mock)

	t.Run("Unconfigured provider reports zero status", func(t *testing.T) {
		// Execute
		status, err := priceService.GetProvider()

		// Assert
		if err != nil {
			t.Fatalf("Failed to get provider status: %v", err)
		}
		if status.Configured || status.Enabled {
			t.Errorf("Expected unconfigured status, got %+v", status)
		}
	})

	t.Run("Token is encrypted at rest", func(t *testing.T) {
		// Execute
		status, err := priceService.SetProvider("secret-token", true)

		// Assert
		if err != nil {
			t.Fatalf("Failed to set provider: %v", err)
		}
		if !status.Configured || !status.Enabled {
			t.Errorf("Expected configured and enabled, got %+v", status)
		}

		var stored string
		if err := db.QueryRow(`SELECT api_token FROM provider_config`).Scan(&stored); err != nil {
			t.Fatalf("Failed to read stored token: %v", err)
		}
		if stored == "" || stored == "secret-token" {
			t.Error("Expected stored token to be encrypted")
		}
	})

	t.Run("Refresh decrypts the token for the client", func(t *testing.T) {
		// Execute
		if _, err := priceService.RefreshAll(); err != nil {
			t.Fatalf("Failed to refresh: %v", err)
		}

		// Assert
		if mock.APIKey() != "secret-token" {
			t.Errorf("Expected decrypted token at the client, got %q", mock.APIKey())
		}
	})

	t.Run("Disabled provider blocks refreshes", func(t *testing.T) {
		// Setup
		if _, err := priceService.SetProvider("", false); err != nil {
			t.Fatalf("Failed to disable provider: %v", err)
		}

		// Execute
		_, err := priceService.RefreshAll()

		// Assert
		if !errors.Is(err, apperrors.ErrProviderDisabled) {
			t.Errorf("Expected ErrProviderDisabled, got %v", err)
		}
	})
}
