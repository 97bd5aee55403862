package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/handlers"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/testutil"
)

// TestSaveAllocationsHandler tests the allocation save endpoint.
// WHY: The frontend relies on a 400 with the validation message in the
// details to render the failure inline; a 500 would surface as a generic
// error toast instead.
func TestSaveAllocationsHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewAllocationHandler(testutil.NewTestAllocationService(t, db))

	user := testutil.CreateUser(t, db, "")
	large := testutil.CreateCapType(t, db, "Large")
	mid := testutil.CreateCapType(t, db, "Mid")

	t.Run("Valid save returns the stored allocations", func(t *testing.T) {
		// Setup
		body := request.SaveAllocationsRequest{
			Allocations: []request.AllocationItem{
				{CapTypeID: large.ID, TargetPct: 60, ActivePct: 70, PassivePct: 30},
				{CapTypeID: mid.ID, TargetPct: 40, ActivePct: 0, PassivePct: 0},
			},
		}
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/allocation/user/"+user.ID, body, map[string]string{"uuid": user.ID})
		w := httptest.NewRecorder()

		// Execute
		handler.SaveAllocations(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp []handlers.AllocationResponse
		testutil.DecodeJSONResponse(t, w, &resp)
		if len(resp) != 2 {
			t.Fatalf("Expected 2 allocations, got %d", len(resp))
		}
		if resp[0].UserID != user.ID {
			t.Errorf("Expected user %s, got %s", user.ID, resp[0].UserID)
		}
		testutil.AssertRowCount(t, db, "expected_allocation", 2)
	})

	t.Run("Validation failure returns 400 with field details", func(t *testing.T) {
		// Setup: split totals 87
		body := request.SaveAllocationsRequest{
			Allocations: []request.AllocationItem{
				{CapTypeID: mid.ID, TargetPct: 100, ActivePct: 57, PassivePct: 30},
			},
		}
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/allocation/user/"+user.ID, body, map[string]string{"uuid": user.ID})
		w := httptest.NewRecorder()

		// Execute
		handler.SaveAllocations(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", w.Code)
		}

		var resp struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		}
		testutil.DecodeJSONResponse(t, w, &resp)
		if resp.Error != "validation failed" {
			t.Errorf("Expected validation failed, got %s", resp.Error)
		}
		want := "Active/Passive split for Mid must equal 100%. Current total: 87%"
		if resp.Details["allocations"] != want {
			t.Errorf("Expected %q, got %q", want, resp.Details["allocations"])
		}
	})

	t.Run("Malformed body returns 400", func(t *testing.T) {
		// Setup
		req := httptest.NewRequest(http.MethodPut, "/api/allocation/user/"+user.ID, nil)
		w := httptest.NewRecorder()

		// Execute
		handler.SaveAllocations(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", w.Code)
		}

		var resp response.ErrorResponse
		testutil.DecodeJSONResponse(t, w, &resp)
		if resp.Error != "invalid request body" {
			t.Errorf("Expected invalid request body, got %s", resp.Error)
		}
	})

	t.Run("Fetch returns saved allocations", func(t *testing.T) {
		// Setup
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/allocation/user/"+user.ID, map[string]string{"uuid": user.ID})
		w := httptest.NewRecorder()

		// Execute
		handler.AllocationsPerUser(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp []handlers.AllocationResponse
		testutil.DecodeJSONResponse(t, w, &resp)
		if len(resp) != 2 {
			t.Errorf("Expected 2 allocations, got %d", len(resp))
		}
	})
}
