package service_test

import (
	"errors"
	"testing"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/testutil"
)

// TestCapTypeService tests cap type management.
// WHY: Cap types anchor the cross-tab rows; listing must follow the fixed
// display order and deletion must refuse while funds still reference one.
func TestCapTypeService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	capTypeService := testutil.NewTestCapTypeService(t, db)

	t.Run("List follows display order", func(t *testing.T) {
		// Setup
		testutil.CreateCapType(t, db, "Mix")
		testutil.CreateCapType(t, db, "Large")
		testutil.CreateCapType(t, db, "Mid")

		// Execute
		capTypes, err := capTypeService.GetCapTypes()

		// Assert
		if err != nil {
			t.Fatalf("Failed to get cap types: %v", err)
		}
		want := []string{"Large", "Mid", "Mix"}
		for i, name := range want {
			if capTypes[i].Name != name {
				t.Errorf("Expected %s at position %d, got %s", name, i, capTypes[i].Name)
			}
		}

		testutil.CleanDatabase(t, db)
	})

	t.Run("Create and rename", func(t *testing.T) {
		// Setup
		capType, err := capTypeService.CreateCapType("Smal")
		if err != nil {
			t.Fatalf("Failed to create cap type: %v", err)
		}

		// Execute
		renamed, err := capTypeService.UpdateCapType(capType.ID, "Small")

		// Assert
		if err != nil {
			t.Fatalf("Failed to rename cap type: %v", err)
		}
		if renamed.Name != "Small" {
			t.Errorf("Expected Small, got %s", renamed.Name)
		}

		testutil.CleanDatabase(t, db)
	})

	t.Run("Rename unknown cap type fails", func(t *testing.T) {
		// Execute
		_, err := capTypeService.UpdateCapType(testutil.MakeID(), "Anything")

		// Assert
		if !errors.Is(err, apperrors.ErrCapTypeNotFound) {
			t.Errorf("Expected ErrCapTypeNotFound, got %v", err)
		}
	})

	t.Run("Delete cap type referenced by a fund is refused", func(t *testing.T) {
		// Setup
		capType := testutil.CreateCapType(t, db, "Large")
		testutil.NewFund(capType.ID).Build(t, db)

		// Execute
		err := capTypeService.DeleteCapType(capType.ID)

		// Assert
		if !errors.Is(err, apperrors.ErrCapTypeInUse) {
			t.Errorf("Expected ErrCapTypeInUse, got %v", err)
		}
		testutil.AssertRowCount(t, db, "cap_type", 1)

		testutil.CleanDatabase(t, db)
	})

	t.Run("Delete unreferenced cap type succeeds", func(t *testing.T) {
		// Setup
		capType := testutil.CreateCapType(t, db, "Unused")

		// Execute
		if err := capTypeService.DeleteCapType(capType.ID); err != nil {
			t.Fatalf("Failed to delete cap type: %v", err)
		}

		// Assert
		testutil.AssertRowCount(t, db, "cap_type", 0)
	})
}
