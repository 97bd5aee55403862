package service_test

import (
	"errors"
	"testing"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/testutil"
)

// TestUserService tests user management.
// WHY: Deleting a user cascades through every table keyed on user_id; the
// cascade is declared in the schema and this guards it from regressing.
func TestUserService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	userService := testutil.NewTestUserService(t, db)

	t.Run("Create and list", func(t *testing.T) {
		// Execute
		user, err := userService.CreateUser("Asha")

		// Assert
		if err != nil {
			t.Fatalf("Failed to create user: %v", err)
		}
		if user.ID == "" {
			t.Error("Expected generated user ID")
		}

		users, err := userService.GetUsers()
		if err != nil {
			t.Fatalf("Failed to list users: %v", err)
		}
		if len(users) != 1 || users[0].Name != "Asha" {
			t.Errorf("Expected one user named Asha, got %+v", users)
		}

		testutil.CleanDatabase(t, db)
	})

	t.Run("Delete cascades to dependent records", func(t *testing.T) {
		// Setup
		user := testutil.CreateUser(t, db, "")
		capType := testutil.CreateCapType(t, db, "Large")
		fund := testutil.NewFund(capType.ID).Build(t, db)
		testutil.NewEntry(user.ID, fund.ID).Build(t, db)
		testutil.CreateSIP(t, db, user.ID, fund.ID, 500, "Monthly")

		// Execute
		if err := userService.DeleteUser(user.ID); err != nil {
			t.Fatalf("Failed to delete user: %v", err)
		}

		// Assert
		testutil.AssertRowCount(t, db, "user", 0)
		testutil.AssertRowCount(t, db, "mf_entry", 0)
		testutil.AssertRowCount(t, db, "sip_info", 0)

		testutil.CleanDatabase(t, db)
	})

	t.Run("Delete unknown user fails", func(t *testing.T) {
		// Execute
		err := userService.DeleteUser(testutil.MakeID())

		// Assert
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})
}
