package repository

import (
	"database/sql"
	"fmt"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// AllocationRepository provides data access methods for the expected_allocation table.
type AllocationRepository struct {
	db *sql.DB
}

// NewAllocationRepository creates a new AllocationRepository with the provided database connection.
func NewAllocationRepository(db *sql.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// GetAllocationsOnUserID retrieves the saved target allocations for a user.
// Returns an empty slice if the user has not saved allocations yet.
func (s *AllocationRepository) GetAllocationsOnUserID(userID string) ([]model.ExpectedAllocation, error) {
	query := `
          SELECT id, user_id, cap_type_id, target_pct, active_pct, passive_pct
          FROM expected_allocation
          WHERE user_id = ?
      `

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expected_allocation table: %w", err)
	}
	defer rows.Close()

	allocations := []model.ExpectedAllocation{}

	for rows.Next() {
		var a model.ExpectedAllocation

		err := rows.Scan(&a.ID, &a.UserID, &a.CapTypeID, &a.TargetPct, &a.ActivePct, &a.PassivePct)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expected_allocation table results: %w", err)
		}

		allocations = append(allocations, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expected_allocation table: %w", err)
	}

	return allocations, nil
}

// ReplaceAllocations atomically replaces a user's saved allocations.
// The delete and inserts run in one transaction so a failed save leaves
// the previous allocations untouched.
func (s *AllocationRepository) ReplaceAllocations(userID string, allocations []model.ExpectedAllocation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(`DELETE FROM expected_allocation WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear expected_allocation: %w", err)
	}

	insert := `
          INSERT INTO expected_allocation (id, user_id, cap_type_id, target_pct, active_pct, passive_pct)
          VALUES (?, ?, ?, ?, ?, ?)
      `

	for _, a := range allocations {
		if _, err := tx.Exec(insert, a.ID, a.UserID, a.CapTypeID, a.TargetPct, a.ActivePct, a.PassivePct); err != nil {
			return fmt.Errorf("failed to insert expected_allocation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expected_allocation save: %w", err)
	}

	return nil
}
