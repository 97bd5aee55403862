package repository

import (
	"database/sql"
	"fmt"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// EntryRepository provides data access methods for the mf_entry table.
type EntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new EntryRepository with the provided database connection.
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

const entryColumns = `id, user_id, fund_id, date, invest_type, amount, nav, units, balance_unit, principal_redeem`

func scanEntry(scan func(dest ...any) error) (model.FundEntry, error) {
	var e model.FundEntry
	var dateStr string

	err := scan(
		&e.ID,
		&e.UserID,
		&e.FundID,
		&dateStr,
		&e.InvestType,
		&e.Amount,
		&e.Nav,
		&e.Units,
		&e.BalanceUnit,
		&e.PrincipalRedeem,
	)
	if err != nil {
		return model.FundEntry{}, err
	}

	e.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.FundEntry{}, err
	}

	return e, nil
}

// GetEntriesOnUserID retrieves all fund entries for a user ordered by date.
// Returns an empty slice if the user has no entries.
func (s *EntryRepository) GetEntriesOnUserID(userID string) ([]model.FundEntry, error) {
	query := `
          SELECT ` + entryColumns + `
          FROM mf_entry
          WHERE user_id = ?
          ORDER BY date
      `

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mf_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.FundEntry{}

	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mf_entry table results: %w", err)
		}

		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mf_entry table: %w", err)
	}

	return entries, nil
}

// GetEntryOnID retrieves a single fund entry by ID.
func (s *EntryRepository) GetEntryOnID(entryID string) (model.FundEntry, error) {
	query := `
          SELECT ` + entryColumns + `
          FROM mf_entry
          WHERE id = ?
      `

	e, err := scanEntry(s.db.QueryRow(query, entryID).Scan)
	if err == sql.ErrNoRows {
		return model.FundEntry{}, apperrors.ErrFundEntryNotFound
	}
	if err != nil {
		return model.FundEntry{}, fmt.Errorf("failed to query mf_entry: %w", err)
	}

	return e, nil
}

// CreateEntry inserts a new fund entry.
func (s *EntryRepository) CreateEntry(entry model.FundEntry) error {
	query := `
          INSERT INTO mf_entry (` + entryColumns + `)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := s.db.Exec(
		query,
		entry.ID,
		entry.UserID,
		entry.FundID,
		entry.Date.Format(DateFormat),
		entry.InvestType,
		entry.Amount,
		entry.Nav,
		entry.Units,
		entry.BalanceUnit,
		entry.PrincipalRedeem,
	)
	if err != nil {
		return fmt.Errorf("failed to insert mf_entry: %w", err)
	}

	return nil
}

// UpdateEntry updates all mutable fields of a fund entry.
func (s *EntryRepository) UpdateEntry(entry model.FundEntry) error {
	query := `
          UPDATE mf_entry
          SET fund_id = ?, date = ?, invest_type = ?, amount = ?, nav = ?,
              units = ?, balance_unit = ?, principal_redeem = ?
          WHERE id = ?
      `

	result, err := s.db.Exec(
		query,
		entry.FundID,
		entry.Date.Format(DateFormat),
		entry.InvestType,
		entry.Amount,
		entry.Nav,
		entry.Units,
		entry.BalanceUnit,
		entry.PrincipalRedeem,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mf_entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFundEntryNotFound
	}

	return nil
}

// DeleteEntry removes a fund entry.
func (s *EntryRepository) DeleteEntry(entryID string) error {
	result, err := s.db.Exec(`DELETE FROM mf_entry WHERE id = ?`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete mf_entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFundEntryNotFound
	}

	return nil
}
