package repository

import (
	"database/sql"
	"fmt"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// PFRepository provides data access methods for the pf_type, pf_interest_rate
// and pf_entry tables.
type PFRepository struct {
	db *sql.DB
}

// NewPFRepository creates a new PFRepository with the provided database connection.
func NewPFRepository(db *sql.DB) *PFRepository {
	return &PFRepository{db: db}
}

// GetPFTypes retrieves the provident fund ledger kinds (PPF, PF, EPS).
func (s *PFRepository) GetPFTypes() ([]model.PFType, error) {
	query := `
          SELECT id, name
          FROM pf_type
          ORDER BY name
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pf_type table: %w", err)
	}
	defer rows.Close()

	types := []model.PFType{}

	for rows.Next() {
		var t model.PFType

		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan pf_type table results: %w", err)
		}

		types = append(types, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pf_type table: %w", err)
	}

	return types, nil
}

// GetPFTypeOnID retrieves a single provident fund type by ID.
func (s *PFRepository) GetPFTypeOnID(pfTypeID string) (model.PFType, error) {
	var t model.PFType

	err := s.db.QueryRow(`SELECT id, name FROM pf_type WHERE id = ?`, pfTypeID).Scan(&t.ID, &t.Name)
	if err == sql.ErrNoRows {
		return model.PFType{}, apperrors.ErrPFTypeNotFound
	}
	if err != nil {
		return model.PFType{}, fmt.Errorf("failed to query pf_type: %w", err)
	}

	return t, nil
}

// GetInterestRates retrieves all interest rate windows ordered by start date.
func (s *PFRepository) GetInterestRates() ([]model.PFInterestRate, error) {
	query := `
          SELECT id, start_date, end_date, rate
          FROM pf_interest_rate
          ORDER BY start_date
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pf_interest_rate table: %w", err)
	}
	defer rows.Close()

	rates := []model.PFInterestRate{}

	for rows.Next() {
		var r model.PFInterestRate
		var startStr, endStr string

		if err := rows.Scan(&r.ID, &startStr, &endStr, &r.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan pf_interest_rate table results: %w", err)
		}

		if r.StartDate, err = ParseTime(startStr); err != nil {
			return nil, err
		}
		if r.EndDate, err = ParseTime(endStr); err != nil {
			return nil, err
		}

		rates = append(rates, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pf_interest_rate table: %w", err)
	}

	return rates, nil
}

// CreateInterestRate inserts a new interest rate window.
func (s *PFRepository) CreateInterestRate(rate model.PFInterestRate) error {
	query := `
          INSERT INTO pf_interest_rate (id, start_date, end_date, rate)
          VALUES (?, ?, ?, ?)
      `

	_, err := s.db.Exec(query, rate.ID, rate.StartDate.Format(DateFormat), rate.EndDate.Format(DateFormat), rate.Rate)
	if err != nil {
		return fmt.Errorf("failed to insert pf_interest_rate: %w", err)
	}

	return nil
}

// UpdateInterestRate updates an interest rate window.
func (s *PFRepository) UpdateInterestRate(rate model.PFInterestRate) error {
	query := `
          UPDATE pf_interest_rate
          SET start_date = ?, end_date = ?, rate = ?
          WHERE id = ?
      `

	result, err := s.db.Exec(query, rate.StartDate.Format(DateFormat), rate.EndDate.Format(DateFormat), rate.Rate, rate.ID)
	if err != nil {
		return fmt.Errorf("failed to update pf_interest_rate: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInterestRateNotFound
	}

	return nil
}

// DeleteInterestRate removes an interest rate window.
func (s *PFRepository) DeleteInterestRate(rateID string) error {
	result, err := s.db.Exec(`DELETE FROM pf_interest_rate WHERE id = ?`, rateID)
	if err != nil {
		return fmt.Errorf("failed to delete pf_interest_rate: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInterestRateNotFound
	}

	return nil
}

const pfEntryColumns = `id, user_id, pf_type_id, date, opening_balance, lowest_balance, current_balance, amount_deposited, month_interest, interest_rate_id`

func scanPFEntry(scan func(dest ...any) error) (model.PFEntry, error) {
	var e model.PFEntry
	var dateStr string

	err := scan(
		&e.ID,
		&e.UserID,
		&e.PFTypeID,
		&dateStr,
		&e.OpeningBalance,
		&e.LowestBalance,
		&e.CurrentBalance,
		&e.AmountDeposited,
		&e.MonthInterest,
		&e.InterestRateID,
	)
	if err != nil {
		return model.PFEntry{}, err
	}

	e.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.PFEntry{}, err
	}

	return e, nil
}

// GetEntriesOnUserAndType retrieves a user's ledger for one provident fund
// type, ordered by date. Returns an empty slice if the ledger has no entries.
func (s *PFRepository) GetEntriesOnUserAndType(userID, pfTypeID string) ([]model.PFEntry, error) {
	query := `
          SELECT ` + pfEntryColumns + `
          FROM pf_entry
          WHERE user_id = ? AND pf_type_id = ?
          ORDER BY date
      `

	rows, err := s.db.Query(query, userID, pfTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pf_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.PFEntry{}

	for rows.Next() {
		e, err := scanPFEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pf_entry table results: %w", err)
		}

		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pf_entry table: %w", err)
	}

	return entries, nil
}

// GetEntryOnID retrieves a single ledger entry by ID.
func (s *PFRepository) GetEntryOnID(entryID string) (model.PFEntry, error) {
	query := `
          SELECT ` + pfEntryColumns + `
          FROM pf_entry
          WHERE id = ?
      `

	e, err := scanPFEntry(s.db.QueryRow(query, entryID).Scan)
	if err == sql.ErrNoRows {
		return model.PFEntry{}, apperrors.ErrPFEntryNotFound
	}
	if err != nil {
		return model.PFEntry{}, fmt.Errorf("failed to query pf_entry: %w", err)
	}

	return e, nil
}

// GetLedgerKeys returns the distinct (user, type) pairs that have ledger
// entries. Used by the recalculate-all operation.
func (s *PFRepository) GetLedgerKeys() ([][2]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT user_id, pf_type_id FROM pf_entry`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pf_entry table: %w", err)
	}
	defer rows.Close()

	keys := [][2]string{}

	for rows.Next() {
		var userID, pfTypeID string
		if err := rows.Scan(&userID, &pfTypeID); err != nil {
			return nil, fmt.Errorf("failed to scan pf_entry table results: %w", err)
		}
		keys = append(keys, [2]string{userID, pfTypeID})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pf_entry table: %w", err)
	}

	return keys, nil
}

// CreateEntries bulk-inserts ledger entries in one transaction.
func (s *PFRepository) CreateEntries(entries []model.PFEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	insert := `
          INSERT INTO pf_entry (` + pfEntryColumns + `)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	for _, e := range entries {
		_, err := tx.Exec(
			insert,
			e.ID,
			e.UserID,
			e.PFTypeID,
			e.Date.Format(DateFormat),
			e.OpeningBalance,
			e.LowestBalance,
			e.CurrentBalance,
			e.AmountDeposited,
			e.MonthInterest,
			e.InterestRateID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert pf_entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pf_entry inserts: %w", err)
	}

	return nil
}

// UpdateEntries rewrites the computed fields of ledger entries in one transaction.
func (s *PFRepository) UpdateEntries(entries []model.PFEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	update := `
          UPDATE pf_entry
          SET opening_balance = ?, lowest_balance = ?, current_balance = ?,
              amount_deposited = ?, month_interest = ?, interest_rate_id = ?
          WHERE id = ?
      `

	for _, e := range entries {
		_, err := tx.Exec(
			update,
			e.OpeningBalance,
			e.LowestBalance,
			e.CurrentBalance,
			e.AmountDeposited,
			e.MonthInterest,
			e.InterestRateID,
			e.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update pf_entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pf_entry updates: %w", err)
	}

	return nil
}

// DeleteEntriesOnUserAndType wipes a user's ledger for one provident fund type.
func (s *PFRepository) DeleteEntriesOnUserAndType(userID, pfTypeID string) error {
	_, err := s.db.Exec(`DELETE FROM pf_entry WHERE user_id = ? AND pf_type_id = ?`, userID, pfTypeID)
	if err != nil {
		return fmt.Errorf("failed to delete pf_entry rows: %w", err)
	}

	return nil
}

// CountEntriesOnUserAndType returns the number of entries in a ledger.
func (s *PFRepository) CountEntriesOnUserAndType(userID, pfTypeID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM pf_entry WHERE user_id = ? AND pf_type_id = ?`,
		userID, pfTypeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pf_entry rows: %w", err)
	}
	return count, nil
}
