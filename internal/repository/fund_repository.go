package repository

import (
	"database/sql"
	"fmt"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// FundRepository provides data access methods for the mf_metadata and
// fund_nav tables.
type FundRepository struct {
	db *sql.DB
}

// NewFundRepository creates a new FundRepository with the provided database connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

// GetFunds retrieves all fund metadata rows ordered by name.
// Returns an empty slice if no funds exist.
func (s *FundRepository) GetFunds() ([]model.FundMetadata, error) {
	query := `
          SELECT id, name, COALESCE(symbol, ''), cap_type_id, active_or_passive
          FROM mf_metadata
          ORDER BY name
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query mf_metadata table: %w", err)
	}
	defer rows.Close()

	funds := []model.FundMetadata{}

	for rows.Next() {
		var f model.FundMetadata

		err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Symbol,
			&f.CapTypeID,
			&f.ActiveOrPassive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mf_metadata table results: %w", err)
		}

		funds = append(funds, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mf_metadata table: %w", err)
	}

	return funds, nil
}

// GetFundOnID retrieves a single fund by ID.
func (s *FundRepository) GetFundOnID(fundID string) (model.FundMetadata, error) {
	query := `
          SELECT id, name, COALESCE(symbol, ''), cap_type_id, active_or_passive
          FROM mf_metadata
          WHERE id = ?
      `
	var f model.FundMetadata

	err := s.db.QueryRow(query, fundID).Scan(
		&f.ID,
		&f.Name,
		&f.Symbol,
		&f.CapTypeID,
		&f.ActiveOrPassive,
	)
	if err == sql.ErrNoRows {
		return model.FundMetadata{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.FundMetadata{}, fmt.Errorf("failed to query mf_metadata: %w", err)
	}

	return f, nil
}

// CreateFund inserts a new fund metadata row.
func (s *FundRepository) CreateFund(fund model.FundMetadata) error {
	query := `
          INSERT INTO mf_metadata (id, name, symbol, cap_type_id, active_or_passive)
          VALUES (?, ?, ?, ?, ?)
      `

	_, err := s.db.Exec(query, fund.ID, fund.Name, fund.Symbol, fund.CapTypeID, fund.ActiveOrPassive)
	if err != nil {
		return fmt.Errorf("failed to insert mf_metadata: %w", err)
	}

	return nil
}

// UpdateFund updates a fund metadata row.
func (s *FundRepository) UpdateFund(fund model.FundMetadata) error {
	query := `
          UPDATE mf_metadata
          SET name = ?, symbol = ?, cap_type_id = ?, active_or_passive = ?
          WHERE id = ?
      `

	result, err := s.db.Exec(query, fund.Name, fund.Symbol, fund.CapTypeID, fund.ActiveOrPassive, fund.ID)
	if err != nil {
		return fmt.Errorf("failed to update mf_metadata: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFundNotFound
	}

	return nil
}

// CountEntriesOnFund returns the number of fund entries referencing a fund.
func (s *FundRepository) CountEntriesOnFund(fundID string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM mf_entry WHERE fund_id = ?`, fundID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries for fund: %w", err)
	}
	return count, nil
}

// DeleteFund removes a fund metadata row.
func (s *FundRepository) DeleteFund(fundID string) error {
	result, err := s.db.Exec(`DELETE FROM mf_metadata WHERE id = ?`, fundID)
	if err != nil {
		return fmt.Errorf("failed to delete mf_metadata: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFundNotFound
	}

	return nil
}

// GetLatestNavs returns the most recent NAV per fund as a fundID -> nav map.
// Funds with no recorded NAV are absent from the map.
func (s *FundRepository) GetLatestNavs() (map[string]float64, error) {
	query := `
          SELECT fn.fund_id, fn.nav
          FROM fund_nav fn
          INNER JOIN (
              SELECT fund_id, MAX(date) AS latest_date
              FROM fund_nav
              GROUP BY fund_id
          ) latest ON fn.fund_id = latest.fund_id AND fn.date = latest.latest_date
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_nav table: %w", err)
	}
	defer rows.Close()

	navs := make(map[string]float64)

	for rows.Next() {
		var fundID string
		var nav float64

		if err := rows.Scan(&fundID, &nav); err != nil {
			return nil, fmt.Errorf("failed to scan fund_nav table results: %w", err)
		}

		navs[fundID] = nav
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_nav table: %w", err)
	}

	return navs, nil
}

// GetLatestNavOnFundID returns the most recent NAV for one fund.
func (s *FundRepository) GetLatestNavOnFundID(fundID string) (model.FundNav, error) {
	query := `
          SELECT id, fund_id, date, nav
          FROM fund_nav
          WHERE fund_id = ?
          ORDER BY date DESC
          LIMIT 1
      `
	var n model.FundNav
	var dateStr string

	err := s.db.QueryRow(query, fundID).Scan(&n.ID, &n.FundID, &dateStr, &n.Nav)
	if err == sql.ErrNoRows {
		return model.FundNav{}, apperrors.ErrFundNavNotFound
	}
	if err != nil {
		return model.FundNav{}, fmt.Errorf("failed to query fund_nav: %w", err)
	}

	n.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.FundNav{}, err
	}

	return n, nil
}

// UpsertNav inserts or replaces a NAV observation for a fund and date.
func (s *FundRepository) UpsertNav(nav model.FundNav) error {
	query := `
          INSERT INTO fund_nav (id, fund_id, date, nav)
          VALUES (?, ?, ?, ?)
          ON CONFLICT(fund_id, date) DO UPDATE SET nav = excluded.nav
      `

	_, err := s.db.Exec(query, nav.ID, nav.FundID, nav.Date.Format(DateFormat), nav.Nav)
	if err != nil {
		return fmt.Errorf("failed to upsert fund_nav: %w", err)
	}

	return nil
}
