package repository

import (
	"database/sql"
	"fmt"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// SIPRepository provides data access methods for the sip_info table.
type SIPRepository struct {
	db *sql.DB
}

// NewSIPRepository creates a new SIPRepository with the provided database connection.
func NewSIPRepository(db *sql.DB) *SIPRepository {
	return &SIPRepository{db: db}
}

// GetSIPsOnUserID retrieves all SIPs for a user.
// Returns an empty slice if the user has no SIPs.
func (s *SIPRepository) GetSIPsOnUserID(userID string) ([]model.SIPInfo, error) {
	query := `
          SELECT id, user_id, fund_id, amount, frequency
          FROM sip_info
          WHERE user_id = ?
      `

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sip_info table: %w", err)
	}
	defer rows.Close()

	sips := []model.SIPInfo{}

	for rows.Next() {
		var sip model.SIPInfo

		err := rows.Scan(&sip.ID, &sip.UserID, &sip.FundID, &sip.Amount, &sip.Frequency)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sip_info table results: %w", err)
		}

		sips = append(sips, sip)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sip_info table: %w", err)
	}

	return sips, nil
}

// GetSIPOnID retrieves a single SIP by ID.
func (s *SIPRepository) GetSIPOnID(sipID string) (model.SIPInfo, error) {
	query := `
          SELECT id, user_id, fund_id, amount, frequency
          FROM sip_info
          WHERE id = ?
      `
	var sip model.SIPInfo

	err := s.db.QueryRow(query, sipID).Scan(&sip.ID, &sip.UserID, &sip.FundID, &sip.Amount, &sip.Frequency)
	if err == sql.ErrNoRows {
		return model.SIPInfo{}, apperrors.ErrSIPNotFound
	}
	if err != nil {
		return model.SIPInfo{}, fmt.Errorf("failed to query sip_info: %w", err)
	}

	return sip, nil
}

// CreateSIP inserts a new SIP.
func (s *SIPRepository) CreateSIP(sip model.SIPInfo) error {
	query := `
          INSERT INTO sip_info (id, user_id, fund_id, amount, frequency)
          VALUES (?, ?, ?, ?, ?)
      `

	_, err := s.db.Exec(query, sip.ID, sip.UserID, sip.FundID, sip.Amount, sip.Frequency)
	if err != nil {
		return fmt.Errorf("failed to insert sip_info: %w", err)
	}

	return nil
}

// UpdateSIP updates the amount and frequency of a SIP.
func (s *SIPRepository) UpdateSIP(sip model.SIPInfo) error {
	query := `
          UPDATE sip_info
          SET fund_id = ?, amount = ?, frequency = ?
          WHERE id = ?
      `

	result, err := s.db.Exec(query, sip.FundID, sip.Amount, sip.Frequency, sip.ID)
	if err != nil {
		return fmt.Errorf("failed to update sip_info: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSIPNotFound
	}

	return nil
}

// DeleteSIP removes a SIP.
func (s *SIPRepository) DeleteSIP(sipID string) error {
	result, err := s.db.Exec(`DELETE FROM sip_info WHERE id = ?`, sipID)
	if err != nil {
		return fmt.Errorf("failed to delete sip_info: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSIPNotFound
	}

	return nil
}
