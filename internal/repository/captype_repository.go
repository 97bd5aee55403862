package repository

import (
	"database/sql"
	"fmt"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// CapTypeRepository provides data access methods for the cap_type table.
type CapTypeRepository struct {
	db *sql.DB
}

// NewCapTypeRepository creates a new CapTypeRepository with the provided database connection.
func NewCapTypeRepository(db *sql.DB) *CapTypeRepository {
	return &CapTypeRepository{db: db}
}

// GetCapTypes retrieves all cap types. Display ordering is applied in the
// service layer, so rows come back in name order for determinism only.
func (s *CapTypeRepository) GetCapTypes() ([]model.CapType, error) {
	query := `
          SELECT id, name
          FROM cap_type
          ORDER BY name
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cap_type table: %w", err)
	}
	defer rows.Close()

	capTypes := []model.CapType{}

	for rows.Next() {
		var c model.CapType

		err := rows.Scan(&c.ID, &c.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cap_type table results: %w", err)
		}

		capTypes = append(capTypes, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cap_type table: %w", err)
	}

	return capTypes, nil
}

// GetCapTypeOnID retrieves a single cap type by ID.
func (s *CapTypeRepository) GetCapTypeOnID(capTypeID string) (model.CapType, error) {
	query := `
          SELECT id, name
          FROM cap_type
          WHERE id = ?
      `
	var c model.CapType

	err := s.db.QueryRow(query, capTypeID).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return model.CapType{}, apperrors.ErrCapTypeNotFound
	}
	if err != nil {
		return model.CapType{}, fmt.Errorf("failed to query cap_type: %w", err)
	}

	return c, nil
}

// CreateCapType inserts a new cap type.
func (s *CapTypeRepository) CreateCapType(capType model.CapType) error {
	query := `
          INSERT INTO cap_type (id, name)
          VALUES (?, ?)
      `

	_, err := s.db.Exec(query, capType.ID, capType.Name)
	if err != nil {
		return fmt.Errorf("failed to insert cap_type: %w", err)
	}

	return nil
}

// UpdateCapType renames a cap type.
func (s *CapTypeRepository) UpdateCapType(capType model.CapType) error {
	result, err := s.db.Exec(`UPDATE cap_type SET name = ? WHERE id = ?`, capType.Name, capType.ID)
	if err != nil {
		return fmt.Errorf("failed to update cap_type: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCapTypeNotFound
	}

	return nil
}

// CountFundsOnCapType returns the number of funds classified under a cap type.
func (s *CapTypeRepository) CountFundsOnCapType(capTypeID string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM mf_metadata WHERE cap_type_id = ?`, capTypeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count funds for cap_type: %w", err)
	}
	return count, nil
}

// DeleteCapType removes a cap type.
func (s *CapTypeRepository) DeleteCapType(capTypeID string) error {
	result, err := s.db.Exec(`DELETE FROM cap_type WHERE id = ?`, capTypeID)
	if err != nil {
		return fmt.Errorf("failed to delete cap_type: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCapTypeNotFound
	}

	return nil
}
