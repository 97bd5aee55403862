package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// ProviderRepository provides data access methods for the provider_config table.
// The table holds at most one row.
type ProviderRepository struct {
	db *sql.DB
}

// NewProviderRepository creates a new ProviderRepository with the provided database connection.
func NewProviderRepository(db *sql.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// GetConfig retrieves the NAV provider configuration.
func (s *ProviderRepository) GetConfig() (model.ProviderConfig, error) {
	query := `
          SELECT id, api_token, enabled, updated_at
          FROM provider_config
          LIMIT 1
      `
	var c model.ProviderConfig
	var updatedStr string

	err := s.db.QueryRow(query).Scan(&c.ID, &c.APIToken, &c.Enabled, &updatedStr)
	if err == sql.ErrNoRows {
		return model.ProviderConfig{}, apperrors.ErrProviderConfigNotFound
	}
	if err != nil {
		return model.ProviderConfig{}, fmt.Errorf("failed to query provider_config: %w", err)
	}

	if c.UpdatedAt, err = ParseTime(updatedStr); err != nil {
		// created_at style timestamps may carry a time component
		c.UpdatedAt, err = time.Parse("2006-01-02 15:04:05", updatedStr)
		if err != nil {
			return model.ProviderConfig{}, fmt.Errorf("failed to parse provider_config timestamp: %w", err)
		}
	}

	return c, nil
}

// SaveConfig inserts or replaces the single provider configuration row.
func (s *ProviderRepository) SaveConfig(config model.ProviderConfig) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(`DELETE FROM provider_config`); err != nil {
		return fmt.Errorf("failed to clear provider_config: %w", err)
	}

	insert := `
          INSERT INTO provider_config (id, api_token, enabled, updated_at)
          VALUES (?, ?, ?, ?)
      `

	if _, err := tx.Exec(insert, config.ID, config.APIToken, config.Enabled, config.UpdatedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to insert provider_config: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit provider_config save: %w", err)
	}

	return nil
}
