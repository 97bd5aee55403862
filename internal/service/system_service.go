package service

import (
	"database/sql"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/database"
)

// SystemService handles system level operations.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// HealthCheck reports whether the database connection is alive.
func (s *SystemService) HealthCheck() error {
	return database.HealthCheck(s.db)
}
