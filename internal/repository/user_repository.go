package repository

import (
	"database/sql"
	"fmt"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUsers retrieves all users ordered by name.
// Returns an empty slice when no users exist.
func (s *UserRepository) GetUsers() ([]model.User, error) {
	query := `
          SELECT id, name
          FROM user
          ORDER BY name
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user table: %w", err)
	}
	defer rows.Close()

	users := []model.User{}

	for rows.Next() {
		var u model.User

		err := rows.Scan(&u.ID, &u.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user table results: %w", err)
		}

		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user table: %w", err)
	}

	return users, nil
}

// GetUserOnID retrieves a single user by ID.
func (s *UserRepository) GetUserOnID(userID string) (model.User, error) {
	query := `
          SELECT id, name
          FROM user
          WHERE id = ?
      `
	var u model.User

	err := s.db.QueryRow(query, userID).Scan(&u.ID, &u.Name)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// CreateUser inserts a new user.
func (s *UserRepository) CreateUser(user model.User) error {
	query := `
          INSERT INTO user (id, name)
          VALUES (?, ?)
      `

	_, err := s.db.Exec(query, user.ID, user.Name)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// DeleteUser removes a user and, via foreign keys, their dependent records.
func (s *UserRepository) DeleteUser(userID string) error {
	result, err := s.db.Exec(`DELETE FROM user WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
