package repository

import (
	"database/sql"
	"fmt"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// GoldRepository provides data access methods for the gold_entry and
// gold_price tables.
type GoldRepository struct {
	db *sql.DB
}

// NewGoldRepository creates a new GoldRepository with the provided database connection.
func NewGoldRepository(db *sql.DB) *GoldRepository {
	return &GoldRepository{db: db}
}

// GetEntriesOnUserID retrieves a user's gold purchases ordered by purchase date.
// Returns an empty slice if the user has no purchases.
func (s *GoldRepository) GetEntriesOnUserID(userID string) ([]model.GoldEntry, error) {
	query := `
          SELECT id, user_id, purchase_date, grams, price, COALESCE(comments, '')
          FROM gold_entry
          WHERE user_id = ?
          ORDER BY purchase_date
      `

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query gold_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.GoldEntry{}

	for rows.Next() {
		var e model.GoldEntry
		var dateStr string

		if err := rows.Scan(&e.ID, &e.UserID, &dateStr, &e.Grams, &e.Price, &e.Comments); err != nil {
			return nil, fmt.Errorf("failed to scan gold_entry table results: %w", err)
		}

		if e.PurchaseDate, err = ParseTime(dateStr); err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gold_entry table: %w", err)
	}

	return entries, nil
}

// GetEntryOnID retrieves a single gold purchase by ID.
func (s *GoldRepository) GetEntryOnID(entryID string) (model.GoldEntry, error) {
	query := `
          SELECT id, user_id, purchase_date, grams, price, COALESCE(comments, '')
          FROM gold_entry
          WHERE id = ?
      `
	var e model.GoldEntry
	var dateStr string

	err := s.db.QueryRow(query, entryID).Scan(&e.ID, &e.UserID, &dateStr, &e.Grams, &e.Price, &e.Comments)
	if err == sql.ErrNoRows {
		return model.GoldEntry{}, apperrors.ErrGoldEntryNotFound
	}
	if err != nil {
		return model.GoldEntry{}, fmt.Errorf("failed to query gold_entry: %w", err)
	}

	if e.PurchaseDate, err = ParseTime(dateStr); err != nil {
		return model.GoldEntry{}, err
	}

	return e, nil
}

// CreateEntry inserts a new gold purchase.
func (s *GoldRepository) CreateEntry(entry model.GoldEntry) error {
	query := `
          INSERT INTO gold_entry (id, user_id, purchase_date, grams, price, comments)
          VALUES (?, ?, ?, ?, ?, ?)
      `

	_, err := s.db.Exec(query, entry.ID, entry.UserID, entry.PurchaseDate.Format(DateFormat), entry.Grams, entry.Price, entry.Comments)
	if err != nil {
		return fmt.Errorf("failed to insert gold_entry: %w", err)
	}

	return nil
}

// UpdateEntry updates a gold purchase.
func (s *GoldRepository) UpdateEntry(entry model.GoldEntry) error {
	query := `
          UPDATE gold_entry
          SET purchase_date = ?, grams = ?, price = ?, comments = ?
          WHERE id = ?
      `

	result, err := s.db.Exec(query, entry.PurchaseDate.Format(DateFormat), entry.Grams, entry.Price, entry.Comments, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to update gold_entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoldEntryNotFound
	}

	return nil
}

// DeleteEntry removes a gold purchase.
func (s *GoldRepository) DeleteEntry(entryID string) error {
	result, err := s.db.Exec(`DELETE FROM gold_entry WHERE id = ?`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete gold_entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoldEntryNotFound
	}

	return nil
}

// GetLatestPrice returns the most recent gold price observation.
func (s *GoldRepository) GetLatestPrice() (model.GoldPrice, error) {
	query := `
          SELECT id, date, price
          FROM gold_price
          ORDER BY date DESC
          LIMIT 1
      `
	var p model.GoldPrice
	var dateStr string

	err := s.db.QueryRow(query).Scan(&p.ID, &dateStr, &p.Price)
	if err == sql.ErrNoRows {
		return model.GoldPrice{}, apperrors.ErrGoldPriceNotFound
	}
	if err != nil {
		return model.GoldPrice{}, fmt.Errorf("failed to query gold_price: %w", err)
	}

	if p.Date, err = ParseTime(dateStr); err != nil {
		return model.GoldPrice{}, err
	}

	return p, nil
}

// UpsertPrice inserts or replaces the gold price for a date.
func (s *GoldRepository) UpsertPrice(price model.GoldPrice) error {
	query := `
          INSERT INTO gold_price (id, date, price)
          VALUES (?, ?, ?)
          ON CONFLICT(date) DO UPDATE SET price = excluded.price
      `

	_, err := s.db.Exec(query, price.ID, price.Date.Format(DateFormat), price.Price)
	if err != nil {
		return fmt.Errorf("failed to upsert gold_price: %w", err)
	}

	return nil
}
