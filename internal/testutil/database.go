package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migration.
//
//nolint:funlen // Database schema DDL
func createTestSchema(db *sql.DB) error {
	schema := `
		-- User table
		CREATE TABLE IF NOT EXISTS user (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE
		);

		-- Cap type table
		CREATE TABLE IF NOT EXISTS cap_type (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE
		);

		-- Mutual fund metadata table
		CREATE TABLE IF NOT EXISTS mf_metadata (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			symbol VARCHAR(20),
			cap_type_id VARCHAR(36) NOT NULL,
			active_or_passive VARCHAR(20) NOT NULL,
			FOREIGN KEY(cap_type_id) REFERENCES cap_type(id)
		);

		-- Mutual fund entry table
		CREATE TABLE IF NOT EXISTS mf_entry (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			fund_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			invest_type VARCHAR(10) NOT NULL,
			amount FLOAT NOT NULL,
			nav FLOAT,
			units FLOAT,
			balance_unit FLOAT,
			principal_redeem FLOAT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE,
			FOREIGN KEY(fund_id) REFERENCES mf_metadata(id)
		);

		-- Fund NAV table
		CREATE TABLE IF NOT EXISTS fund_nav (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			fund_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			nav FLOAT NOT NULL,
			FOREIGN KEY(fund_id) REFERENCES mf_metadata(id) ON DELETE CASCADE,
			CONSTRAINT unique_fund_nav UNIQUE (fund_id, date)
		);

		-- SIP table
		CREATE TABLE IF NOT EXISTS sip_info (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			fund_id VARCHAR(36) NOT NULL,
			amount FLOAT NOT NULL,
			frequency VARCHAR(20) NOT NULL,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE,
			FOREIGN KEY(fund_id) REFERENCES mf_metadata(id)
		);

		-- Expected allocation table
		CREATE TABLE IF NOT EXISTS expected_allocation (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			cap_type_id VARCHAR(36) NOT NULL,
			target_pct FLOAT NOT NULL,
			active_pct FLOAT NOT NULL,
			passive_pct FLOAT NOT NULL,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE,
			FOREIGN KEY(cap_type_id) REFERENCES cap_type(id) ON DELETE CASCADE,
			CONSTRAINT unique_user_cap_type UNIQUE (user_id, cap_type_id)
		);

		-- Provident fund type table
		CREATE TABLE IF NOT EXISTS pf_type (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(10) NOT NULL UNIQUE
		);

		-- Provident fund interest rate table
		CREATE TABLE IF NOT EXISTS pf_interest_rate (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			rate FLOAT NOT NULL
		);

		-- Provident fund entry table
		CREATE TABLE IF NOT EXISTS pf_entry (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			pf_type_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			opening_balance FLOAT NOT NULL,
			lowest_balance FLOAT NOT NULL,
			current_balance FLOAT NOT NULL,
			amount_deposited FLOAT NOT NULL,
			month_interest FLOAT NOT NULL,
			interest_rate_id VARCHAR(36),
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE,
			FOREIGN KEY(pf_type_id) REFERENCES pf_type(id),
			FOREIGN KEY(interest_rate_id) REFERENCES pf_interest_rate(id)
		);

		-- Gold entry table
		CREATE TABLE IF NOT EXISTS gold_entry (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			purchase_date DATE NOT NULL,
			grams FLOAT NOT NULL,
			price FLOAT NOT NULL,
			comments TEXT,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		-- Gold price table
		CREATE TABLE IF NOT EXISTS gold_price (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date DATE NOT NULL UNIQUE,
			price FLOAT NOT NULL
		);

		-- NAV provider configuration table
		CREATE TABLE IF NOT EXISTS provider_config (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			api_token VARCHAR(500) NOT NULL,
			enabled BOOLEAN NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Indexes for performance
		CREATE INDEX IF NOT EXISTS ix_mf_entry_user_id ON mf_entry(user_id);
		CREATE INDEX IF NOT EXISTS ix_mf_entry_fund_id ON mf_entry(fund_id);
		CREATE INDEX IF NOT EXISTS ix_mf_entry_date ON mf_entry(date);
		CREATE INDEX IF NOT EXISTS ix_fund_nav_fund_id_date ON fund_nav(fund_id, date);
		CREATE INDEX IF NOT EXISTS ix_sip_info_user_id ON sip_info(user_id);
		CREATE INDEX IF NOT EXISTS ix_pf_entry_user_type ON pf_entry(user_id, pf_type_id);
		CREATE INDEX IF NOT EXISTS ix_pf_entry_date ON pf_entry(date);
		CREATE INDEX IF NOT EXISTS ix_gold_entry_user_id ON gold_entry(user_id);

		-- Seed provident fund types
		INSERT INTO pf_type (id, name) VALUES
			('0a8e8e4e-0000-4000-8000-000000000001', 'PPF'),
			('0a8e8e4e-0000-4000-8000-000000000002', 'PF'),
			('0a8e8e4e-0000-4000-8000-000000000003', 'EPS');
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
//
// Example usage:
//
//	func TestMultipleThings(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//
//	    t.Run("First test", func(t *testing.T) {
//	        // Create data
//	        testutil.CleanDatabase(t, db)  // Clean after
//	    })
//
//	    t.Run("Second test", func(t *testing.T) {
//	        // Fresh clean database
//	    })
//	}
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"provider_config",
		"gold_price",
		"gold_entry",
		"pf_entry",
		"pf_interest_rate",
		"expected_allocation",
		"sip_info",
		"fund_nav",
		"mf_entry",
		"mf_metadata",
		"cap_type",
		"user",
	}

	for _, table := range tables {
		//nolint:gosec // G202: Table names are from hardcoded slice, no SQL injection risk
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
//
// Example usage:
//
//	count := testutil.CountRows(t, db, "mf_entry")
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "mf_entry", 2)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
