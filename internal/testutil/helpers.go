package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/quotes"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/secrets"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
)

// TestFernetKey is a valid base64-encoded fernet key for tests.
const TestFernetKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbPOwMb0E="

func NewTestUserService(t *testing.T, db *sql.DB) *service.UserService {
	t.Helper()

	return service.NewUserService(repository.NewUserRepository(db))
}

func NewTestCapTypeService(t *testing.T, db *sql.DB) *service.CapTypeService {
	t.Helper()

	return service.NewCapTypeService(repository.NewCapTypeRepository(db))
}

func NewTestFundService(t *testing.T, db *sql.DB) *service.FundService {
	t.Helper()

	return service.NewFundService(
		repository.NewFundRepository(db),
		repository.NewCapTypeRepository(db),
		repository.NewEntryRepository(db),
		repository.NewSIPRepository(db),
		repository.NewAllocationRepository(db),
	)
}

func NewTestEntryService(t *testing.T, db *sql.DB) *service.EntryService {
	t.Helper()

	return service.NewEntryService(
		repository.NewEntryRepository(db),
		repository.NewFundRepository(db),
	)
}

func NewTestSIPService(t *testing.T, db *sql.DB) *service.SIPService {
	t.Helper()

	return service.NewSIPService(
		repository.NewSIPRepository(db),
		repository.NewFundRepository(db),
	)
}

func NewTestAllocationService(t *testing.T, db *sql.DB) *service.AllocationService {
	t.Helper()

	return service.NewAllocationService(
		repository.NewAllocationRepository(db),
		repository.NewCapTypeRepository(db),
	)
}

func NewTestPFService(t *testing.T, db *sql.DB) *service.PFService {
	t.Helper()

	return service.NewPFService(repository.NewPFRepository(db))
}

func NewTestGoldService(t *testing.T, db *sql.DB) *service.GoldService {
	t.Helper()

	return service.NewGoldService(repository.NewGoldRepository(db))
}

// NewTestPriceService creates a PriceService with a mock quotes client so
// tests never touch the real NAV API.
func NewTestPriceService(t *testing.T, db *sql.DB, client quotes.Client) *service.PriceService {
	t.Helper()

	vault, err := secrets.NewVault(TestFernetKey)
	if err != nil {
		t.Fatalf("Failed to create test vault: %v", err)
	}

	return service.NewPriceService(
		repository.NewFundRepository(db),
		repository.NewProviderRepository(db),
		client,
		vault,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeFundName generates a unique fund name for testing.
//
// Example usage:
//
//	name := testutil.MakeFundName("Index Fund")
//	// Returns: "Index Fund XYZ789"
func MakeFundName(base string) string {
	if base == "" {
		base = "Fund"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeUserName generates a unique user name for testing.
func MakeUserName(base string) string {
	if base == "" {
		base = "User"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeSchemeCode generates a numeric scheme code for NAV lookups in tests.
func MakeSchemeCode() string {
	const digits = "0123456789"
	result := make([]byte, 6)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = digits[rand.Intn(len(digits))]
	}
	return string(result)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// Common test constants

var (
	// CommonCapTypes contains the cap type names used throughout the app
	CommonCapTypes = []string{"Large", "Mid", "Small", "Large & Mid", "Mix"}

	// CommonFrequencies contains the SIP frequencies used throughout the app
	CommonFrequencies = []string{"Daily", "Weekly", "BiWeekly", "Monthly"}
)
