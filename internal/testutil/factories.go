package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
)

// CreateUser creates a user row and returns it.
//
// Example usage:
//
//	user := testutil.CreateUser(t, db, "Asha")
func CreateUser(t *testing.T, db *sql.DB, name string) model.User {
	t.Helper()

	if name == "" {
		name = MakeUserName("")
	}
	user := model.User{ID: MakeID(), Name: name}

	_, err := db.Exec(`INSERT INTO user (id, name) VALUES (?, ?)`, user.ID, user.Name)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateCapType creates a cap type row and returns it.
func CreateCapType(t *testing.T, db *sql.DB, name string) model.CapType {
	t.Helper()

	capType := model.CapType{ID: MakeID(), Name: name}

	_, err := db.Exec(`INSERT INTO cap_type (id, name) VALUES (?, ?)`, capType.ID, capType.Name)
	if err != nil {
		t.Fatalf("Failed to create test cap type: %v", err)
	}

	return capType
}

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	fund := testutil.NewFund(capType.ID).
//	    WithName("Nifty Index Fund").
//	    Passive().
//	    Build(t, db)
type FundBuilder struct {
	ID              string
	Name            string
	Symbol          string
	CapTypeID       string
	ActiveOrPassive string
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund(capTypeID string) *FundBuilder {
	return &FundBuilder{
		ID:              MakeID(),
		Name:            MakeFundName(""),
		Symbol:          MakeSchemeCode(),
		CapTypeID:       capTypeID,
		ActiveOrPassive: "Active",
	}
}

// WithID sets a custom ID.
func (b *FundBuilder) WithID(id string) *FundBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.Name = name
	return b
}

// WithSymbol sets a custom scheme code.
func (b *FundBuilder) WithSymbol(symbol string) *FundBuilder {
	b.Symbol = symbol
	return b
}

// WithoutSymbol clears the scheme code so NAV refreshes skip the fund.
func (b *FundBuilder) WithoutSymbol() *FundBuilder {
	b.Symbol = ""
	return b
}

// Passive marks the fund as passively managed.
func (b *FundBuilder) Passive() *FundBuilder {
	b.ActiveOrPassive = "Passive"
	return b
}

// Build creates the fund in the database and returns it.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.FundMetadata {
	t.Helper()

	query := `
		INSERT INTO mf_metadata (id, name, symbol, cap_type_id, active_or_passive)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Symbol, b.CapTypeID, b.ActiveOrPassive)
	if err != nil {
		t.Fatalf("Failed to create test fund: %v", err)
	}

	return model.FundMetadata{
		ID:              b.ID,
		Name:            b.Name,
		Symbol:          b.Symbol,
		CapTypeID:       b.CapTypeID,
		ActiveOrPassive: b.ActiveOrPassive,
	}
}

// EntryBuilder provides a fluent interface for creating test fund entries.
//
// Example usage:
//
//	entry := testutil.NewEntry(user.ID, fund.ID).
//	    WithAmount(1000).
//	    WithUnits(10, 10).
//	    Build(t, db)
type EntryBuilder struct {
	ID              string
	UserID          string
	FundID          string
	Date            time.Time
	InvestType      string
	Amount          float64
	Nav             *float64
	Units           *float64
	BalanceUnit     *float64
	PrincipalRedeem *float64
}

// NewEntry creates an EntryBuilder with sensible defaults.
func NewEntry(userID, fundID string) *EntryBuilder {
	return &EntryBuilder{
		ID:         MakeID(),
		UserID:     userID,
		FundID:     fundID,
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		InvestType: "Invest",
		Amount:     1000,
	}
}

// WithDate sets a custom date.
func (b *EntryBuilder) WithDate(date time.Time) *EntryBuilder {
	b.Date = date
	return b
}

// WithAmount sets a custom amount.
func (b *EntryBuilder) WithAmount(amount float64) *EntryBuilder {
	b.Amount = amount
	return b
}

// Redeem marks the entry as a redemption.
func (b *EntryBuilder) Redeem() *EntryBuilder {
	b.InvestType = "Redeem"
	return b
}

// WithNav sets the recorded NAV.
func (b *EntryBuilder) WithNav(nav float64) *EntryBuilder {
	b.Nav = &nav
	return b
}

// WithUnits sets units and balance units.
func (b *EntryBuilder) WithUnits(units, balanceUnit float64) *EntryBuilder {
	b.Units = &units
	b.BalanceUnit = &balanceUnit
	return b
}

// WithPrincipalRedeem sets the principal redeemed against the entry.
func (b *EntryBuilder) WithPrincipalRedeem(amount float64) *EntryBuilder {
	b.PrincipalRedeem = &amount
	return b
}

// Build creates the entry in the database and returns it.
func (b *EntryBuilder) Build(t *testing.T, db *sql.DB) model.FundEntry {
	t.Helper()

	query := `
		INSERT INTO mf_entry (id, user_id, fund_id, date, invest_type, amount, nav, units, balance_unit, principal_redeem)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.FundID, b.Date.Format("2006-01-02"), b.InvestType, b.Amount, b.Nav, b.Units, b.BalanceUnit, b.PrincipalRedeem)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}

	return model.FundEntry{
		ID:              b.ID,
		UserID:          b.UserID,
		FundID:          b.FundID,
		Date:            b.Date,
		InvestType:      b.InvestType,
		Amount:          b.Amount,
		Nav:             b.Nav,
		Units:           b.Units,
		BalanceUnit:     b.BalanceUnit,
		PrincipalRedeem: b.PrincipalRedeem,
	}
}

// Convenience functions

// CreateNav records a NAV observation for a fund.
func CreateNav(t *testing.T, db *sql.DB, fundID string, date time.Time, nav float64) model.FundNav {
	t.Helper()

	observation := model.FundNav{ID: MakeID(), FundID: fundID, Date: date, Nav: nav}

	query := `INSERT INTO fund_nav (id, fund_id, date, nav) VALUES (?, ?, ?, ?)`
	_, err := db.Exec(query, observation.ID, observation.FundID, observation.Date.Format("2006-01-02"), observation.Nav)
	if err != nil {
		t.Fatalf("Failed to create test nav: %v", err)
	}

	return observation
}

// CreateSIP registers a SIP for a user and fund.
func CreateSIP(t *testing.T, db *sql.DB, userID, fundID string, amount float64, frequency string) model.SIPInfo {
	t.Helper()

	sip := model.SIPInfo{ID: MakeID(), UserID: userID, FundID: fundID, Amount: amount, Frequency: frequency}

	query := `INSERT INTO sip_info (id, user_id, fund_id, amount, frequency) VALUES (?, ?, ?, ?, ?)`
	_, err := db.Exec(query, sip.ID, sip.UserID, sip.FundID, sip.Amount, sip.Frequency)
	if err != nil {
		t.Fatalf("Failed to create test sip: %v", err)
	}

	return sip
}

// CreateAllocation saves a target allocation for a user and cap type.
func CreateAllocation(t *testing.T, db *sql.DB, userID, capTypeID string, targetPct, activePct, passivePct float64) model.ExpectedAllocation {
	t.Helper()

	allocation := model.ExpectedAllocation{
		ID:         MakeID(),
		UserID:     userID,
		CapTypeID:  capTypeID,
		TargetPct:  targetPct,
		ActivePct:  activePct,
		PassivePct: passivePct,
	}

	query := `
		INSERT INTO expected_allocation (id, user_id, cap_type_id, target_pct, active_pct, passive_pct)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, allocation.ID, allocation.UserID, allocation.CapTypeID, allocation.TargetPct, allocation.ActivePct, allocation.PassivePct)
	if err != nil {
		t.Fatalf("Failed to create test allocation: %v", err)
	}

	return allocation
}

// CreateInterestRate records a provident fund interest rate window.
func CreateInterestRate(t *testing.T, db *sql.DB, startDate, endDate time.Time, rate float64) model.PFInterestRate {
	t.Helper()

	window := model.PFInterestRate{ID: MakeID(), StartDate: startDate, EndDate: endDate, Rate: rate}

	query := `INSERT INTO pf_interest_rate (id, start_date, end_date, rate) VALUES (?, ?, ?, ?)`
	_, err := db.Exec(query, window.ID, window.StartDate.Format("2006-01-02"), window.EndDate.Format("2006-01-02"), window.Rate)
	if err != nil {
		t.Fatalf("Failed to create test interest rate: %v", err)
	}

	return window
}

// CreatePFEntry records one month of a provident fund ledger.
func CreatePFEntry(t *testing.T, db *sql.DB, entry model.PFEntry) model.PFEntry {
	t.Helper()

	if entry.ID == "" {
		entry.ID = MakeID()
	}

	query := `
		INSERT INTO pf_entry (id, user_id, pf_type_id, date, opening_balance, lowest_balance, current_balance, amount_deposited, month_interest, interest_rate_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, entry.ID, entry.UserID, entry.PFTypeID, entry.Date.Format("2006-01-02"), entry.OpeningBalance, entry.LowestBalance, entry.CurrentBalance, entry.AmountDeposited, entry.MonthInterest, entry.InterestRateID)
	if err != nil {
		t.Fatalf("Failed to create test pf entry: %v", err)
	}

	return entry
}

// CreateGoldEntry records a gold purchase.
func CreateGoldEntry(t *testing.T, db *sql.DB, userID string, purchaseDate time.Time, grams, price float64) model.GoldEntry {
	t.Helper()

	entry := model.GoldEntry{
		ID:           MakeID(),
		UserID:       userID,
		PurchaseDate: purchaseDate,
		Grams:        grams,
		Price:        price,
	}

	query := `
		INSERT INTO gold_entry (id, user_id, purchase_date, grams, price, comments)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, entry.ID, entry.UserID, entry.PurchaseDate.Format("2006-01-02"), entry.Grams, entry.Price, entry.Comments)
	if err != nil {
		t.Fatalf("Failed to create test gold entry: %v", err)
	}

	return entry
}

// CreateGoldPrice records a market price observation for a date.
func CreateGoldPrice(t *testing.T, db *sql.DB, date time.Time, price float64) model.GoldPrice {
	t.Helper()

	observation := model.GoldPrice{ID: MakeID(), Date: date, Price: price}

	query := `INSERT INTO gold_price (id, date, price) VALUES (?, ?, ?)`
	_, err := db.Exec(query, observation.ID, observation.Date.Format("2006-01-02"), observation.Price)
	if err != nil {
		t.Fatalf("Failed to create test gold price: %v", err)
	}

	return observation
}

// PFTypeID returns the seeded ID for a provident fund type name.
func PFTypeID(t *testing.T, db *sql.DB, name string) string {
	t.Helper()

	var id string
	err := db.QueryRow(`SELECT id FROM pf_type WHERE name = ?`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to look up pf type %s: %v", name, err)
	}

	return id
}
