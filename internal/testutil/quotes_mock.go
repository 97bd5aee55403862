package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/quotes"
)

// MockQuotesClient is a configurable mock of the quotes.Client interface.
// Tests register NAVs per scheme code; unregistered codes return an error,
// mimicking a failed provider lookup.
//
// Example usage:
//
//	mock := testutil.NewMockQuotesClient()
//	mock.SetNAV("120503", 95.50)
//	priceService := testutil.NewTestPriceService(t, db, mock)
type MockQuotesClient struct {
	mu      sync.Mutex
	navs    map[string]quotes.NAV
	apiKey  string
	callLog []string
}

// NewMockQuotesClient creates an empty MockQuotesClient.
func NewMockQuotesClient() *MockQuotesClient {
	return &MockQuotesClient{
		navs: make(map[string]quotes.NAV),
	}
}

// SetNAV registers a NAV value for a scheme code, dated today.
func (m *MockQuotesClient) SetNAV(symbol string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.navs[symbol] = quotes.NAV{
		Symbol: symbol,
		Date:   time.Now().UTC().Truncate(24 * time.Hour),
		Value:  value,
	}
}

// SetNAVOnDate registers a NAV value for a scheme code on a specific date.
func (m *MockQuotesClient) SetNAVOnDate(symbol string, value float64, date time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.navs[symbol] = quotes.NAV{
		Symbol: symbol,
		Date:   date,
		Value:  value,
	}
}

// LatestNAV returns the registered NAV or an error for unknown scheme codes.
func (m *MockQuotesClient) LatestNAV(symbol string) (quotes.NAV, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callLog = append(m.callLog, symbol)

	nav, ok := m.navs[symbol]
	if !ok {
		return quotes.NAV{}, fmt.Errorf("no nav data returned for scheme %s", symbol)
	}
	return nav, nil
}

// SetAPIKey records the key for later assertion.
func (m *MockQuotesClient) SetAPIKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.apiKey = key
}

// APIKey returns the last key passed to SetAPIKey.
func (m *MockQuotesClient) APIKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.apiKey
}

// Calls returns the scheme codes requested so far.
func (m *MockQuotesClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.callLog...)
}
