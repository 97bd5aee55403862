package quotes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// navDateFormat is the date layout used by the NAV API ("28-08-2026").
const navDateFormat = "02-01-2006"

// Client is the interface for fetching mutual fund NAVs.
// It is satisfied by NavClient and by mocks in tests.
type Client interface {
	// LatestNAV fetches the most recent NAV for a scheme code.
	LatestNAV(symbol string) (NAV, error)
	// SetAPIKey configures the provider API key sent with each request.
	SetAPIKey(key string)
}

// NavClient fetches NAVs from the public mutual fund API.
// It wraps an HTTP client and parses the provider's response format.
type NavClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewNavClient creates a new NAV client with default HTTP settings.
func NewNavClient() *NavClient {
	return &NavClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://api.mfapi.in/mf",
	}
}

// SetAPIKey configures the provider API key sent with each request.
// An empty key clears the header.
func (c *NavClient) SetAPIKey(key string) {
	c.apiKey = key
}

// LatestNAV fetches the most recent NAV for a scheme code.
// Returns an error when the provider reports a failure or the scheme has
// no published data.
func (c *NavClient) LatestNAV(symbol string) (NAV, error) {
	url := fmt.Sprintf("%s/%s/latest", c.baseURL, symbol)

	result, err := c.query(url)
	if err != nil {
		return NAV{}, err
	}

	if len(result.Data) == 0 {
		return NAV{}, fmt.Errorf("no nav data returned for scheme %s", symbol)
	}

	observation := result.Data[0]

	date, err := time.Parse(navDateFormat, observation.Date)
	if err != nil {
		return NAV{}, fmt.Errorf("failed to parse nav date %q: %w", observation.Date, err)
	}

	value, err := strconv.ParseFloat(observation.Nav, 64)
	if err != nil {
		return NAV{}, fmt.Errorf("failed to parse nav value %q: %w", observation.Nav, err)
	}

	return NAV{
		Symbol: symbol,
		Date:   date.UTC(),
		Value:  value,
	}, nil
}

// query executes an HTTP request against the NAV API and decodes the response.
func (c *NavClient) query(url string) (Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Status != "" && response.Status != "SUCCESS" {
		return response, fmt.Errorf("nav provider error: %s", response.Status)
	}

	return response, nil
}
