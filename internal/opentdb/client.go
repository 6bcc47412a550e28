// Package opentdb fetches question batches from the Open Trivia DB API.
// Only the seeder uses it; serving traffic never leaves the local corpus.
package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"trivia-backend/internal/corpus"
)

// Client talks to opentdb.com (no API key required).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = "https://opentdb.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type apiResponse struct {
	ResponseCode int             `json:"response_code"`
	Results      []corpus.Record `json:"results"`
}

// Fetch pulls up to amount questions. categoryKey is one of our numeric
// category keys (the API shares them); empty or "any" leaves the category
// parameter off.
func (c *Client) Fetch(ctx context.Context, amount int, categoryKey string) ([]corpus.Record, error) {
	values := url.Values{}
	values.Set("amount", fmt.Sprint(amount))
	if categoryKey != "" && categoryKey != "any" {
		values.Set("category", categoryKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api.php?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("opentdb non-200: %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("opentdb response code %d", payload.ResponseCode)
	}
	return payload.Results, nil
}
