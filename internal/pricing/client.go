package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type suggestRequest struct {
	ItemNames []string `json:"itemNames"`
}

type suggestResponse struct {
	SuggestedPrices map[string]decimal.Decimal `json:"suggestedPrices"`
}

// HTTPClient asks a remote price estimation flow for a suggestion.
type HTTPClient struct {
	url    string
	client *http.Client
}

func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		url:    strings.TrimRight(url, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Suggest(ctx context.Context, itemName string) (decimal.Decimal, error) {
	body, err := json.Marshal(suggestRequest{ItemNames: []string{itemName}})
	if err != nil {
		return decimal.Zero, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var res suggestResponse
		if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
			return decimal.Zero, fmt.Errorf("decode response: %w", err)
		}
		price, ok := res.SuggestedPrices[itemName]
		if !ok {
			return decimal.Zero, ErrNoSuggestion
		}
		return usable(price)
	case http.StatusNoContent, http.StatusNotFound:
		return decimal.Zero, ErrNoSuggestion
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return decimal.Zero, fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(raw))
	}
}
