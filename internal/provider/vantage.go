package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"atcmoney/internal/errors"
	"atcmoney/internal/models"
)

// HTTPDoer is the subset of http.Client used by the Vantage provider.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Vantage implements Provider against the Alpha Vantage GLOBAL_QUOTE
// endpoint. Quotes are always denominated in USD.
type Vantage struct {
	apiKey  string
	baseURL string
	client  HTTPDoer
}

// NewVantage creates a Vantage provider from cfg. It fails with
// ErrProviderConfig when the api key or base URL is missing.
func NewVantage(cfg Config) (*Vantage, error) {
	if cfg.APIKey == "" || cfg.BaseURL == "" {
		return nil, errors.Wrapf(errors.ErrProviderConfig,
			"api_key: %s, base_url: %s", maskPresence(cfg.APIKey), presence(cfg.BaseURL))
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Vantage{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  client,
	}, nil
}

// GetQuote fetches the current quote for symbol.
func (v *Vantage) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	params := url.Values{
		"function": {"GLOBAL_QUOTE"},
		"symbol":   {symbol},
		"apikey":   {v.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/query?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.NewProviderError(0, "building quote request", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, errors.NewProviderError(0, "market provider call failure", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, errors.NewProviderError(resp.StatusCode, "reading provider response", err)
	}

	if resp.StatusCode > 299 {
		return nil, errors.NewProviderError(resp.StatusCode,
			fmt.Sprintf("market provider call failure: %s", string(body)), nil)
	}

	var payload struct {
		GlobalQuote map[string]string `json:"Global Quote"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.NewProviderError(resp.StatusCode, "provider response is not valid json", err)
	}

	raw, ok := payload.GlobalQuote["05. price"]
	if !ok {
		return nil, errors.NewProviderError(resp.StatusCode,
			fmt.Sprintf("provider response does not contain price data for %s", symbol), nil)
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.NewProviderError(resp.StatusCode, "provider price is not numeric", err)
	}

	return &models.Quote{Price: price, Currency: models.USD}, nil
}

func maskPresence(s string) string {
	if s == "" {
		return "MISSING"
	}
	return "*****"
}

func presence(s string) string {
	if s == "" {
		return "MISSING"
	}
	return s
}
