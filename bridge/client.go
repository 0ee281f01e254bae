package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	currency "go-currency-conversion"
)

// Engine is the conversion engine's externally reachable HTTP interface.
type Engine interface {
	Convert(ctx context.Context, from currency.Money, to currency.Code) (currency.Money, error)
	SupportedCurrencies(ctx context.Context) ([]currency.Code, error)
}

// Client calls the conversion engine over HTTP.
type Client struct {
	// url base engine url, e.g. "http://currencyservice:7000"
	url string

	// client for HTTP requests
	client http.Client
}

// NewClient constructs a valid Client against the engine at url.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		client: http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Convert posts a conversion request to the engine and decodes the converted Money.
func (c *Client) Convert(ctx context.Context, from currency.Money, to currency.Code) (currency.Money, error) {
	type Request struct {
		From currency.Money `json:"from"`
		To   currency.Code  `json:"to"`
	}

	body, err := json.Marshal(Request{From: from, To: to})
	if err != nil {
		return currency.Money{}, fmt.Errorf("encoding json: %w", err)
	}

	url := fmt.Sprintf("%v/convert", c.url)

	request, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return currency.Money{}, fmt.Errorf("building http request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	httpResponse, err := c.client.Do(request)
	if err != nil {
		return currency.Money{}, fmt.Errorf("%w: http post: %v", currency.ErrDownstreamUnavailable, err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return currency.Money{}, fmt.Errorf("%w: unexpected status %v", currency.ErrDownstreamUnavailable, httpResponse.StatusCode)
	}

	responseBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return currency.Money{}, fmt.Errorf("%w: reading json: %v", currency.ErrDownstreamUnavailable, err)
	}

	var converted currency.Money
	err = json.Unmarshal(responseBytes, &converted)
	if err != nil {
		return currency.Money{}, fmt.Errorf("%w: decoding json: %v", currency.ErrDownstreamUnavailable, err)
	}

	return converted, nil
}

// SupportedCurrencies fetches the engine's supported currency enumeration.
func (c *Client) SupportedCurrencies(ctx context.Context) ([]currency.Code, error) {
	url := fmt.Sprintf("%v/supported", c.url)

	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}

	httpResponse, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: http get: %v", currency.ErrDownstreamUnavailable, err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %v", currency.ErrDownstreamUnavailable, httpResponse.StatusCode)
	}

	responseBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading json: %v", currency.ErrDownstreamUnavailable, err)
	}

	var codes []currency.Code
	err = json.Unmarshal(responseBytes, &codes)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding json: %v", currency.ErrDownstreamUnavailable, err)
	}

	return codes, nil
}
