package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	currency "go-currency-conversion"
	"golang.org/x/time/rate"
)

// DefaultURL the public exchange rate endpoint queried by the live service
const DefaultURL = "https://api.exchangeratesapi.io"

// Service yields the multiplicative factor that converts an amount
// denominated in a base currency into a target currency.
type Service interface {
	// Factor returns the rate converting one unit of base into target.
	// Fails with currency.ErrRateUnavailable when the source is unreachable
	// or does not know the pair.
	Factor(ctx context.Context, base currency.Code, target currency.Code) (currency.Rate, error)
}

// service queries a REST rate endpoint. Exactly one round trip per call;
// concurrent requests for the same pair are not batched.
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client

	// limiter throttles outbound calls to the rate source
	limiter *rate.Limiter
}

// NewService constructs a live rate Service against the endpoint at url.
func NewService(url string) Service {
	return &service{
		url: url,
		client: http.Client{
			Timeout: 5 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 10),
	}
}

// Factor fetches the rate for a single pair, fixing the query base to the
// source currency and requesting a single target symbol.
func (s *service) Factor(ctx context.Context, base currency.Code, target currency.Code) (currency.Rate, error) {
	type Response struct {
		Rates map[currency.Code]currency.Rate `json:"rates"`
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%v/latest?base=%v&symbols=%v", s.url, base, target)

	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return 0, fmt.Errorf("%w: http get: %v", currency.ErrRateUnavailable, err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: unexpected status %v", currency.ErrRateUnavailable, httpResponse.StatusCode)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: reading json: %v", currency.ErrRateUnavailable, err)
	}

	var response Response
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return 0, fmt.Errorf("%w: decoding json: %v", currency.ErrRateUnavailable, err)
	}

	factor, ok := response.Rates[target]
	if !ok {
		return 0, fmt.Errorf("%w: no rate for %v", currency.ErrRateUnavailable, target)
	}

	return factor, nil
}
