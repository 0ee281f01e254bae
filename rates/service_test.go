package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	currency "go-currency-conversion"
	"golang.org/x/time/rate"
)

func newTestService(url string) *service {
	return &service{
		url: url,
		client: http.Client{
			Timeout: 5 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func TestService_Factor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.True(t, strings.HasSuffix(req.URL.String(), "/latest?base=USD&symbols=EUR"))
		response := `{
			"base": "USD",
			"rates": {
				"EUR": 0.85
			}
		}`
		_, _ = rw.Write([]byte(response))
	}))
	defer server.Close()

	s := newTestService(server.URL)

	factor, err := s.Factor(context.Background(), "USD", "EUR")

	assert.Nil(t, err)
	assert.Equal(t, currency.Rate(0.85), factor)
}

func TestService_FactorUnknownTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"rates": {}}`))
	}))
	defer server.Close()

	s := newTestService(server.URL)

	_, err := s.Factor(context.Background(), "USD", "XYZ")

	assert.True(t, errors.Is(err, currency.ErrRateUnavailable))
}

func TestService_FactorBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := newTestService(server.URL)

	_, err := s.Factor(context.Background(), "USD", "EUR")

	assert.True(t, errors.Is(err, currency.ErrRateUnavailable))
}

func TestService_FactorBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`not json`))
	}))
	defer server.Close()

	s := newTestService(server.URL)

	_, err := s.Factor(context.Background(), "USD", "EUR")

	assert.True(t, errors.Is(err, currency.ErrRateUnavailable))
}

func TestService_FactorUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {}))
	server.Close() // closed up front so the call fails to connect

	s := newTestService(server.URL)

	_, err := s.Factor(context.Background(), "USD", "EUR")

	assert.True(t, errors.Is(err, currency.ErrRateUnavailable))
}
