package http

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	currency "go-currency-conversion"
)

type mock struct {
	t         *testing.T
	from      currency.Money
	to        currency.Code
	result    currency.Money
	supported []currency.Code
	err       error
}

func (m *mock) Convert(_ context.Context, from currency.Money, to currency.Code) (currency.Money, error) {
	assert.Equal(m.t, m.from, from, "from")
	assert.Equal(m.t, m.to, to, "to")
	return m.result, m.err
}

func (m *mock) Currencies(_ context.Context) ([]currency.Code, error) {
	return m.supported, m.err
}

func TestServer_Convert(t *testing.T) {
	es := &mock{
		t:      t,
		from:   currency.Money{CurrencyCode: "USD", Units: 10, Nanos: 500000000},
		to:     "EUR",
		result: currency.Money{CurrencyCode: "EUR", Units: 8, Nanos: 925000000},
	}

	server := NewServer(es, log.NewNopLogger())

	w := httptest.NewRecorder()
	msg := `{"from": {"currency_code": "USD", "units": 10, "nanos": 500000000}, "to": "EUR"}`
	r := httptest.NewRequest("POST", "/convert", strings.NewReader(msg))

	server.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `{"currency_code":"EUR","units":8,"nanos":925000000}`, strings.TrimSpace(w.Body.String()))
}

func TestServer_ConvertInvalidJSON(t *testing.T) {
	server := NewServer(&mock{t: t}, log.NewNopLogger())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/convert", strings.NewReader("not json"))

	server.ServeHTTP(w, r)

	assert.Equal(t, 400, w.Code)
}

func TestServer_ConvertInvalidInput(t *testing.T) {
	es := &mock{
		t:    t,
		from: currency.Money{Units: 1},
		to:   "EUR",
		err:  fmt.Errorf("%w: missing currency code", currency.ErrInvalidInput),
	}
	server := NewServer(es, log.NewNopLogger())

	w := httptest.NewRecorder()
	msg := `{"from": {"units": 1}, "to": "EUR"}`
	r := httptest.NewRequest("POST", "/convert", strings.NewReader(msg))

	server.ServeHTTP(w, r)

	assert.Equal(t, 400, w.Code)
}

func TestServer_ConvertRateUnavailable(t *testing.T) {
	es := &mock{
		t:    t,
		from: currency.Money{CurrencyCode: "USD", Units: 10},
		to:   "EUR",
		err:  fmt.Errorf("convert: %w", currency.ErrRateUnavailable),
	}
	server := NewServer(es, log.NewNopLogger())

	w := httptest.NewRecorder()
	msg := `{"from": {"currency_code": "USD", "units": 10}, "to": "EUR"}`
	r := httptest.NewRequest("POST", "/convert", strings.NewReader(msg))

	server.ServeHTTP(w, r)

	assert.Equal(t, 502, w.Code)
}

func TestServer_Supported(t *testing.T) {
	es := &mock{
		t:         t,
		supported: []currency.Code{"EUR", "USD", "JPY"},
	}
	server := NewServer(es, log.NewNopLogger())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/supported", nil)

	server.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `["EUR","USD","JPY"]`, strings.TrimSpace(w.Body.String()))
}

func TestServer_Healthz(t *testing.T) {
	server := NewServer(&mock{t: t}, log.NewNopLogger())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/_healthz", nil)

	server.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "SERVING", w.Body.String())
}
