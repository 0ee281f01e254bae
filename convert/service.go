package convert

import (
	"context"
	"fmt"

	currency "go-currency-conversion"
	"go-currency-conversion/rates"
)

// Service converts monetary amounts between currencies and enumerates the
// currencies the system supports.
type Service interface {
	// Convert re-denominates from into the currency named by to. A failed
	// rate lookup propagates to the caller without retry.
	Convert(ctx context.Context, from currency.Money, to currency.Code) (currency.Money, error)

	// Currencies returns the supported currency codes in their published order.
	Currencies(ctx context.Context) ([]currency.Code, error)
}

// service the conversion engine
type service struct {
	// rateService to look up conversion factors
	rateService rates.Service

	// supported static list of supported currency codes, read-only
	supported []currency.Code
}

// NewService constructs a valid Service. supported is the static enumeration
// served to clients; it is never consulted for conversion.
func NewService(rateService rates.Service, supported []currency.Code) Service {
	return &service{
		rateService: rateService,
		supported:   supported,
	}
}

// Convert looks up the pair rate, scales the amount and normalizes the result.
func (s *service) Convert(ctx context.Context, from currency.Money, to currency.Code) (currency.Money, error) {
	if from.CurrencyCode == "" || to == "" {
		return currency.Money{}, fmt.Errorf("%w: missing currency code", currency.ErrInvalidInput)
	}
	if from.Negative() {
		return currency.Money{}, fmt.Errorf("%w: negative amount", currency.ErrInvalidInput)
	}

	factor, err := s.rateService.Factor(ctx, from.CurrencyCode, to)
	if err != nil {
		return currency.Money{}, fmt.Errorf("convert %v -> %v: %w", from.CurrencyCode, to, err)
	}

	result := from.Scale(factor)
	result.CurrencyCode = to
	return result, nil
}

// Currencies returns the static supported list.
func (s *service) Currencies(_ context.Context) ([]currency.Code, error) {
	return s.supported, nil
}
