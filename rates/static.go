package rates

import (
	"context"
	"fmt"

	currency "go-currency-conversion"
)

// staticService is a rate Service backed by a preloaded table of rates
// against a single common base currency. The table is read-only after
// construction, so lookups need no locking.
type staticService struct {
	table currency.Rates
}

// NewStaticService constructs a Service from a table mapping each currency
// to the amount bought by one unit of the table's base currency.
func NewStaticService(table currency.Rates) Service {
	return &staticService{
		table: table,
	}
}

// Factor derives the pair rate by crossing through the table's base currency.
func (s *staticService) Factor(_ context.Context, base currency.Code, target currency.Code) (currency.Rate, error) {
	baseRate, ok := s.table[base]
	if !ok || baseRate == 0 {
		return 0, fmt.Errorf("%w: unknown base currency %v", currency.ErrRateUnavailable, base)
	}
	targetRate, ok := s.table[target]
	if !ok {
		return 0, fmt.Errorf("%w: unknown target currency %v", currency.ErrRateUnavailable, target)
	}
	return targetRate / baseRate, nil
}
