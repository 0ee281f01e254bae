package convert

import (
	"context"
	"time"

	"github.com/go-kit/log"
	currency "go-currency-conversion"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, from currency.Money, to currency.Code) (result currency.Money, err error) {
	s.logger.Log("msg", "received conversion request", "from", from.CurrencyCode, "to", to)
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"from", from.CurrencyCode,
			"to", to,
			"units", result.Units,
			"nanos", result.Nanos,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, from, to)
}

func (s *loggingService) Currencies(ctx context.Context) (codes []currency.Code, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "currencies",
			"count", len(codes),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Currencies(ctx)
}
