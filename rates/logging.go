package rates

import (
	"context"
	"time"

	"github.com/go-kit/log"
	currency "go-currency-conversion"
)

// loggingService decorates a rates.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService returns a new logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Factor(ctx context.Context, base currency.Code, target currency.Code) (factor currency.Rate, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "factor",
			"base", base,
			"target", target,
			"factor", factor,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Factor(ctx, base, target)
}
