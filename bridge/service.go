// Package bridge exposes the conversion engine's HTTP interface as the
// CurrencyService RPC surface. Calls never fail: downstream errors degrade
// to fallback values instead of propagating to RPC callers.
package bridge

import (
	"context"

	"github.com/go-kit/log"
	currency "go-currency-conversion"
)

// Conversion is the outcome of a bridged conversion call. When Degraded is
// set the downstream call failed and Money echoes the original, unconverted
// amount in its original currency.
type Conversion struct {
	Money    currency.Money
	Degraded bool
}

// Enumeration is the outcome of a bridged currency listing call. When
// Degraded is set the downstream call failed and Codes is empty.
type Enumeration struct {
	Codes    []currency.Code
	Degraded bool
}

// Service is the RPC-facing conversion surface with fail-open semantics.
type Service interface {
	Convert(ctx context.Context, from currency.Money, to currency.Code) Conversion
	SupportedCurrencies(ctx context.Context) Enumeration
}

// service forwards calls to the conversion engine and applies the
// degrade-rather-than-fail policy.
type service struct {
	engine Engine
	logger log.Logger
}

// NewService constructs a valid Service forwarding to engine.
func NewService(engine Engine, logger log.Logger) Service {
	return &service{
		engine: engine,
		logger: logger,
	}
}

func (s *service) Convert(ctx context.Context, from currency.Money, to currency.Code) Conversion {
	s.logger.Log("msg", "making conversion request", "from", from.CurrencyCode, "to", to)

	converted, err := s.engine.Convert(ctx, from, to)
	if err != nil {
		// Return the initial value instead of failing completely here.
		s.logger.Log("msg", "conversion request failed", "err", err)
		return Conversion{Money: from, Degraded: true}
	}

	s.logger.Log("msg", "conversion request successful")
	return Conversion{Money: converted}
}

func (s *service) SupportedCurrencies(ctx context.Context) Enumeration {
	s.logger.Log("msg", "getting supported currencies")

	codes, err := s.engine.SupportedCurrencies(ctx)
	if err != nil {
		// Be a bit resilient and move on even if the engine is down.
		s.logger.Log("msg", "supported currency request failed", "err", err)
		return Enumeration{Codes: []currency.Code{}, Degraded: true}
	}

	return Enumeration{Codes: codes}
}
