package currency

import "errors"

var (
	// ErrRateUnavailable the rate source is unreachable, returned a malformed
	// payload, or does not recognize the requested currency pair.
	ErrRateUnavailable = errors.New("exchange rate unavailable")

	// ErrDownstreamUnavailable the conversion engine could not be reached or
	// answered with an unusable response.
	ErrDownstreamUnavailable = errors.New("conversion service unavailable")

	// ErrInvalidInput the request shape is unusable (missing codes, negative amounts).
	ErrInvalidInput = errors.New("invalid conversion input")
)
