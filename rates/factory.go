package rates

import (
	"fmt"

	"go-currency-conversion/dataset"
)

// NewFromConfig selects a rate Service implementation by name. "live" queries
// the REST rate source at url; "static" serves the embedded euro-based table.
func NewFromConfig(provider, url string) (Service, error) {
	switch provider {
	case "live", "":
		return NewService(url), nil
	case "static":
		table, err := dataset.ConversionRates()
		if err != nil {
			return nil, fmt.Errorf("loading static rates: %w", err)
		}
		return NewStaticService(table), nil
	default:
		return nil, fmt.Errorf("unknown rate provider: %v", provider)
	}
}
