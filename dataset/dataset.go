// Package dataset holds the static currency data compiled into the binary:
// the list of supported currency codes and a snapshot of European Central
// Bank reference rates against the euro. Both are read-only after startup.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"

	currency "go-currency-conversion"
)

//go:embed supported_currencies.json
var supportedRaw []byte

//go:embed currency_conversion.json
var conversionRaw []byte

// SupportedCurrencies returns the static list of supported currency codes
// in their published order.
func SupportedCurrencies() ([]currency.Code, error) {
	var codes []currency.Code
	if err := json.Unmarshal(supportedRaw, &codes); err != nil {
		return nil, fmt.Errorf("decoding supported currencies: %w", err)
	}
	return codes, nil
}

// ConversionRates returns the euro-based conversion table. Each entry is the
// amount of that currency bought by one euro.
func ConversionRates() (currency.Rates, error) {
	rates := currency.Rates{}
	if err := json.Unmarshal(conversionRaw, &rates); err != nil {
		return nil, fmt.Errorf("decoding conversion rates: %w", err)
	}
	return rates, nil
}
