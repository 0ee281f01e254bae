package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	currency "go-currency-conversion"
)

func TestSupportedCurrencies(t *testing.T) {
	codes, err := SupportedCurrencies()

	assert.Nil(t, err)
	assert.NotEmpty(t, codes)
	assert.Equal(t, currency.Code("EUR"), codes[0])
	assert.Contains(t, codes, currency.Code("USD"))
	for _, code := range codes {
		assert.Len(t, string(code), 3)
	}
}

func TestConversionRates(t *testing.T) {
	rates, err := ConversionRates()

	assert.Nil(t, err)
	assert.Equal(t, currency.Rate(1.0), rates["EUR"])
	assert.Greater(t, rates["USD"], currency.Rate(0))
}

func TestConversionRates_CoverSupportedCurrencies(t *testing.T) {
	codes, err := SupportedCurrencies()
	assert.Nil(t, err)

	rates, err := ConversionRates()
	assert.Nil(t, err)

	for _, code := range codes {
		_, ok := rates[code]
		assert.True(t, ok, "missing rate for %v", code)
	}
}
