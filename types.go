package currency

// Code a 3-letter ISO 4217 currency code, e.g. "USD"
type Code string

// Rate a multiplicative conversion factor between two currencies
type Rate float64

// Rates maps currency codes to conversion factors from a common base currency
type Rates map[Code]Rate

// Money a fixed-point monetary amount. Units counts whole currency units and
// Nanos counts 10^-9 fractions of a unit. A normalized Money has 0 <= Nanos < 10^9.
type Money struct {
	CurrencyCode Code  `json:"currency_code"`
	Units        int64 `json:"units"`
	Nanos        int32 `json:"nanos"`
}
