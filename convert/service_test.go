package convert

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	currency "go-currency-conversion"
)

type mock struct {
	factors map[string]currency.Rate
}

func (m *mock) Factor(_ context.Context, base currency.Code, target currency.Code) (currency.Rate, error) {
	factor, ok := m.factors[fmt.Sprintf("%v->%v", base, target)]
	if !ok {
		return 0, fmt.Errorf("%w: no rate", currency.ErrRateUnavailable)
	}
	return factor, nil
}

func TestService_Convert(t *testing.T) {
	rateService := &mock{
		factors: map[string]currency.Rate{
			"USD->EUR": 0.85,
			"USD->USD": 1.0,
			"EUR->JPY": 126.40,
		},
	}

	service := &service{
		rateService: rateService,
	}

	type args struct {
		from currency.Money
		to   currency.Code
	}
	tests := []struct {
		name    string
		args    args
		want    currency.Money
		wantErr error
	}{
		{
			"usd -> eur",
			args{currency.Money{CurrencyCode: "USD", Units: 10, Nanos: 500000000}, "EUR"},
			currency.Money{CurrencyCode: "EUR", Units: 8, Nanos: 925000000},
			nil,
		},
		{
			"identity conversion",
			args{currency.Money{CurrencyCode: "USD", Units: 10, Nanos: 0}, "USD"},
			currency.Money{CurrencyCode: "USD", Units: 10, Nanos: 0},
			nil,
		},
		{
			"whole units only",
			args{currency.Money{CurrencyCode: "EUR", Units: 2, Nanos: 0}, "JPY"},
			currency.Money{CurrencyCode: "JPY", Units: 252, Nanos: 800000000},
			nil,
		},
		{
			"unknown pair",
			args{currency.Money{CurrencyCode: "USD", Units: 1, Nanos: 0}, "XYZ"},
			currency.Money{},
			currency.ErrRateUnavailable,
		},
		{
			"missing from code",
			args{currency.Money{Units: 1, Nanos: 0}, "EUR"},
			currency.Money{},
			currency.ErrInvalidInput,
		},
		{
			"missing to code",
			args{currency.Money{CurrencyCode: "USD", Units: 1, Nanos: 0}, ""},
			currency.Money{},
			currency.ErrInvalidInput,
		},
		{
			"negative amount",
			args{currency.Money{CurrencyCode: "USD", Units: -1, Nanos: 0}, "EUR"},
			currency.Money{},
			currency.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Convert(context.Background(), tt.args.from, tt.args.to)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Currencies(t *testing.T) {
	supported := []currency.Code{"EUR", "USD", "JPY"}
	service := NewService(&mock{}, supported)

	codes, err := service.Currencies(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, supported, codes)
}
