package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	currency "go-currency-conversion"
)

func TestStaticService_Factor(t *testing.T) {
	s := NewStaticService(currency.Rates{
		"EUR": 1.0,
		"USD": 2.0,
		"GBP": 0.5,
	})

	type args struct {
		base   currency.Code
		target currency.Code
	}
	tests := []struct {
		name    string
		args    args
		want    currency.Rate
		wantErr bool
	}{
		{
			"base currency to itself",
			args{"EUR", "EUR"},
			1.0,
			false,
		},
		{
			"from the base currency",
			args{"EUR", "USD"},
			2.0,
			false,
		},
		{
			"to the base currency",
			args{"USD", "EUR"},
			0.5,
			false,
		},
		{
			"cross rate through the base",
			args{"USD", "GBP"},
			0.25,
			false,
		},
		{
			"unknown base",
			args{"XYZ", "USD"},
			0,
			true,
		},
		{
			"unknown target",
			args{"USD", "XYZ"},
			0,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Factor(context.Background(), tt.args.base, tt.args.target)
			if tt.wantErr {
				assert.True(t, errors.Is(err, currency.ErrRateUnavailable))
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	s, err := NewFromConfig("static", "")
	assert.Nil(t, err)

	factor, err := s.Factor(context.Background(), "EUR", "EUR")
	assert.Nil(t, err)
	assert.Equal(t, currency.Rate(1.0), factor)

	_, err = NewFromConfig("carrier-pigeon", "")
	assert.NotNil(t, err)
}
