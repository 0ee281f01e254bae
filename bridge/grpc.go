package bridge

import (
	"context"

	currency "go-currency-conversion"
	"go-currency-conversion/internal/pb"
)

// GRPCServer adapts a bridge Service to the generated CurrencyService bindings.
// Handlers never return an RPC error for downstream failures; degraded results
// surface as ordinary responses.
type GRPCServer struct {
	pb.UnimplementedCurrencyServiceServer
	service Service
}

// NewGRPCServer constructs a valid GRPCServer.
func NewGRPCServer(s Service) *GRPCServer {
	return &GRPCServer{
		service: s,
	}
}

func (s *GRPCServer) Convert(ctx context.Context, request *pb.CurrencyConversionRequest) (*pb.Money, error) {
	result := s.service.Convert(ctx, moneyFromProto(request.GetFrom()), currency.Code(request.GetToCode()))
	return moneyToProto(result.Money), nil
}

func (s *GRPCServer) GetSupportedCurrencies(ctx context.Context, _ *pb.Empty) (*pb.GetSupportedCurrenciesResponse, error) {
	result := s.service.SupportedCurrencies(ctx)

	codes := make([]string, 0, len(result.Codes))
	for _, code := range result.Codes {
		codes = append(codes, string(code))
	}
	return &pb.GetSupportedCurrenciesResponse{CurrencyCodes: codes}, nil
}

func moneyFromProto(m *pb.Money) currency.Money {
	if m == nil {
		return currency.Money{}
	}
	return currency.Money{
		CurrencyCode: currency.Code(m.GetCurrencyCode()),
		Units:        m.GetUnits(),
		Nanos:        m.GetNanos(),
	}
}

func moneyToProto(m currency.Money) *pb.Money {
	return &pb.Money{
		CurrencyCode: string(m.CurrencyCode),
		Units:        m.Units,
		Nanos:        m.Nanos,
	}
}
