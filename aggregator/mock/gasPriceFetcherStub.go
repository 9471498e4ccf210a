package mock

import (
	"context"

	gas "github.com/klever-io/klv-gas-station-go/aggregator/gasStation"
	"github.com/shopspring/decimal"
)

// GasPriceFetcherStub -
type GasPriceFetcherStub struct {
	FetchPriceQuoteCalled func(ctx context.Context) (*gas.PriceQuoteResponse, error)
	FetchPriceInWeiCalled func(ctx context.Context, priority gas.Priority) (decimal.Decimal, error)
}

// FetchPriceQuote -
func (stub *GasPriceFetcherStub) FetchPriceQuote(ctx context.Context) (*gas.PriceQuoteResponse, error) {
	if stub.FetchPriceQuoteCalled != nil {
		return stub.FetchPriceQuoteCalled(ctx)
	}

	return &gas.PriceQuoteResponse{}, nil
}

// FetchPriceInWei -
func (stub *GasPriceFetcherStub) FetchPriceInWei(ctx context.Context, priority gas.Priority) (decimal.Decimal, error) {
	if stub.FetchPriceInWeiCalled != nil {
		return stub.FetchPriceInWeiCalled(ctx, priority)
	}

	return decimal.Zero, nil
}

// IsInterfaceNil -
func (stub *GasPriceFetcherStub) IsInterfaceNil() bool {
	return stub == nil
}
