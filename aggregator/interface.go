package aggregator

import (
	"context"

	gas "github.com/klever-io/klv-gas-station-go/aggregator/gasStation"
	"github.com/shopspring/decimal"
)

// GasPriceFetcher defines the behavior of a component able to query the gas station
type GasPriceFetcher interface {
	FetchPriceQuote(ctx context.Context) (*gas.PriceQuoteResponse, error)
	FetchPriceInWei(ctx context.Context, priority gas.Priority) (decimal.Decimal, error)
	IsInterfaceNil() bool
}

// ArgsGasPriceChanged is the argument used when notifying the notifee instance
type ArgsGasPriceChanged struct {
	Priority            gas.Priority
	PriceWei            decimal.Decimal
	PriceGwei           decimal.Decimal
	ExpectedWaitMinutes float64
	BlockNum            uint64
	Timestamp           int64
}

// GasPriceNotifee defines the behavior of a component able to be notified over a gas price change
type GasPriceNotifee interface {
	GasPriceChanged(ctx context.Context, changes []*ArgsGasPriceChanged) error
	IsInterfaceNil() bool
}
