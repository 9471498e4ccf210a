package gas

import (
	"context"
	"fmt"

	"github.com/klever-io/klv-gas-station-go/converter"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/shopspring/decimal"
)

// EthGasStationAPIURL is the URL of the ETH gas station JSON API
const EthGasStationAPIURL = "https://ethgasstation.info/json/ethgasAPI.json"

var log = logger.GetOrCreate("klv-gas-station-go/gasStation")

// ArgsGasPriceFetcher is the DTO used to create a new gas price fetcher
type ArgsGasPriceFetcher struct {
	ResponseGetter ResponseGetter
}

type gasPriceFetcher struct {
	responseGetter ResponseGetter
}

// NewGasPriceFetcher creates a new instance of the ETH gas station price fetcher
func NewGasPriceFetcher(args ArgsGasPriceFetcher) (*gasPriceFetcher, error) {
	if check.IfNil(args.ResponseGetter) {
		return nil, ErrNilResponseGetter
	}

	return &gasPriceFetcher{
		responseGetter: args.ResponseGetter,
	}, nil
}

// FetchPriceQuote fetches the current gas price data, as returned by the ETH gas station API.
// There is no retry: any transport, status or decoding failure is returned wrapped in ErrFetchFailed.
func (fetcher *gasPriceFetcher) FetchPriceQuote(ctx context.Context) (*PriceQuoteResponse, error) {
	response := &PriceQuoteResponse{}
	err := fetcher.responseGetter.Get(ctx, EthGasStationAPIURL, response)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	log.Trace("fetched gas price quote", "block", response.BlockNum, "fast", response.Fast.String(),
		"fastest", response.Fastest.String(), "safeLow", response.SafeLow.String(), "average", response.Average.String())

	return response, nil
}

// FetchPriceInWei fetches the current gas price for the provided priority, converted to wei
func (fetcher *gasPriceFetcher) FetchPriceInWei(ctx context.Context, priority Priority) (decimal.Decimal, error) {
	if !priority.IsValid() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}

	quote, err := fetcher.FetchPriceQuote(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return PriceInWei(quote, priority)
}

// PriceInWei selects the price for the provided priority from an already fetched quote and converts it to wei
func PriceInWei(quote *PriceQuoteResponse, priority Priority) (decimal.Decimal, error) {
	nativePrice, err := quote.PriceFor(priority)
	if err != nil {
		return decimal.Zero, err
	}

	gweiPrice, err := converter.NativeUnitsToGwei(nativePrice)
	if err != nil {
		return decimal.Zero, err
	}

	return converter.GweiToWei(gweiPrice)
}

// IsInterfaceNil returns true if there is no value under the interface
func (fetcher *gasPriceFetcher) IsInterfaceNil() bool {
	return fetcher == nil
}
