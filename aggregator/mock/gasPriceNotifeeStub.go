package mock

import (
	"context"

	"github.com/klever-io/klv-gas-station-go/aggregator"
)

// GasPriceNotifeeStub -
type GasPriceNotifeeStub struct {
	GasPriceChangedCalled func(ctx context.Context, changes []*aggregator.ArgsGasPriceChanged) error
}

// GasPriceChanged -
func (stub *GasPriceNotifeeStub) GasPriceChanged(ctx context.Context, changes []*aggregator.ArgsGasPriceChanged) error {
	if stub.GasPriceChangedCalled != nil {
		return stub.GasPriceChangedCalled(ctx, changes)
	}

	return nil
}

// IsInterfaceNil -
func (stub *GasPriceNotifeeStub) IsInterfaceNil() bool {
	return stub == nil
}
