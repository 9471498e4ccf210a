package gas

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceQuoteResponse is the raw JSON response from the ETH gas station API.
// The four prices are expressed in gwei * 10 (divide by 10 to obtain gwei).
type PriceQuoteResponse struct {
	Fast        decimal.Decimal `json:"fast"`        // expected to be mined in <2 minutes
	Fastest     decimal.Decimal `json:"fastest"`     // expected to be mined in <30 seconds
	SafeLow     decimal.Decimal `json:"safeLow"`     // expected to be mined in <30 minutes
	Average     decimal.Decimal `json:"average"`     // expected to be mined in <5 minutes
	BlockTime   float64         `json:"block_time"`  // average time, in seconds, to mine one block
	BlockNum    uint64          `json:"blockNum"`    // latest block number
	Speed       float64         `json:"speed"`       // smallest gasUsed/gasLimit over the last 10 blocks
	SafeLowWait float64         `json:"safeLowWait"` // minutes
	AvgWait     float64         `json:"avgWait"`     // minutes
	FastWait    float64         `json:"fastWait"`    // minutes
	FastestWait float64         `json:"fastestWait"` // minutes
}

// PriceFor returns the price, in gas station units, recommended for the provided priority
func (response *PriceQuoteResponse) PriceFor(priority Priority) (decimal.Decimal, error) {
	switch priority {
	case PriorityFast:
		return response.Fast, nil
	case PriorityFastest:
		return response.Fastest, nil
	case PrioritySafeLow:
		return response.SafeLow, nil
	case PriorityAverage:
		return response.Average, nil
	}

	return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
}

// WaitFor returns the expected waiting time, in minutes, for the provided priority
func (response *PriceQuoteResponse) WaitFor(priority Priority) (float64, error) {
	switch priority {
	case PriorityFast:
		return response.FastWait, nil
	case PriorityFastest:
		return response.FastestWait, nil
	case PrioritySafeLow:
		return response.SafeLowWait, nil
	case PriorityAverage:
		return response.AvgWait, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
}
