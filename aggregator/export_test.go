package aggregator

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetLastNotifiedPrices -
func (gpn *gasPriceNotifier) SetLastNotifiedPrices(lastNotifiedPrices []decimal.Decimal) {
	gpn.mut.Lock()
	gpn.lastNotifiedPrices = lastNotifiedPrices
	gpn.mut.Unlock()
}

// LastTimeAutoSent -
func (gpn *gasPriceNotifier) LastTimeAutoSent() time.Time {
	gpn.mut.Lock()
	defer gpn.mut.Unlock()

	return gpn.lastTimeAutoSent
}

// SetTimeSinceHandler -
func (gpn *gasPriceNotifier) SetTimeSinceHandler(handler func(t time.Time) time.Duration) {
	gpn.mut.Lock()
	gpn.timeSinceHandler = handler
	gpn.mut.Unlock()
}
