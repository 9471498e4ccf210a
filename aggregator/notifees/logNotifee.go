package notifees

import (
	"context"
	"time"

	"github.com/klever-io/klv-gas-station-go/aggregator"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("klv-gas-station-go/aggregator/notifees")

// ArgsLogNotifee is the argument DTO for the NewLogNotifee function
type ArgsLogNotifee struct {
	Log Logger
}

type logNotifee struct {
	log Logger
}

// NewLogNotifee will create a new instance of logNotifee. A nil Log will use the package logger
func NewLogNotifee(args ArgsLogNotifee) (*logNotifee, error) {
	notifeeLog := args.Log
	if notifeeLog == nil {
		notifeeLog = log
	}
	if check.IfNil(notifeeLog) {
		return nil, errNilLogger
	}

	return &logNotifee{
		log: notifeeLog,
	}, nil
}

// GasPriceChanged is the function that gets called by a gas price notifier. It writes one log line for each change
func (ln *logNotifee) GasPriceChanged(_ context.Context, changes []*aggregator.ArgsGasPriceChanged) error {
	for _, change := range changes {
		if change == nil {
			continue
		}

		ln.log.Info("gas price changed",
			"priority", change.Priority.String(),
			"wei", change.PriceWei.String(),
			"gwei", change.PriceGwei.String(),
			"expected wait (min)", change.ExpectedWaitMinutes,
			"block", change.BlockNum,
			"fetched at", time.Unix(change.Timestamp, 0).UTC().Format(time.RFC3339),
		)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ln *logNotifee) IsInterfaceNil() bool {
	return ln == nil
}
