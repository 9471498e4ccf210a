package aggregator

import (
	"context"
	"fmt"
	"sync"
	"time"

	gas "github.com/klever-io/klv-gas-station-go/aggregator/gasStation"
	"github.com/klever-io/klv-gas-station-go/converter"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/shopspring/decimal"
)

const minAutoSendInterval = time.Second

var log = logger.GetOrCreate("klv-gas-station-go/aggregator")

var oneHundred = decimal.NewFromInt(100)

// ArgsWatchedPriority defines a gas station priority to be watched by the notifier
type ArgsWatchedPriority struct {
	Priority                  gas.Priority
	PercentDifferenceToNotify uint32
}

// ArgsGasPriceNotifier is the argument DTO for the gas price notifier
type ArgsGasPriceNotifier struct {
	Priorities       []*ArgsWatchedPriority
	GasPriceFetcher  GasPriceFetcher
	Notifee          GasPriceNotifee
	AutoSendInterval time.Duration
}

type gasPriceInfo struct {
	priceWei  decimal.Decimal
	priceGwei decimal.Decimal
	wait      float64
	blockNum  uint64
	timestamp int64
}

type notifyArgs struct {
	*ArgsWatchedPriority
	newPrice          gasPriceInfo
	lastNotifiedPrice decimal.Decimal
	index             int
}

type gasPriceNotifier struct {
	mut                sync.Mutex
	gasPriceFetcher    GasPriceFetcher
	priorities         []*ArgsWatchedPriority
	lastNotifiedPrices []decimal.Decimal
	notifee            GasPriceNotifee
	autoSendInterval   time.Duration
	lastTimeAutoSent   time.Time
	timeSinceHandler   func(t time.Time) time.Duration
}

// NewGasPriceNotifier will create a new gasPriceNotifier instance
func NewGasPriceNotifier(args ArgsGasPriceNotifier) (*gasPriceNotifier, error) {
	err := checkArgsGasPriceNotifier(args)
	if err != nil {
		return nil, err
	}

	priorities := make([]*ArgsWatchedPriority, 0, len(args.Priorities))
	for _, argsPriority := range args.Priorities {
		priorityCopy := *argsPriority
		priorities = append(priorities, &priorityCopy)
	}

	return &gasPriceNotifier{
		gasPriceFetcher:    args.GasPriceFetcher,
		priorities:         priorities,
		lastNotifiedPrices: make([]decimal.Decimal, len(priorities)),
		notifee:            args.Notifee,
		autoSendInterval:   args.AutoSendInterval,
		lastTimeAutoSent:   time.Now(),
		timeSinceHandler:   time.Since,
	}, nil
}

func checkArgsGasPriceNotifier(args ArgsGasPriceNotifier) error {
	if len(args.Priorities) < 1 {
		return ErrEmptyArgsPrioritiesSlice
	}

	seen := make(map[gas.Priority]struct{})
	for idx, argsPriority := range args.Priorities {
		if argsPriority == nil {
			return fmt.Errorf("%w, index %d", ErrNilArgsPriority, idx)
		}
		if !argsPriority.Priority.IsValid() {
			return fmt.Errorf("%w: %q, index %d", gas.ErrInvalidPriority, argsPriority.Priority, idx)
		}
		_, found := seen[argsPriority.Priority]
		if found {
			return fmt.Errorf("%w: %s", ErrDuplicatedPriority, argsPriority.Priority)
		}
		seen[argsPriority.Priority] = struct{}{}
	}

	if args.AutoSendInterval < minAutoSendInterval {
		return fmt.Errorf("%w, minimum %v, got %v", ErrInvalidAutoSendInterval, minAutoSendInterval, args.AutoSendInterval)
	}
	if check.IfNil(args.GasPriceFetcher) {
		return ErrNilGasPriceFetcher
	}
	if check.IfNil(args.Notifee) {
		return ErrNilGasPriceNotifee
	}

	return nil
}

// Execute will fetch one gas station quote and notify the priorities whose price changed enough
func (gpn *gasPriceNotifier) Execute(ctx context.Context) error {
	fetchedPrices, err := gpn.getAllPrices(ctx)
	if err != nil {
		return err
	}

	notifyArgsSlice := gpn.computeNotifyArgsSlice(fetchedPrices)

	return gpn.notify(ctx, notifyArgsSlice)
}

func (gpn *gasPriceNotifier) getAllPrices(ctx context.Context) ([]gasPriceInfo, error) {
	quote, err := gpn.gasPriceFetcher.FetchPriceQuote(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Unix()
	fetchedPrices := make([]gasPriceInfo, len(gpn.priorities))
	for idx, watched := range gpn.priorities {
		priceWei, errConvert := gas.PriceInWei(quote, watched.Priority)
		if errConvert != nil {
			return nil, fmt.Errorf("%w while converting the %s price", errConvert, watched.Priority)
		}

		priceGwei, errConvert := converter.WeiToGwei(priceWei)
		if errConvert != nil {
			return nil, fmt.Errorf("%w while converting the %s price", errConvert, watched.Priority)
		}

		wait, _ := quote.WaitFor(watched.Priority)
		fetchedPrices[idx] = gasPriceInfo{
			priceWei:  priceWei,
			priceGwei: priceGwei,
			wait:      wait,
			blockNum:  quote.BlockNum,
			timestamp: timestamp,
		}
	}

	return fetchedPrices, nil
}

func (gpn *gasPriceNotifier) computeNotifyArgsSlice(fetchedPrices []gasPriceInfo) []*notifyArgs {
	gpn.mut.Lock()
	defer gpn.mut.Unlock()

	shouldNotifyAll := gpn.timeSinceHandler(gpn.lastTimeAutoSent) > gpn.autoSendInterval

	result := make([]*notifyArgs, 0, len(gpn.priorities))
	for idx, watched := range gpn.priorities {
		notifyArgsValue := &notifyArgs{
			ArgsWatchedPriority: watched,
			newPrice:            fetchedPrices[idx],
			lastNotifiedPrice:   gpn.lastNotifiedPrices[idx],
			index:               idx,
		}

		if shouldNotifyAll || shouldNotify(notifyArgsValue) {
			result = append(result, notifyArgsValue)
		}
	}

	if shouldNotifyAll {
		gpn.lastTimeAutoSent = time.Now()
	}

	return result
}

func shouldNotify(notifyArgsValue *notifyArgs) bool {
	shouldBypassPercentCheck := notifyArgsValue.lastNotifiedPrice.IsZero() || notifyArgsValue.PercentDifferenceToNotify == 0
	if shouldBypassPercentCheck {
		return true
	}

	absoluteChange := notifyArgsValue.lastNotifiedPrice.Sub(notifyArgsValue.newPrice.priceWei).Abs()
	percentageChange := absoluteChange.Mul(oneHundred).Div(notifyArgsValue.lastNotifiedPrice)

	return percentageChange.GreaterThanOrEqual(decimal.NewFromInt(int64(notifyArgsValue.PercentDifferenceToNotify)))
}

func (gpn *gasPriceNotifier) notify(ctx context.Context, notifyArgsSlice []*notifyArgs) error {
	if len(notifyArgsSlice) == 0 {
		log.Trace("no gas price change to notify")
		return nil
	}

	args := make([]*ArgsGasPriceChanged, 0, len(notifyArgsSlice))
	for _, notify := range notifyArgsSlice {
		args = append(args, &ArgsGasPriceChanged{
			Priority:            notify.Priority,
			PriceWei:            notify.newPrice.priceWei,
			PriceGwei:           notify.newPrice.priceGwei,
			ExpectedWaitMinutes: notify.newPrice.wait,
			BlockNum:            notify.newPrice.blockNum,
			Timestamp:           notify.newPrice.timestamp,
		})

		gpn.mut.Lock()
		gpn.lastNotifiedPrices[notify.index] = notify.newPrice.priceWei
		gpn.mut.Unlock()
	}

	return gpn.notifee.GasPriceChanged(ctx, args)
}

// IsInterfaceNil returns true if there is no value under the interface
func (gpn *gasPriceNotifier) IsInterfaceNil() bool {
	return gpn == nil
}
