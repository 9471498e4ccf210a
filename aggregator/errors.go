package aggregator

import "errors"

var (
	// ErrEmptyArgsPrioritiesSlice signals that an empty priorities slice was provided
	ErrEmptyArgsPrioritiesSlice = errors.New("empty priorities slice")
	// ErrNilArgsPriority signals that a nil priority argument was provided
	ErrNilArgsPriority = errors.New("nil priority argument")
	// ErrDuplicatedPriority signals that the same priority was provided more than once
	ErrDuplicatedPriority = errors.New("duplicated priority")
	// ErrInvalidAutoSendInterval signals that an invalid auto send interval was provided
	ErrInvalidAutoSendInterval = errors.New("invalid auto send interval")
	// ErrNilGasPriceFetcher signals that a nil gas price fetcher was provided
	ErrNilGasPriceFetcher = errors.New("nil gas price fetcher")
	// ErrNilGasPriceNotifee signals that a nil gas price notifee was provided
	ErrNilGasPriceNotifee = errors.New("nil gas price notifee")
	// ErrInvalidRequestTimeout signals that a negative request timeout was provided
	ErrInvalidRequestTimeout = errors.New("invalid request timeout")
	// ErrUnexpectedHttpStatus signals that the server answered with a non-success status code
	ErrUnexpectedHttpStatus = errors.New("unexpected http status")
)
