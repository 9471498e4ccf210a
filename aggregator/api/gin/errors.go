package gin

import "errors"

var (
	// ErrNilGasPriceFetcher signals that a nil gas price fetcher was provided
	ErrNilGasPriceFetcher = errors.New("nil gas price fetcher")
	// ErrEmptyListenAddress signals that an empty listen address was provided
	ErrEmptyListenAddress = errors.New("empty listen address")
	// ErrServerAlreadyStarted signals that the web server was already started
	ErrServerAlreadyStarted = errors.New("web server already started")
)
