package gas

import "errors"

var (
	// ErrNilResponseGetter signals that a nil response getter was provided
	ErrNilResponseGetter = errors.New("nil response getter")
	// ErrInvalidPriority signals that the requested priority is not one of the gas station priorities
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrFetchFailed signals that the gas price data could not be fetched from the ETH gas station
	ErrFetchFailed = errors.New("failed to fetch gas price data from ETH gas station")
)
