package converter

import "errors"

// ErrInvalidAmount signals that a negative or non-numeric amount was provided for conversion
var ErrInvalidAmount = errors.New("invalid amount")
