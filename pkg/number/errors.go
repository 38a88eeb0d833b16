package number

import "errors"

var (
	ErrZeroTotal = errors.New("total must not be zero")
	ErrNotFinite = errors.New("value is not a finite number")
)
