package random

import "errors"

var (
	ErrInvalidRange  = errors.New("random: min must not exceed max")
	ErrInvalidLength = errors.New("random: invalid length")
	ErrNoCharset     = errors.New("random: no character classes enabled")
	ErrEntropy       = errors.New("random: entropy source failed")
)
