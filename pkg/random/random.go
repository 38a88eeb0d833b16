package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/dmitrymomot/utilkit/core/logger"
)

const (
	defaultOTPLength = 6
	maxOTPLength     = 64

	digits              = "0123456789"
	alphanumericCharset = digits + "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generator produces uniformly distributed random values from an entropy source.
// With the default crypto/rand source it is safe for concurrent use; a custom
// reader must be safe for concurrent use if the Generator is shared.
type Generator struct {
	reader io.Reader
	log    *slog.Logger

	otpLength       int
	otpAlphanumeric bool
	password        passwordConfig
}

// Option configures a Generator.
type Option func(*Generator)

// WithReader sets the entropy source. A nil reader is ignored.
func WithReader(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.reader = r
		}
	}
}

// WithLogger sets the logger used to report entropy failures. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a Generator backed by crypto/rand with built-in defaults.
func New(opts ...Option) *Generator {
	g := &Generator{
		reader:    rand.Reader,
		log:       slog.Default(),
		otpLength: defaultOTPLength,
		password:  defaultPasswordConfig(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Int returns a uniformly distributed integer in [lo, hi], both inclusive.
func (g *Generator) Int(lo, hi int64) (int64, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: %d > %d", ErrInvalidRange, lo, hi)
	}

	// big.Int keeps the span exact when it covers the whole int64 range.
	span := new(big.Int).Sub(big.NewInt(hi), big.NewInt(lo))
	span.Add(span, big.NewInt(1))

	n, err := rand.Int(g.reader, span)
	if err != nil {
		return 0, g.entropyError("int", err)
	}

	return n.Add(n, big.NewInt(lo)).Int64(), nil
}

// OTP returns a one-time code of the given length. Digits only unless
// alphanumeric is set, in which case lower and upper case letters are included.
// A non-positive length uses the generator default.
func (g *Generator) OTP(length int, alphanumeric bool) (string, error) {
	if length <= 0 {
		length = g.otpLength
	}
	if length > maxOTPLength {
		return "", fmt.Errorf("%w: otp length %d exceeds %d", ErrInvalidLength, length, maxOTPLength)
	}

	charset := digits
	if alphanumeric {
		charset = alphanumericCharset
	}

	out := make([]byte, length)
	for i := range out {
		idx, err := g.intn(len(charset))
		if err != nil {
			return "", g.entropyError("otp", err)
		}
		out[i] = charset[idx]
	}

	return string(out), nil
}

// DefaultOTP returns a code using the generator's configured length and charset.
func (g *Generator) DefaultOTP() (string, error) {
	return g.OTP(g.otpLength, g.otpAlphanumeric)
}

// intn returns a uniform value in [0, n).
func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

func (g *Generator) entropyError(action string, err error) error {
	g.log.Error("random source failed",
		logger.Error(err),
		logger.Component("random"),
		logger.Action(action),
	)
	return fmt.Errorf("%w: %w", ErrEntropy, err)
}

var defaultGenerator = New()

// Int returns a uniformly distributed integer in [lo, hi] using crypto/rand.
func Int(lo, hi int64) (int64, error) {
	return defaultGenerator.Int(lo, hi)
}

// OTP returns a one-time code using crypto/rand. See Generator.OTP.
func OTP(length int, alphanumeric bool) (string, error) {
	return defaultGenerator.OTP(length, alphanumeric)
}

// Password returns a random password using crypto/rand. See Generator.Password.
func Password(opts ...PasswordOption) (string, error) {
	return defaultGenerator.Password(opts...)
}
