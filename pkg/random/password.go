package random

import (
	"fmt"
	"strings"
)

const (
	defaultPasswordLength = 16
	maxPasswordLength     = 1024

	lowerChars     = "abcdefghijklmnopqrstuvwxyz"
	upperChars     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbolChars    = "!@#$%^&*()-_=+[]{}<>?"
	ambiguousChars = "0O1lI"
)

type passwordConfig struct {
	length      int
	lower       bool
	upper       bool
	digits      bool
	symbols     bool
	symbolSet   string
	noAmbiguous bool
}

func defaultPasswordConfig() passwordConfig {
	return passwordConfig{
		length:    defaultPasswordLength,
		lower:     true,
		upper:     true,
		digits:    true,
		symbols:   true,
		symbolSet: symbolChars,
	}
}

// PasswordOption customizes a single Password call.
type PasswordOption func(*passwordConfig)

// WithLength sets the password length.
func WithLength(n int) PasswordOption {
	return func(c *passwordConfig) {
		c.length = n
	}
}

// WithoutLower excludes lowercase letters.
func WithoutLower() PasswordOption {
	return func(c *passwordConfig) {
		c.lower = false
	}
}

// WithoutUpper excludes uppercase letters.
func WithoutUpper() PasswordOption {
	return func(c *passwordConfig) {
		c.upper = false
	}
}

// WithoutDigits excludes digits.
func WithoutDigits() PasswordOption {
	return func(c *passwordConfig) {
		c.digits = false
	}
}

// WithoutSymbols excludes symbols.
func WithoutSymbols() PasswordOption {
	return func(c *passwordConfig) {
		c.symbols = false
	}
}

// WithSymbols enables symbols drawn from set. An empty set disables symbols.
func WithSymbols(set string) PasswordOption {
	return func(c *passwordConfig) {
		c.symbolSet = set
		c.symbols = set != ""
	}
}

// WithoutAmbiguous drops characters that are easy to confuse when read: 0 O 1 l I.
func WithoutAmbiguous() PasswordOption {
	return func(c *passwordConfig) {
		c.noAmbiguous = true
	}
}

func (c passwordConfig) classes() [][]rune {
	var classes [][]rune
	add := func(enabled bool, set string) {
		if !enabled {
			return
		}
		if c.noAmbiguous {
			set = strings.Map(func(r rune) rune {
				if strings.ContainsRune(ambiguousChars, r) {
					return -1
				}
				return r
			}, set)
		}
		if set != "" {
			classes = append(classes, []rune(set))
		}
	}

	add(c.lower, lowerChars)
	add(c.upper, upperChars)
	add(c.digits, digits)
	add(c.symbols, c.symbolSet)

	return classes
}

// Password returns a random password. By default it is 16 characters long and
// mixes lowercase, uppercase, digits and symbols. Every enabled class is
// represented at least once, and positions are shuffled.
func (g *Generator) Password(opts ...PasswordOption) (string, error) {
	cfg := g.password
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := cfg.classes()
	if len(classes) == 0 {
		return "", ErrNoCharset
	}
	if cfg.length < len(classes) || cfg.length > maxPasswordLength {
		return "", fmt.Errorf("%w: password length %d must be between %d and %d",
			ErrInvalidLength, cfg.length, len(classes), maxPasswordLength)
	}

	out := make([]rune, 0, cfg.length)
	for _, set := range classes {
		r, err := g.pick(set)
		if err != nil {
			return "", g.entropyError("password", err)
		}
		out = append(out, r)
	}

	var all []rune
	for _, set := range classes {
		all = append(all, set...)
	}
	for len(out) < cfg.length {
		r, err := g.pick(all)
		if err != nil {
			return "", g.entropyError("password", err)
		}
		out = append(out, r)
	}

	// Fisher-Yates, so the guaranteed characters do not sit at fixed positions.
	for i := len(out) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return "", g.entropyError("password", err)
		}
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func (g *Generator) pick(set []rune) (rune, error) {
	idx, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}
