package random

import (
	"fmt"

	"github.com/dmitrymomot/utilkit/core/config"
)

// Config holds generator defaults, loadable from the environment.
type Config struct {
	OTPLength           int  `env:"RANDOM_OTP_LENGTH" envDefault:"6"`
	OTPAlphanumeric     bool `env:"RANDOM_OTP_ALPHANUMERIC" envDefault:"false"`
	PasswordLength      int  `env:"RANDOM_PASSWORD_LENGTH" envDefault:"16"`
	PasswordSymbols     bool `env:"RANDOM_PASSWORD_SYMBOLS" envDefault:"true"`
	PasswordNoAmbiguous bool `env:"RANDOM_PASSWORD_NO_AMBIGUOUS" envDefault:"false"`
}

// DefaultConfig returns the built-in defaults without reading the environment.
func DefaultConfig() Config {
	return Config{
		OTPLength:       defaultOTPLength,
		PasswordLength:  defaultPasswordLength,
		PasswordSymbols: true,
	}
}

// LoadConfig reads Config from the environment via the config package.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("load random config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig creates a Generator whose defaults come from cfg.
// Non-positive lengths in cfg fall back to the built-in defaults.
func NewFromConfig(cfg Config, opts ...Option) *Generator {
	g := New(opts...)

	if cfg.OTPLength > 0 {
		g.otpLength = cfg.OTPLength
	}
	g.otpAlphanumeric = cfg.OTPAlphanumeric

	if cfg.PasswordLength > 0 {
		g.password.length = cfg.PasswordLength
	}
	g.password.symbols = cfg.PasswordSymbols
	g.password.noAmbiguous = cfg.PasswordNoAmbiguous

	return g
}
