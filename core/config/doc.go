// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env library
// for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/utilkit/core/config"
//
//	type GeneratorConfig struct {
//		OTPLength int  `env:"OTP_LENGTH" envDefault:"6"`
//		Symbols   bool `env:"PASSWORD_SYMBOLS" envDefault:"true"`
//	}
//
//	func main() {
//		var cfg GeneratorConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 GeneratorConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 GeneratorConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently. Parse failures are not cached and
// wrap ErrParse.
package config
