// Package utilkit is a collection of small, stateless helpers for numbers and strings.
//
// # Package Organization
//
// The library is organized into two categories:
//
//   - Utilities: standalone helper packages under pkg/
//   - Core: shared infrastructure (configuration, logging) under core/
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/utilkit/pkg/number
//	go doc -all github.com/dmitrymomot/utilkit/pkg/random
//
// # Utility Packages
//
//	github.com/dmitrymomot/utilkit/pkg/number  - Metric-suffix formatting (1.2M), percentages, number predicates
//	github.com/dmitrymomot/utilkit/pkg/text    - Capitalization, camel/kebab/snake case, word and character counts
//	github.com/dmitrymomot/utilkit/pkg/random  - Crypto-random integers, OTP codes and passwords
//
// # Core Packages
//
//	github.com/dmitrymomot/utilkit/core/config - Type-safe environment variable loading
//	github.com/dmitrymomot/utilkit/core/logger - Structured logging built on slog
//
// # Quick Start
//
//	import (
//		"github.com/dmitrymomot/utilkit/pkg/number"
//		"github.com/dmitrymomot/utilkit/pkg/random"
//		"github.com/dmitrymomot/utilkit/pkg/text"
//	)
//
//	number.FormatWithSuffix(1234567, 1) // "1.2M"
//	text.ToKebabCase("backgroundColor") // "background-color"
//	code, err := random.OTP(6, false)   // "402913"
package utilkit
