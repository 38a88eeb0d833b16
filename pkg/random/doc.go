// Package random generates integers, one-time codes and passwords using
// cryptographically secure randomness.
//
// All selection is bias-free: values are drawn with crypto/rand.Int, which
// rejects samples outside the requested range instead of reducing them modulo n.
//
// # Usage
//
// Package-level helpers use a shared crypto/rand backed generator:
//
//	n, err := random.Int(1, 6)              // dice roll, both bounds inclusive
//	code, err := random.OTP(6, false)       // "402913"
//	code, err := random.OTP(8, true)        // "aZ3k9QmB"
//	pw, err := random.Password()            // 16 chars, lower+upper+digits+symbols
//
// # Passwords
//
// Every enabled character class appears at least once and positions are shuffled:
//
//	pw, err := random.Password(
//		random.WithLength(24),
//		random.WithoutSymbols(),
//		random.WithoutAmbiguous(), // drops 0 O 1 l I
//	)
//
// A custom symbol set may contain any Unicode characters; length is counted in runes.
//
// # Generators and Configuration
//
// A Generator carries an entropy source, a logger and defaults. Defaults can be
// loaded from the environment:
//
//	RANDOM_OTP_LENGTH            default 6
//	RANDOM_OTP_ALPHANUMERIC      default false
//	RANDOM_PASSWORD_LENGTH       default 16
//	RANDOM_PASSWORD_SYMBOLS      default true
//	RANDOM_PASSWORD_NO_AMBIGUOUS default false
//
//	cfg, err := random.LoadConfig()
//	if err != nil {
//		return err
//	}
//	gen := random.NewFromConfig(cfg, random.WithLogger(log))
//	code, err := gen.DefaultOTP()
//
// Entropy failures are logged at error level and returned wrapped in ErrEntropy.
// Tests can inject a deterministic source with WithReader.
//
// # Errors
//
//   - ErrInvalidRange: Int called with min greater than max
//   - ErrInvalidLength: OTP longer than 64, or password shorter than the number of
//     enabled classes or longer than 1024
//   - ErrNoCharset: every password character class disabled
//   - ErrEntropy: the entropy source returned an error
package random
