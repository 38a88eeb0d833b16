// Package number provides stateless helpers for displaying and classifying numbers.
//
// The centerpiece is a metric-suffix formatter that turns large values into short,
// human-readable strings such as "1.2M" or "-1.50K". The package also offers
// percentage calculation and simple integer predicates (parity, primality,
// palindromes, perfect squares and cubes).
//
// # Metric Suffix Formatting
//
// FormatWithSuffix picks the largest magnitude tier whose threshold does not exceed
// the absolute value of the input, divides the signed value by the tier divisor and
// formats the result with a fixed number of fractional digits:
//
//	number.FormatWithSuffix(999, 2)     // "999.00"
//	number.FormatWithSuffix(1000, 0)    // "1K"
//	number.FormatWithSuffix(-1500, 2)   // "-1.50K"
//	number.FormatWithSuffix(1234567, 1) // "1.2M"
//	number.FormatWithSuffix(3e12, 1)    // "3.0T"
//
// Tiers, in descending order:
//
//	T  1e12
//	B  1e9
//	M  1e6
//	K  1e3
//	   0 (no suffix)
//
// The formatter never fails. Precision may be any integer or float type: negative
// values are treated as zero, fractional values are floored, and values above 100
// are capped. NaN and infinite inputs are returned in Go's default textual form
// ("NaN", "+Inf", "-Inf"), and zero always renders without a sign or suffix.
//
// Rounding follows strconv.FormatFloat: the exact binary value is correctly rounded,
// and exact halves round to even ("2.5" with zero digits becomes "2").
//
// # Localized Output
//
// A Formatter carries locale-specific presentation and is safe for concurrent use:
//
//	f := number.NewFormatter(
//		number.WithDecimalSeparator(","),
//		number.WithSuffixes("k", "Mio.", "Mrd.", "Bio."),
//		number.WithSuffixSpace(),
//	)
//	f.Format(1500, 1) // "1,5 k"
//
// # Percentages
//
//	p, err := number.Percentage(1, 3, 2) // 33.33
//	if errors.Is(err, number.ErrZeroTotal) {
//		// handle empty totals
//	}
//
// Percentages round half away from zero using decimal arithmetic.
//
// # Predicates
//
//	number.IsEven(4)           // true
//	number.IsOdd(-3)           // true
//	number.IsPrime(7919)       // true
//	number.IsPalindrome(1221)  // true
//	number.IsPerfectSquare(16) // true
//	number.IsPerfectCube(-27)  // true
package number
