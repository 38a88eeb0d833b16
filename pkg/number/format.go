package number

import (
	"math"
	"strconv"
	"strings"
)

// maxPrecision is the largest number of fractional digits rendered.
const maxPrecision = 100

// Precision is the set of types accepted as a fractional digit count.
// Float precisions are floored, so 2.9 behaves like 2.
type Precision interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Tier is a magnitude bracket used to scale and suffix a number for display.
type Tier struct {
	Threshold float64
	Divisor   float64
	Suffix    string
}

// defaultTiers must stay sorted by descending threshold and end with the base tier.
var defaultTiers = [...]Tier{
	{Threshold: 1e12, Divisor: 1e12, Suffix: "T"},
	{Threshold: 1e9, Divisor: 1e9, Suffix: "B"},
	{Threshold: 1e6, Divisor: 1e6, Suffix: "M"},
	{Threshold: 1e3, Divisor: 1e3, Suffix: "K"},
	{Threshold: 0, Divisor: 1, Suffix: ""},
}

// Tiers returns a copy of the default tier table, ordered by descending threshold.
func Tiers() []Tier {
	out := make([]Tier, len(defaultTiers))
	copy(out, defaultTiers[:])
	return out
}

// Formatter renders numbers with a metric magnitude suffix (K, M, B, T).
// It is immutable after creation and safe for concurrent use.
type Formatter struct {
	tiers            [len(defaultTiers)]Tier
	decimalSeparator string
	suffixSpace      bool
}

// FormatterOption configures a Formatter during construction.
type FormatterOption func(*Formatter)

// NewFormatter creates a Formatter with the default English suffixes.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		tiers:            defaultTiers,
		decimalSeparator: ".",
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// WithDecimalSeparator sets the decimal separator used in the output.
func WithDecimalSeparator(sep string) FormatterOption {
	return func(f *Formatter) {
		if sep != "" {
			f.decimalSeparator = sep
		}
	}
}

// WithSuffixes replaces the thousand, million, billion and trillion suffixes.
func WithSuffixes(thousand, million, billion, trillion string) FormatterOption {
	return func(f *Formatter) {
		f.tiers[0].Suffix = trillion
		f.tiers[1].Suffix = billion
		f.tiers[2].Suffix = million
		f.tiers[3].Suffix = thousand
	}
}

// WithSuffixSpace puts a space between the number and a non-empty suffix.
func WithSuffixSpace() FormatterOption {
	return func(f *Formatter) {
		f.suffixSpace = true
	}
}

var defaultFormatter = NewFormatter()

// FormatWithSuffix formats n with precision fractional digits and a metric suffix.
//
//	FormatWithSuffix(1234567, 1) // "1.2M"
//	FormatWithSuffix(-1500, 2)   // "-1.50K"
//	FormatWithSuffix(999, 2)     // "999.00"
//
// Negative or fractional precision is normalized rather than rejected, and
// NaN or infinite values are returned in their default textual form.
func FormatWithSuffix[P Precision](n float64, precision P) string {
	return defaultFormatter.Format(n, normalizePrecision(float64(precision)))
}

// Format formats n with precision fractional digits and the formatter's suffixes.
// Negative precision is treated as zero.
func (f *Formatter) Format(n float64, precision int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	precision = min(max(precision, 0), maxPrecision)

	// Covers negative zero as well, which must not render as "-0".
	if n == 0 {
		return f.localize(strconv.FormatFloat(0, 'f', precision, 64))
	}

	tier := f.tierFor(math.Abs(n))
	out := f.localize(strconv.FormatFloat(n/tier.Divisor, 'f', precision, 64))
	if tier.Suffix == "" {
		return out
	}
	if f.suffixSpace {
		return out + " " + tier.Suffix
	}
	return out + tier.Suffix
}

// tierFor returns the highest tier whose threshold does not exceed abs.
// The base tier has threshold 0, so a tier is always found for finite input.
func (f *Formatter) tierFor(abs float64) Tier {
	for _, t := range f.tiers {
		if abs >= t.Threshold {
			return t
		}
	}
	return f.tiers[len(f.tiers)-1]
}

func (f *Formatter) localize(s string) string {
	if f.decimalSeparator == "." {
		return s
	}
	return strings.Replace(s, ".", f.decimalSeparator, 1)
}

// normalizePrecision clamps precision to [0, maxPrecision] and floors it.
func normalizePrecision(p float64) int {
	if math.IsNaN(p) || p <= 0 {
		return 0
	}
	if p >= maxPrecision {
		return maxPrecision
	}
	return int(math.Floor(p))
}
