package number

import (
	"math"
	"strconv"
)

// IsEven reports whether n is divisible by two.
func IsEven(n int64) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two. Negative odd numbers are odd.
func IsOdd(n int64) bool {
	return n%2 != 0
}

// IsPrime reports whether n is a prime number using 6k±1 trial division.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// i <= n/i avoids overflowing i*i near MaxInt64.
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// IsPalindrome reports whether the decimal form of n reads the same backwards.
// Negative numbers are never palindromes because of the leading sign.
func IsPalindrome(n int64) bool {
	s := strconv.FormatInt(n, 10)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// IsPerfectSquare reports whether the square root of n is an integer.
func IsPerfectSquare(n float64) bool {
	return isInteger(math.Sqrt(n))
}

// IsPerfectCube reports whether the cube root of n is an integer. Negative cubes count.
func IsPerfectCube(n float64) bool {
	return isInteger(math.Cbrt(n))
}

func isInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f)
}
