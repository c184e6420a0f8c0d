package utils

import (
	"math"
	"strings"
)

// SplitNonEmpty - Splits s around each instance of sep and drops any empty parts, so that leading, trailing
// and repeated separators yield no tokens.
func SplitNonEmpty(s, sep string) (parts []string) {
	for _, p := range strings.Split(s, sep) {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return
}

// TrimLineEnding - Removes a trailing "\n" or "\r\n" from line
func TrimLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// AddInt64 - Returns a + b and whether the addition stayed within int64 range
func AddInt64(a, b int64) (sum int64, ok bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return
	}

	return a + b, true
}

// MulInt64 - Returns a * b and whether the multiplication stayed within int64 range
func MulInt64(a, b int64) (product int64, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	product = a * b
	if product/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}

	return product, true
}
