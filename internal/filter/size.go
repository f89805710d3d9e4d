package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var sizeSuffixes = map[byte]int64{
	'B': 1,
	'K': 1 << 10,
	'M': 1 << 20,
	'G': 1 << 30,
	'T': 1 << 40,
}

// ParseSize parses a human-readable size such as 100, 100K, 1.5G or 1T
// (case-insensitive) into bytes. Suffixes are powers of 1024.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	multiplier := int64(1)
	numStr := s
	if m, ok := sizeSuffixes[strings.ToUpper(s[len(s)-1:])[0]]; ok {
		multiplier = m
		numStr = s[:len(s)-1]
	}
	if numStr == "" {
		return 0, fmt.Errorf("invalid size: %q", s)
	}

	if n, err := strconv.ParseInt(numStr, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative size: %q", s)
		}
		if n > math.MaxInt64/multiplier {
			return 0, fmt.Errorf("size overflows int64: %q", s)
		}
		return n * multiplier, nil
	}

	// ParseFloat also takes hex floats, NaN and Inf; none of them are sizes.
	if strings.HasPrefix(strings.ToLower(strings.TrimLeft(numStr, "+-")), "0x") {
		return 0, fmt.Errorf("invalid size: %q", s)
	}
	f, err := strconv.ParseFloat(numStr, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid size: %q", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative size: %q", s)
	}
	v := f * float64(multiplier)
	if v >= math.MaxInt64 {
		return 0, fmt.Errorf("size overflows int64: %q", s)
	}
	return int64(v), nil
}

// Range is an inclusive size window. A zero Max means no upper bound.
type Range struct {
	Min int64
	Max int64
}

// Empty reports whether neither bound is set.
func (r Range) Empty() bool { return r.Min == 0 && r.Max == 0 }

// Contains reports whether size falls inside the range.
func (r Range) Contains(size int64) bool {
	if size < r.Min {
		return false
	}
	return r.Max == 0 || size <= r.Max
}

// Validate checks that Min does not exceed a set Max.
func (r Range) Validate() error {
	if r.Max != 0 && r.Min > r.Max {
		return fmt.Errorf("min size %d exceeds max size %d", r.Min, r.Max)
	}
	return nil
}
