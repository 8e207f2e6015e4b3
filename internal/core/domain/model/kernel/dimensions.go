package kernel

import (
	"strconv"
	"strings"
)

// Dimensions is a length/width/height triple in store units.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// IsZero reports whether all three sides are zero.
func (d Dimensions) IsZero() bool {
	return d.Length == 0 && d.Width == 0 && d.Height == 0
}

// ParseDimensions reads a "L x W x H" string as stored on box profiles.
// Separators are case-insensitive and surrounding spaces are ignored.
// Missing or unparseable sides are zero, so a malformed profile yields a
// partially-zero triple instead of an error.
//
// Example:
//
//	kernel.ParseDimensions("10 x 5.5 x 2") // {10 5.5 2}
func ParseDimensions(s string) Dimensions {
	parts := strings.Split(strings.ToLower(s), "x")
	sides := make([]float64, 3)
	for i := 0; i < len(parts) && i < len(sides); i++ {
		sides[i] = ParseNumber(parts[i])
	}
	return Dimensions{Length: sides[0], Width: sides[1], Height: sides[2]}
}

// ParseNumber reads the leading decimal number of s, the way form inputs are
// interpreted: "12.5kg" is 12.5, and text with no leading number is 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDot, seenDigit := false, false
scan:
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.' && !seenDot:
			seenDot = true
		case (c == '-' || c == '+') && end == 0:
		default:
			break scan
		}
		end++
	}
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}
