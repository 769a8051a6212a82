package text

import (
	"strconv"
	"strings"
)

// ParseInt returns the integer value of s, or 0 if s is empty or not a number.
func ParseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseFloat returns the float value of s, or 0 if s is empty or not a number.
func ParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
