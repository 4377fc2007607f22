package services

import (
	"strconv"
	"strings"
)

// The form layer hands every numeric field over as a raw string. These two
// functions are the only place that contract is absorbed: anything empty,
// unparsable or negative becomes 0 and the calculators never see an error.

// ParseDimension converts a raw measurement field to a non-negative float.
func ParseDimension(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseCount converts a raw count field to a non-negative whole number.
// Fractional input does not round; it is rejected like any other garbage.
func ParseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
