package services

import "testing"

func TestParseDimension(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		expect float64
	}{
		{"plain integer", "12", 12},
		{"decimal", "10.5", 10.5},
		{"leading space", "  8 ", 8},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"negative zeroes", "-4", 0},
		{"partial number", "12ft", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDimension(tt.raw); got != tt.expect {
				t.Errorf("ParseDimension(%q) = %v, want %v", tt.raw, got, tt.expect)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		expect int
	}{
		{"plain", "3", 3},
		{"zero", "0", 0},
		{"empty", "", 0},
		{"fractional rejected", "2.5", 0},
		{"negative zeroes", "-1", 0},
		{"garbage", "two", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCount(tt.raw); got != tt.expect {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.raw, got, tt.expect)
			}
		})
	}
}
