package utils

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// ParseFloatField parses a CSV cell into a float64.
func ParseFloatField(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

// ParseIntField parses a CSV cell into an int.
func ParseIntField(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return v, nil
}

// ParseBinaryField parses a CSV cell that must be 0 or 1.
func ParseBinaryField(s string) (int, error) {
	v, err := ParseIntField(s)
	if err != nil {
		return 0, err
	}
	if v != 0 && v != 1 {
		return 0, fmt.Errorf("not a binary flag: %q", s)
	}
	return v, nil
}

// ParseNullableFloat parses a CSV cell into a nullable float. Any of the
// given sentinel strings, or an empty cell, maps to the missing state.
// The second return is false when the cell is neither numeric nor a
// recognized sentinel.
func ParseNullableFloat(s string, sentinels ...string) (sql.NullFloat64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return sql.NullFloat64{}, true
	}
	for _, sentinel := range sentinels {
		if strings.EqualFold(t, sentinel) {
			return sql.NullFloat64{}, true
		}
	}
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return sql.NullFloat64{Float64: v, Valid: true}, true
	}
	return sql.NullFloat64{}, false
}

// FormatRate renders a rate with fixed precision so exports are
// byte-identical between runs.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 4, 64)
}

// CleanHeader normalizes a CSV header cell: trims whitespace, strips
// quotes, and lowercases for case-insensitive column lookup.
func CleanHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.ReplaceAll(h, `"`, "")
	return strings.ToLower(h)
}
