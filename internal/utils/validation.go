package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// maxPeriodLength bounds a period key in characters, not bytes: month
// names and the "Não informado" filler are not ASCII.
const maxPeriodLength = 100

// ValidatePeriod validates a period key taken from a query string or path.
func ValidatePeriod(period string) error {
	if strings.TrimSpace(period) == "" {
		return errors.New("period cannot be empty")
	}

	if utf8.RuneCountInString(period) > maxPeriodLength {
		return errors.New("period too long (max 100 characters)")
	}

	if !utf8.ValidString(period) || dangerousPattern.MatchString(period) {
		return errors.New("period contains invalid characters")
	}

	return nil
}

// ValidateKnownPeriod accepts any period the table holds, whatever its
// characters, and validates everything else.
func ValidateKnownPeriod(period string, known func(string) bool) error {
	if known(period) {
		return nil
	}
	return ValidatePeriod(period)
}

// ValidatePeriodParams validates an optional period parameter. An empty
// value is allowed and means the default period.
func ValidatePeriodParams(period string, known func(string) bool) map[string][]string {
	fieldErrors := make(map[string][]string)

	if period == "" {
		return fieldErrors
	}

	if err := ValidateKnownPeriod(period, known); err != nil {
		fieldErrors["period"] = append(fieldErrors["period"], err.Error())
	}

	return fieldErrors
}
