package domain

import (
	"strconv"
	"time"
)

// ISODateFormat is the canonical storage format for calendar dates.
const ISODateFormat = "2006-01-02"

// IsISODate reports whether s is a valid YYYY-MM-DD calendar date.
func IsISODate(s string) bool {
	_, err := time.Parse(ISODateFormat, s)
	return err == nil
}

// CompletionYear extracts the 4-digit year prefix of a stored completion
// date. Returns false when the string has no parseable year prefix.
func CompletionYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}
