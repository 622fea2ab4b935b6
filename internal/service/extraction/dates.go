package extraction

import (
	"time"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// fallbackDateFormats are tried in order when a date is not already
// YYYY-MM-DD. The first format that parses wins.
var fallbackDateFormats = []string{
	"01/02/2006", // MM/DD/YYYY
	"02/01/2006", // DD/MM/YYYY
	"January 2, 2006",
	"Jan 2, 2006",
}

// coerceDate normalizes a detected date string to YYYY-MM-DD.
// Returns the normalized date and true on success; "" and false when no
// format parses; the caller then leaves the field untouched.
func coerceDate(s string) (string, bool) {
	if domain.IsISODate(s) {
		return s, true
	}

	for _, layout := range fallbackDateFormats {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.Format(domain.ISODateFormat), true
		}
	}

	return "", false
}
