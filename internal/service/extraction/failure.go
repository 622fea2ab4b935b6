package extraction

import (
	"context"
	"errors"
	"strings"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// Upstream-call advisory messages.
const (
	msgServiceBusy = "Extraction service is busy. Please try again in a moment or enter details manually."
	msgTimedOut    = "Extraction timed out. Please enter details manually."
	msgCallFailed  = "Extraction failed. Please enter certificate details manually."
)

// ClassifyCallFailure maps an error from the upstream extraction call to a
// terminal failed status plus a user-facing advisory. A record must never be
// left in processing; every upstream fault resolves here.
func ClassifyCallFailure(err error) (domain.ExtractionStatus, string) {
	if err == nil {
		return domain.ExtractionStatusFailed, msgCallFailed
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ExtractionStatusFailed, msgTimedOut
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "overloaded") || strings.Contains(msg, "429"):
		return domain.ExtractionStatusFailed, msgServiceBusy
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out") || strings.Contains(msg, "deadline"):
		return domain.ExtractionStatusFailed, msgTimedOut
	default:
		return domain.ExtractionStatusFailed, msgCallFailed
	}
}
