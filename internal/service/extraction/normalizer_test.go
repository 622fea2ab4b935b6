package extraction

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/credtrack/credtrack-backend/internal/config"
	"github.com/credtrack/credtrack-backend/internal/domain"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	return NewNormalizer(config.ExtractionConfig{MaxFieldLength: 255}, slog.Default())
}

func TestNormalize_CompleteExtraction(t *testing.T) {
	n := newTestNormalizer(t)

	raw := `{"title": "Advanced Cardiac Life Support", "provider": "American Heart Association",
		"credits": 4.5, "credit_type": "AMA PRA Category 1 Credit",
		"completion_date": "2024-03-15", "certificate_number": "AHA-2024-991", "subject": "Cardiology"}`

	result := n.Normalize(raw)

	if result.Status != domain.ExtractionStatusCompleted {
		t.Fatalf("status: got %s, want completed", result.Status)
	}
	if result.Advisory != nil {
		t.Errorf("advisory: got %q, want nil", *result.Advisory)
	}
	if result.Fields.Title == nil || *result.Fields.Title != "Advanced Cardiac Life Support" {
		t.Errorf("title: got %v", result.Fields.Title)
	}
	if result.Fields.Credits == nil || *result.Fields.Credits != 4.5 {
		t.Errorf("credits: got %v", result.Fields.Credits)
	}
	if len(result.Fields.CreditTypes) != 1 || result.Fields.CreditTypes[0] != domain.CreditTypeAMACat1 {
		t.Errorf("credit types: got %v, want [ama_cat1]", result.Fields.CreditTypes)
	}
	if result.Fields.CompletionDate == nil || *result.Fields.CompletionDate != "2024-03-15" {
		t.Errorf("completion date: got %v", result.Fields.CompletionDate)
	}
}

func TestNormalize_FencedResponse(t *testing.T) {
	n := newTestNormalizer(t)

	raw := "```json\n{\"title\": \"Opioid Prescribing Update\", \"provider\": \"State Medical Board\", \"credits\": 2}\n```"

	result := n.Normalize(raw)

	if result.Status != domain.ExtractionStatusCompleted {
		t.Fatalf("status: got %s, want completed", result.Status)
	}
	if result.Fields.Provider == nil || *result.Fields.Provider != "State Medical Board" {
		t.Errorf("provider: got %v", result.Fields.Provider)
	}
}

func TestNormalize_ObjectEmbeddedInProse(t *testing.T) {
	n := newTestNormalizer(t)

	raw := `Here is the extracted data: {"title": "Ethics in Practice", "provider": "AMA", "credits": 1} — let me know if you need more.`

	result := n.Normalize(raw)

	if result.Status != domain.ExtractionStatusCompleted {
		t.Fatalf("status: got %s, want completed", result.Status)
	}
	if result.Fields.Title == nil || *result.Fields.Title != "Ethics in Practice" {
		t.Errorf("title: got %v", result.Fields.Title)
	}
}

func TestNormalize_NoObjectAtAll(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.Normalize("I could not read anything from this image.")

	if result.Status != domain.ExtractionStatusFailed {
		t.Fatalf("status: got %s, want failed", result.Status)
	}
	if result.Advisory == nil {
		t.Fatal("expected an advisory message")
	}
	if result.Data["raw_text"] == nil || result.Data["parse_error"] == nil {
		t.Errorf("expected raw_text and parse_error preserved, got %v", result.Data)
	}
}

func TestNormalize_MalformedJSON(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.Normalize(`{"title": "Broken", "provider": `)

	if result.Status != domain.ExtractionStatusFailed {
		t.Fatalf("status: got %s, want failed", result.Status)
	}
	if result.Data["raw_text"] == nil {
		t.Error("expected raw text preserved for review")
	}
}

func TestNormalize_PartialExtraction(t *testing.T) {
	n := newTestNormalizer(t)

	// Only title and provider present → partial with review advisory.
	result := n.Normalize(`{"title": "Grand Rounds", "provider": "University Hospital"}`)

	if result.Status != domain.ExtractionStatusPartial {
		t.Fatalf("status: got %s, want partial", result.Status)
	}
	if result.Advisory == nil || *result.Advisory != msgPartial {
		t.Errorf("advisory: got %v, want %q", result.Advisory, msgPartial)
	}
}

func TestNormalize_EmptyPayloadFails(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.Normalize(`{"title": null, "provider": "", "credits": 0}`)

	if result.Status != domain.ExtractionStatusFailed {
		t.Fatalf("status: got %s, want failed", result.Status)
	}
	if result.Advisory == nil {
		t.Fatal("expected a manual-entry advisory")
	}
}

func TestNormalize_CreditsFromText(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.Normalize(`{"title": "Pain Management Essentials", "provider": "CME Co", "credits": "1.5 credits"}`)

	if result.Fields.Credits == nil || *result.Fields.Credits != 1.5 {
		t.Fatalf("credits: got %v, want 1.5", result.Fields.Credits)
	}
	if result.Status != domain.ExtractionStatusCompleted {
		t.Errorf("status: got %s, want completed", result.Status)
	}
}

func TestNormalize_UnparseableCreditsLeftUntouched(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.Normalize(`{"title": "Workshop", "provider": "Clinic", "credits": "several"}`)

	if result.Fields.Credits != nil {
		t.Errorf("credits: got %v, want nil", result.Fields.Credits)
	}
	// The service answered all three key fields, so the extraction is
	// complete even though the credits text did not parse.
	if result.Status != domain.ExtractionStatusCompleted {
		t.Errorf("status: got %s, want completed", result.Status)
	}
}

func TestNormalize_FreeTextDateCountsTowardStatus(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.Normalize(`{"title": "Grand Rounds", "provider": "University Hospital",
		"completion_date": "sometime last spring"}`)

	if result.Fields.CompletionDate != nil {
		t.Errorf("completion date: got %v, want nil", result.Fields.CompletionDate)
	}
	if result.Status != domain.ExtractionStatusCompleted {
		t.Errorf("status: got %s, want completed", result.Status)
	}
}

func TestNormalize_NoKeyFieldsAdvisory(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.Normalize(`{"completion_date": "2024-03-15"}`)

	if result.Status != domain.ExtractionStatusFailed {
		t.Fatalf("status: got %s, want failed", result.Status)
	}
	if result.Advisory == nil || *result.Advisory != msgNoKeyFields {
		t.Errorf("advisory: got %v, want %q", result.Advisory, msgNoKeyFields)
	}
	if result.Data["parse_error"] != msgNoKeyFields {
		t.Errorf("parse_error: got %v, want %q", result.Data["parse_error"], msgNoKeyFields)
	}
}

func TestNormalize_UnknownCreditTypePreservesOriginal(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.Normalize(`{"title": "Regional Seminar", "provider": "Society", "credits": 3,
		"credit_type": "Unrecognized Regional Credit"}`)

	if len(result.Fields.CreditTypes) != 1 || result.Fields.CreditTypes[0] != domain.DefaultCreditType {
		t.Errorf("credit types: got %v, want default tag", result.Fields.CreditTypes)
	}
	if result.Data["credit_type_original"] != "Unrecognized Regional Credit" {
		t.Errorf("original text not preserved: %v", result.Data["credit_type_original"])
	}
}

func TestNormalize_LongFieldsAreCapped(t *testing.T) {
	n := NewNormalizer(config.ExtractionConfig{MaxFieldLength: 20}, slog.Default())

	long := strings.Repeat("x", 100)
	result := n.Normalize(`{"title": "` + long + `", "provider": "` + long + `", "credits": 1}`)

	if got := len(*result.Fields.Title); got != 20 {
		t.Errorf("title length: got %d, want 20", got)
	}
	if got := len(*result.Fields.Provider); got != 20 {
		t.Errorf("provider length: got %d, want 20", got)
	}
}

func TestNormalize_CapKeepsRunesWhole(t *testing.T) {
	n := NewNormalizer(config.ExtractionConfig{MaxFieldLength: 10}, slog.Default())

	// Three-byte runes never line up with a 10-byte cap, so a byte-index
	// truncation would split one.
	title := strings.Repeat("医", 8)
	result := n.Normalize(`{"title": "` + title + `", "provider": "P", "credits": 1}`)

	if result.Fields.Title == nil {
		t.Fatal("expected a title")
	}
	if !utf8.ValidString(*result.Fields.Title) {
		t.Errorf("title truncated mid-rune: %q", *result.Fields.Title)
	}
	if got := len(*result.Fields.Title); got > 10 {
		t.Errorf("title length: got %d, want at most 10", got)
	}
}

func TestNormalize_DateFallbackFormats(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-15", "2024-03-15"},
		{"03/15/2024", "2024-03-15"},
		{"March 15, 2024", "2024-03-15"},
		{"Mar 15, 2024", "2024-03-15"},
	}

	for _, tt := range tests {
		result := n.Normalize(`{"title": "T", "provider": "P", "credits": 1, "completion_date": "` + tt.in + `"}`)
		if result.Fields.CompletionDate == nil || *result.Fields.CompletionDate != tt.want {
			t.Errorf("date %q: got %v, want %q", tt.in, result.Fields.CompletionDate, tt.want)
		}
	}
}

func TestNormalize_UnparseableDateLeftUntouched(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.Normalize(`{"title": "T", "provider": "P", "credits": 1, "completion_date": "not a date"}`)

	if result.Fields.CompletionDate != nil {
		t.Errorf("completion date: got %v, want nil", result.Fields.CompletionDate)
	}
	// Still completed: title + provider + credits are present.
	if result.Status != domain.ExtractionStatusCompleted {
		t.Errorf("status: got %s, want completed", result.Status)
	}
}

func TestClassifyCallFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rate limit", errors.New("api error: rate limit exceeded"), msgServiceBusy},
		{"http 429", errors.New("unexpected status 429"), msgServiceBusy},
		{"timeout text", errors.New("request timed out"), msgTimedOut},
		{"deadline", context.DeadlineExceeded, msgTimedOut},
		{"generic", errors.New("connection refused"), msgCallFailed},
		{"nil", nil, msgCallFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := ClassifyCallFailure(tt.err)
			if status != domain.ExtractionStatusFailed {
				t.Errorf("status: got %s, want failed", status)
			}
			if msg != tt.want {
				t.Errorf("message: got %q, want %q", msg, tt.want)
			}
		})
	}
}
