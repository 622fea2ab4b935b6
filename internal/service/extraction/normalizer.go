// Package extraction turns the free-text output of the vision extraction
// service into canonical, typed certificate field updates plus a quality
// classification. Every failure mode degrades to a classified status with a
// human-readable advisory; nothing in here returns an error to the caller.
package extraction

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/credtrack/credtrack-backend/internal/config"
	"github.com/credtrack/credtrack-backend/internal/domain"
)

// User-facing advisory messages.
const (
	msgPartial     = "Some fields could not be extracted. Please review and edit."
	msgNoData      = "Could not extract certificate data. Please enter details manually."
	msgNoKeyFields = "Could not extract key information"
)

const certificateNumberMaxLen = 100

var (
	// objectPattern finds the first object-looking substring when the
	// response is not pure JSON.
	objectPattern = regexp.MustCompile(`(?s)\{[^{}]*\}`)
	// numberPattern extracts the first numeric-looking run from text like
	// "1.5 credits".
	numberPattern = regexp.MustCompile(`[\d.]+`)
)

// Fields holds the normalized certificate field updates produced from one
// extraction response. Nil pointers mean the field could not be determined
// and must be left untouched.
type Fields struct {
	Title             *string
	Provider          *string
	Credits           *float64
	CreditTypes       []string
	CompletionDate    *string
	CertificateNumber *string
	Subject           *string
}

// Result is the outcome of normalizing one extraction response.
type Result struct {
	Status domain.ExtractionStatus
	Fields Fields
	// Data carries the raw and normalized payload, kept on the
	// certificate for user review.
	Data map[string]any
	// Advisory is the human-readable message for partial and failed
	// outcomes; nil when extraction completed cleanly.
	Advisory *string
}

// payload mirrors the JSON object the extraction service is prompted to
// return. Credits is loosely typed: the service sometimes answers with
// "1.5 credits" instead of a bare number.
type payload struct {
	Title             *string `json:"title"`
	Provider          *string `json:"provider"`
	Credits           any     `json:"credits"`
	CreditType        *string `json:"credit_type"`
	CompletionDate    *string `json:"completion_date"`
	CertificateNumber *string `json:"certificate_number"`
	Subject           *string `json:"subject"`
}

// Normalizer converts raw extraction responses into certificate updates.
type Normalizer struct {
	maxFieldLen int
	log         *slog.Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(cfg config.ExtractionConfig, logger *slog.Logger) *Normalizer {
	return &Normalizer{
		maxFieldLen: cfg.MaxFieldLength,
		log:         logger.With("service", "extraction"),
	}
}

// Normalize runs the full pipeline on one raw response: de-fence, parse,
// resolve the credit type, coerce credits and dates, cap lengths, classify.
func (n *Normalizer) Normalize(raw string) Result {
	candidate, ok := extractPayload(raw)
	if !ok {
		n.log.Warn("extraction response contains no object", slog.Int("len", len(raw)))
		return failedResult(msgNoData, map[string]any{
			"raw_text":    raw,
			"parse_error": "no JSON object found in response",
		})
	}

	var p payload
	if err := json.Unmarshal([]byte(candidate), &p); err != nil {
		n.log.Warn("extraction response parse failed", slog.String("error", err.Error()))
		return failedResult("Failed to parse extraction response: "+err.Error(), map[string]any{
			"raw_text":    raw,
			"parse_error": err.Error(),
		})
	}

	fields, data := n.normalizeFields(p)

	if trimmed(p.Title) == "" && trimmed(p.Provider) == "" && !creditsPresent(p.Credits) {
		data["parse_error"] = msgNoKeyFields
		return Result{
			Status:   domain.ExtractionStatusFailed,
			Fields:   fields,
			Data:     data,
			Advisory: ptr(msgNoKeyFields),
		}
	}

	status, advisory := classify(p)
	return Result{Status: status, Fields: fields, Data: data, Advisory: advisory}
}

// normalizeFields applies per-field coercion and returns the typed updates
// plus the review payload.
func (n *Normalizer) normalizeFields(p payload) (Fields, map[string]any) {
	var fields Fields
	data := make(map[string]any)

	if s := trimmed(p.Title); s != "" {
		fields.Title = ptr(capLen(s, n.maxFieldLen))
		data["title"] = *fields.Title
	}
	if s := trimmed(p.Provider); s != "" {
		fields.Provider = ptr(capLen(s, n.maxFieldLen))
		data["provider"] = *fields.Provider
	}
	if s := trimmed(p.Subject); s != "" {
		fields.Subject = ptr(capLen(s, n.maxFieldLen))
		data["subject"] = *fields.Subject
	}
	if s := trimmed(p.CertificateNumber); s != "" {
		fields.CertificateNumber = ptr(capLen(s, certificateNumberMaxLen))
		data["certificate_number"] = *fields.CertificateNumber
	}

	if credits, ok := coerceCredits(p.Credits); ok && credits > 0 {
		fields.Credits = &credits
		data["credits"] = credits
	}

	if s := trimmed(p.CreditType); s != "" {
		tag, matched := resolveCreditType(s)
		fields.CreditTypes = []string{tag}
		data["credit_type_id"] = tag
		if !matched {
			// Keep the detected wording for user review instead of
			// silently discarding it.
			data["credit_type_original"] = s
		}
	}

	if s := trimmed(p.CompletionDate); s != "" {
		if date, ok := coerceDate(s); ok {
			fields.CompletionDate = &date
			data["completion_date"] = date
		}
	}

	return fields, data
}

// classify counts how many of title, provider, credits and completion date
// the service answered with, whether or not the value survived coercion:
// ≥3 is a completed extraction, 1–2 partial, 0 failed. A completion date the
// service wrote but we could not parse still counts; the user reviews it in
// the raw payload.
func classify(p payload) (domain.ExtractionStatus, *string) {
	extracted := 0
	if trimmed(p.Title) != "" {
		extracted++
	}
	if trimmed(p.Provider) != "" {
		extracted++
	}
	if creditsPresent(p.Credits) {
		extracted++
	}
	if trimmed(p.CompletionDate) != "" {
		extracted++
	}

	switch {
	case extracted >= 3:
		return domain.ExtractionStatusCompleted, nil
	case extracted >= 1:
		return domain.ExtractionStatusPartial, ptr(msgPartial)
	default:
		return domain.ExtractionStatusFailed, ptr(msgNoData)
	}
}

// extractPayload strips markdown code fences and locates the JSON object
// inside the response. Returns false when no object-like substring exists.
func extractPayload(raw string) (string, bool) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "{") {
		return text, true
	}

	if match := objectPattern.FindString(text); match != "" {
		return match, true
	}

	return "", false
}

// coerceCredits accepts a bare number or text containing one, e.g.
// "1.5 credits". Returns false when no numeric value can be recovered.
func coerceCredits(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		match := numberPattern.FindString(val)
		if match == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// creditsPresent reports whether the loosely typed credits value carries
// anything at all. Zero and the empty string mean the service answered
// without a value.
func creditsPresent(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case float64:
		return val != 0
	case string:
		return strings.TrimSpace(val) != ""
	default:
		return true
	}
}

func failedResult(advisory string, data map[string]any) Result {
	return Result{
		Status:   domain.ExtractionStatusFailed,
		Data:     data,
		Advisory: &advisory,
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// capLen truncates s to at most max bytes without splitting a UTF-8 rune.
func capLen(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func ptr(s string) *string { return &s }
