package requirement

import (
	"strings"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// The matching rules below combine with logical AND across filter
// dimensions; within one dimension any accepted value is sufficient.
// Provider and subject filters apply to certificates only; self-reported
// credits carry neither field.

// matchesCertificate reports whether a certificate satisfies every active
// filter dimension of the requirement.
func matchesCertificate(req *domain.Requirement, cert *domain.Certificate) bool {
	return matchesYear(req, cert.CompletionDate) &&
		matchesCreditTypes(req.CreditTypes, cert.CreditTypes) &&
		matchesSubstrings(req.Providers, cert.Provider) &&
		matchesSubstrings(req.Subjects, deref(cert.Subject))
}

// matchesSelfReported applies only the year and credit-type dimensions.
func matchesSelfReported(req *domain.Requirement, rec *domain.SelfReportedCredit) bool {
	return matchesYear(req, rec.CompletionDate) &&
		matchesCreditTypes(req.CreditTypes, rec.CreditTypes)
}

// matchesYear checks the 4-digit year prefix of the completion date against
// the requirement's year bounds, inclusive on both ends. An absent bound
// imposes no constraint on that side; an unparseable date matches only an
// unbounded requirement.
func matchesYear(req *domain.Requirement, completionDate string) bool {
	if req.StartYear == nil && req.EndYear == nil {
		return true
	}

	year, ok := domain.CompletionYear(completionDate)
	if !ok {
		return false
	}

	if req.StartYear != nil && year < *req.StartYear {
		return false
	}
	if req.EndYear != nil && year > *req.EndYear {
		return false
	}
	return true
}

// matchesCreditTypes checks for a non-empty intersection between the
// record's tag set and the accepted set, case-insensitively. An empty
// accepted set matches everything.
func matchesCreditTypes(accepted, tags []string) bool {
	if len(accepted) == 0 {
		return true
	}
	for _, tag := range tags {
		for _, a := range accepted {
			if strings.EqualFold(tag, a) {
				return true
			}
		}
	}
	return false
}

// matchesSubstrings checks whether value contains any accepted substring,
// case-insensitively. An empty accepted list imposes no constraint.
func matchesSubstrings(accepted []string, value string) bool {
	if len(accepted) == 0 {
		return true
	}
	lower := strings.ToLower(value)
	for _, a := range accepted {
		if a == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(a)) {
			return true
		}
	}
	return false
}

// ComputeProgress runs the filter predicate over both record pools and
// returns the requirement's derived totals. It is a pure function: running
// it twice over the same pools yields identical output.
func ComputeProgress(req *domain.Requirement, certs []*domain.Certificate, selfReports []*domain.SelfReportedCredit) domain.Progress {
	var progress domain.Progress

	for _, cert := range certs {
		if matchesCertificate(req, cert) {
			progress.CreditsEarned += cert.Credits
			progress.MatchingCertificates++
		}
	}

	for _, rec := range selfReports {
		if matchesSelfReported(req, rec) {
			progress.CreditsEarned += rec.Credits
			progress.MatchingSelfReported++
		}
	}

	return progress
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
