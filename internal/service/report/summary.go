package report

import (
	"context"
	"fmt"
	"time"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// TypeTotals accumulates credits and record count for one credit-type tag.
type TypeTotals struct {
	Credits float64 `json:"credits"`
	Count   int     `json:"count"`
}

// Summary is the yearly transcript view: certificates completed in the year,
// grouped totals, and the user's active requirements with their progress.
type Summary struct {
	Year              int                   `json:"year"`
	TotalCertificates int                   `json:"total_certificates"`
	TotalCredits      float64               `json:"total_credits"`
	ByCreditType      map[string]TypeTotals `json:"by_credit_type"`
	Requirements      []*domain.Requirement `json:"requirements"`
	Certificates      []*domain.Certificate `json:"certificates"`
}

// Summary builds the transcript summary for one calendar year. A nil year
// means the current year. A certificate carrying several credit-type tags
// contributes its credits to each tag's bucket but is counted once in the
// grand total.
func (s *Service) Summary(ctx context.Context, year *int) (*Summary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	reportYear := time.Now().Year()
	if year != nil {
		reportYear = *year
	}

	all, err := s.certificates.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	certs := certificatesForYear(all, reportYear)

	byType := make(map[string]TypeTotals)
	var totalCredits float64
	for _, c := range certs {
		totalCredits += c.Credits

		tags := c.CreditTypes
		if len(tags) == 0 {
			tags = []string{"unknown"}
		}
		for _, tag := range tags {
			totals := byType[tag]
			totals.Credits += c.Credits
			totals.Count++
			byType[tag] = totals
		}
	}

	requirements, err := s.requirements.List(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}

	return &Summary{
		Year:              reportYear,
		TotalCertificates: len(certs),
		TotalCredits:      totalCredits,
		ByCreditType:      byType,
		Requirements:      requirements,
		Certificates:      certs,
	}, nil
}
