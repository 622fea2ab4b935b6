package report

import (
	"context"
	"fmt"
	"time"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// YearTotals summarizes one calendar year inside the comparison.
type YearTotals struct {
	Year              int                `json:"year"`
	TotalCertificates int                `json:"total_certificates"`
	TotalCredits      float64            `json:"total_credits"`
	ByCreditType      map[string]float64 `json:"by_credit_type"`
}

// YearOverYear is the multi-year comparison report.
type YearOverYear struct {
	StartYear int          `json:"start_year"`
	EndYear   int          `json:"end_year"`
	Years     []YearTotals `json:"years"`
}

// YearOverYear compares credit totals across a span of years, both bounds
// inclusive. A nil end year means the current year; a nil start year covers
// the configured default span ending there.
func (s *Service) YearOverYear(ctx context.Context, startYear, endYear *int) (*YearOverYear, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	end := time.Now().Year()
	if endYear != nil {
		end = *endYear
	}
	start := end - (s.cfg.DefaultSpan - 1)
	if startYear != nil {
		start = *startYear
	}
	if start > end {
		return nil, domain.NewValidationError("start_year", "must not be after end_year")
	}

	all, err := s.certificates.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}

	years := make([]YearTotals, 0, end-start+1)
	for year := start; year <= end; year++ {
		certs := certificatesForYear(all, year)

		byType := make(map[string]float64)
		var totalCredits float64
		for _, c := range certs {
			totalCredits += c.Credits

			tags := c.CreditTypes
			if len(tags) == 0 {
				tags = []string{"unknown"}
			}
			for _, tag := range tags {
				byType[tag] += c.Credits
			}
		}

		years = append(years, YearTotals{
			Year:              year,
			TotalCertificates: len(certs),
			TotalCredits:      totalCredits,
			ByCreditType:      byType,
		})
	}

	return &YearOverYear{
		StartYear: start,
		EndYear:   end,
		Years:     years,
	}, nil
}
