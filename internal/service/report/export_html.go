package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

var transcriptTemplate = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>CME Transcript - {{.Name}}</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        h1 { color: #4F46E5; border-bottom: 2px solid #4F46E5; padding-bottom: 10px; }
        .header { margin-bottom: 30px; }
        .header p { margin: 5px 0; color: #64748b; }
        .summary { background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 30px; }
        .summary h3 { margin-top: 0; color: #334155; }
        table { width: 100%; border-collapse: collapse; margin-top: 20px; }
        th { background: #4F46E5; color: white; padding: 12px; text-align: left; }
        td { padding: 10px; border-bottom: 1px solid #e2e8f0; }
        tr:hover { background: #f8fafc; }
        .credit-type { display: inline-block; background: #e0e7ff; color: #3730a3; padding: 2px 8px; border-radius: 4px; font-size: 12px; }
        @media print {
            body { print-color-adjust: exact; -webkit-print-color-adjust: exact; }
            .no-print { display: none; }
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>CME Transcript</h1>
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Year:</strong> {{.Year}}</p>
        <p><strong>Generated:</strong> {{.Generated}}</p>
    </div>

    <div class="summary">
        <h3>Summary</h3>
        <p><strong>Total Certificates:</strong> {{.TotalCertificates}}</p>
        <p><strong>Total Credits:</strong> {{.TotalCredits}}</p>
    </div>

    <h2>Certificates</h2>
    <table>
        <thead>
            <tr>
                <th>Title</th>
                <th>Provider</th>
                <th>Credits</th>
                <th>Type</th>
                <th>Date</th>
            </tr>
        </thead>
        <tbody>
{{range .Certificates}}            <tr>
                <td>{{.Title}}</td>
                <td>{{.Provider}}</td>
                <td>{{.Credits}}</td>
                <td><span class="credit-type">{{.PrimaryCreditType}}</span></td>
                <td>{{.CompletionDate}}</td>
            </tr>
{{end}}        </tbody>
    </table>

    <p class="no-print" style="margin-top: 30px; text-align: center;">
        <button onclick="window.print()" style="background: #4F46E5; color: white; border: none; padding: 10px 20px; border-radius: 6px; cursor: pointer;">
            Print Transcript
        </button>
    </p>
</body>
</html>
`))

type transcriptData struct {
	Name              string
	Email             string
	Year              int
	Generated         string
	TotalCertificates int
	TotalCredits      float64
	Certificates      []*domain.Certificate
}

// ExportHTML renders the yearly transcript as a printable HTML page.
func (s *Service) ExportHTML(ctx context.Context, year *int) (*Export, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	summary, err := s.Summary(ctx, year)
	if err != nil {
		return nil, err
	}

	certs := summary.Certificates
	if len(certs) > s.cfg.MaxExportRows {
		certs = certs[:s.cfg.MaxExportRows]
	}

	var buf bytes.Buffer
	err = transcriptTemplate.Execute(&buf, transcriptData{
		Name:              u.Name,
		Email:             u.Email,
		Year:              summary.Year,
		Generated:         time.Now().Format("January 2, 2006"),
		TotalCertificates: summary.TotalCertificates,
		TotalCredits:      summary.TotalCredits,
		Certificates:      certs,
	})
	if err != nil {
		return nil, fmt.Errorf("render transcript: %w", err)
	}

	return &Export{
		Data:        buf.Bytes(),
		Filename:    fmt.Sprintf("cme_transcript_%d.html", summary.Year),
		ContentType: "text/html; charset=utf-8",
	}, nil
}
