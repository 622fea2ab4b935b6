package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// Export is a rendered transcript file ready to stream to the client.
type Export struct {
	Data        []byte
	Filename    string
	ContentType string
}

var transcriptHeader = []string{
	"Title",
	"Provider",
	"Credits",
	"Credit Type",
	"Completion Date",
	"Certificate #",
}

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportExcel renders the yearly transcript as an .xlsx workbook. Rows
// beyond the configured export cap are dropped.
func (s *Service) ExportExcel(ctx context.Context, year *int) (*Export, error) {
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

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "CME Transcript"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	f.SetCellValue(sheetName, "A1", "CME Transcript")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Name: %s", u.Name))
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Year: %d", summary.Year))
	f.SetCellValue(sheetName, "A4", fmt.Sprintf("Total Credits: %g", summary.TotalCredits))

	const tableRow = 6
	for col, header := range transcriptHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, tableRow)
		if err != nil {
			return nil, fmt.Errorf("convert coordinates: %w", err)
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	certs := summary.Certificates
	if len(certs) > s.cfg.MaxExportRows {
		certs = certs[:s.cfg.MaxExportRows]
	}
	for i, cert := range certs {
		row := tableRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), cert.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), cert.Provider)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), cert.Credits)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), cert.PrimaryCreditType())
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), cert.CompletionDate)
		if cert.CertificateNumber != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), *cert.CertificateNumber)
		}
	}

	widths := []float64{40, 30, 10, 20, 15, 15}
	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &Export{
		Data:        buf.Bytes(),
		Filename:    fmt.Sprintf("cme_transcript_%d.xlsx", summary.Year),
		ContentType: excelContentType,
	}, nil
}
