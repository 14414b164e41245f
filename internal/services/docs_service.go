package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders report rows as printable PDFs.
type DocsService struct {
	RequestID string
	Now       func() time.Time
}

var reportTitles = map[string]string{
	ReportRevenue:       "Revenue Report",
	ReportRoomOccupancy: "Room Occupancy Report",
	ReportGuestBilling:  "Guest Billing Summary",
	ReportServiceUsage:  "Service Usage per Room",
}

// ReportPDF lays rows out as a table using the column order of the first row.
func (s DocsService) ReportPDF(kind string, f models.ReportFilter, rows []intdb.Row) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "report_pdf", fmt.Sprintf("kind=%s rows=%d", kind, len(rows)))

	title := safe(reportTitles[kind], kind)
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Branch: %d    Period: %s to %s", deref(f.BranchID), safe(f.StartDate, "-"), safe(f.EndDate, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated: "+s.now().Format("2006-01-02 15:04"))
	pdf.Ln(9)

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 7, "No data for the selected period.")
	} else {
		writeTable(pdf, rows)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("REPORT_%s_%s_%s.pdf", utils.SafeFilenamePart(kind), utils.SafeFilenamePart(f.StartDate), utils.SafeFilenamePart(f.EndDate))
	return buf.Bytes(), filename, nil
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func writeTable(pdf *gofpdf.Fpdf, rows []intdb.Row) {
	cols := rows[0].Columns()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(cols))
	const lineH = 7.0

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range cols {
			pdf.CellFormat(colW, lineH, fit(pdf, col, colW), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	header()
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range rows {
		if pdf.GetY()+lineH > pageH-bottom-10 {
			pdf.AddPage()
			header()
		}
		for _, col := range cols {
			align := "L"
			if isNumeric(row, col) {
				align = "R"
			}
			pdf.CellFormat(colW, lineH, fit(pdf, cellText(row, col), colW), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func cellText(row intdb.Row, col string) string {
	v, ok := row.Get(col)
	if !ok || v == nil {
		return "-"
	}
	if _, isFloat := v.(float64); isFloat {
		f, _ := row.Float64(col)
		return utils.FormatAmount(f)
	}
	return safe(row.String(col), "-")
}

func isNumeric(row intdb.Row, col string) bool {
	v, _ := row.Get(col)
	switch v.(type) {
	case int64, int32, int, uint64, float64, float32:
		return true
	case string:
		_, err := row.Float64(col)
		return err == nil
	default:
		return false
	}
}

// fit truncates s with an ellipsis so it stays inside a cell of width w.
func fit(pdf *gofpdf.Fpdf, s string, w float64) string {
	limit := w - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
