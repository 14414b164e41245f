package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain/models"
)

func TestDocsServiceReportPDF(t *testing.T) {
	svc := DocsService{Now: func() time.Time { return time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC) }}
	f := models.ReportFilter{BranchID: ptr[int64](1), StartDate: "2024-01-01", EndDate: "2024-01-31"}

	var rows []intdb.Row
	for i := 0; i < 60; i++ {
		rows = append(rows, intdb.NewRow(
			[]string{"branch", "date", "total_revenue", "a_very_long_column_name_that_needs_truncation"},
			[]any{"Colombo", "2024-01-10", "125000.50", strings.Repeat("x", 80)},
		))
	}

	pdf, filename, err := svc.ReportPDF(ReportRevenue, f, rows)
	if err != nil {
		t.Fatalf("ReportPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "REPORT_revenue_2024-01-01_2024-01-31.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}

	empty, _, err := svc.ReportPDF(ReportGuestBilling, f, nil)
	if err != nil || len(empty) == 0 {
		t.Fatalf("empty report should still render, err=%v", err)
	}
}
