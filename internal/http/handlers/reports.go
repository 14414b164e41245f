package handlers

import (
	"fmt"
	"net/http"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Report serves GET /reports/{kind}. A failed report is answered as an empty
// one; format=pdf renders the same rows as a PDF.
func (h *Handler) Report(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f models.ReportFilter
		if !bindQuery(c, &f) {
			return
		}
		deps := h.deps(c)
		rows, err := services.ReportService{Deps: deps}.Run(c.Request.Context(), kind, f)
		if err != nil {
			swallow(c, "report", kind, err)
			rows = []intdb.Row{}
		}

		if f.Format != "pdf" {
			c.JSON(http.StatusOK, rows)
			return
		}
		pdf, filename, err := services.DocsService{RequestID: deps.RequestID}.ReportPDF(kind, f, rows)
		if err != nil {
			failRead(c, "docs", "report_pdf", err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
