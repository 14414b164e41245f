package handlers

import (
	"net/http"

	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateInvoice POST /payments/invoices
func (h *Handler) CreateInvoice(c *gin.Context) {
	var in models.InvoiceCreate
	if !bindJSON(c, &in) {
		return
	}
	id, err := services.PaymentService{Deps: h.deps(c)}.CreateInvoice(c.Request.Context(), in)
	if err != nil {
		failWrite(c, "payment", "create_invoice", err)
		return
	}
	c.JSON(http.StatusCreated, models.InvoiceCreated{InvoiceID: id, Message: "Invoice created successfully"})
}

// AddPayment POST /payments/
func (h *Handler) AddPayment(c *gin.Context) {
	var in models.PaymentCreate
	if !bindJSON(c, &in) {
		return
	}
	id, err := services.PaymentService{Deps: h.deps(c)}.AddPayment(c.Request.Context(), in)
	if err != nil {
		failWrite(c, "payment", "add_payment", err)
		return
	}
	c.JSON(http.StatusCreated, models.PaymentAdded{TransactionID: id, Message: "Payment added successfully"})
}

// ListInvoices GET /payments/invoices
func (h *Handler) ListInvoices(c *gin.Context) {
	rows, err := services.PaymentService{Deps: h.deps(c)}.ListInvoices(c.Request.Context())
	if err != nil {
		failRead(c, "payment", "list_invoices", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": rows, "total": len(rows)})
}
