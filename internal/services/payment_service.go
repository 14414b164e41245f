package services

import (
	"context"
	"fmt"
	"strings"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain"
	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/events"
	"hrgsms-backend/internal/utils"
)

const (
	msgInvoiceFailed = "Failed to create invoice"
	msgPaymentFailed = "Failed to add payment"
)

type PaymentService struct {
	Deps
}

// CreateInvoice totals a booking into an invoice. A nil discount code is sent as NULL.
func (s PaymentService) CreateInvoice(ctx context.Context, in models.InvoiceCreate) (int64, error) {
	bookingID := deref(in.BookingID)
	utils.LogEvent(s.RequestID, "payment", "create_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	id, err := s.createdID(ctx, intdb.ProcCreateInvoice, "invoiceID", msgInvoiceFailed,
		bookingID, intdb.NullableInt64(in.DiscountCode))
	if err != nil {
		return 0, err
	}
	s.emit(ctx, events.InvoiceCreated, map[string]any{"invoice_id": id, "booking_id": bookingID})
	return id, nil
}

// AddPayment records a payment against an invoice. The accepted methods and
// overpayment rules belong to sp_add_payment.
func (s PaymentService) AddPayment(ctx context.Context, in models.PaymentCreate) (int64, error) {
	if in.Amount <= 0 {
		return 0, domain.ValidationError{Field: "amount", Msg: "must be greater than 0"}
	}
	invoiceID := deref(in.InvoiceID)
	method := strings.TrimSpace(in.PaymentMethod)
	utils.LogEvent(s.RequestID, "payment", "add_payment",
		fmt.Sprintf("invoice_id=%d amount=%s method=%s", invoiceID, utils.FormatMoney(in.Amount), method))

	id, err := s.createdID(ctx, intdb.ProcAddPayment, "transactionID", msgPaymentFailed,
		invoiceID, in.Amount, method)
	if err != nil {
		return 0, err
	}
	s.emit(ctx, events.PaymentAdded, map[string]any{
		"transaction_id": id,
		"invoice_id":     invoiceID,
		"amount":         in.Amount,
		"payment_method": method,
	})
	return id, nil
}

func (s PaymentService) ListInvoices(ctx context.Context) ([]intdb.Row, error) {
	return s.call(ctx, intdb.ProcGetAllInvoices)
}
