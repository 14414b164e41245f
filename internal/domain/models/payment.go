package models

// InvoiceCreate is the POST /payments/invoices body. BookingID is a pointer so
// an explicit 0 is passed on to sp_create_invoice instead of failing binding.
type InvoiceCreate struct {
	BookingID    *int64 `json:"bookingID" binding:"required"`
	DiscountCode *int64 `json:"discountCode"`
}

// PaymentCreate is the POST /payments/ body. The accepted payment methods
// (Cash, Card, Online, Other) are enforced by sp_add_payment.
type PaymentCreate struct {
	InvoiceID     *int64  `json:"invoiceID" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
}
