package models

// BookingCreated is the 201 body of POST /reservations/.
type BookingCreated struct {
	BookingID int64  `json:"booking_id"`
	Message   string `json:"message"`
}

// InvoiceCreated is the 201 body of POST /payments/invoices.
type InvoiceCreated struct {
	InvoiceID int64  `json:"invoice_id"`
	Message   string `json:"message"`
}

// PaymentAdded is the 201 body of POST /payments/.
type PaymentAdded struct {
	TransactionID int64  `json:"transaction_id"`
	Message       string `json:"message"`
}

// GuestCreated is the 201 body of POST /guests/.
type GuestCreated struct {
	GuestID int64  `json:"guest_id"`
	Message string `json:"message"`
}
