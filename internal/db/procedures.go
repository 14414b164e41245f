package db

// Stored procedures this gateway is allowed to call. Their signatures and
// business rules live in the database; the argument lists below document the
// positional order callers must use.
const (
	ProcCreateBooking        = "sp_create_booking"             // guest, branch, room, check_in, check_out, num_guests
	ProcCheckin              = "sp_checkin"                    // booking
	ProcCheckout             = "sp_checkout"                   // booking
	ProcGetAllReservations   = "sp_get_all_reservations"       // -
	ProcReservationsByStatus = "sp_get_reservations_by_status" // status
	ProcTodaysReservations   = "sp_get_todays_reservations"    // -
	ProcCreateGuest          = "sp_create_guest"               // first, last, phone, email, id_number
	ProcGetGuestByID         = "sp_get_guest_by_id"            // guest
	ProcSearchGuests         = "sp_search_guests"              // term
	ProcGetAllGuests         = "sp_get_all_guests"             // -
	ProcAvailableRooms       = "sp_get_available_rooms"        // branch, check_in, check_out
	ProcCreateInvoice        = "sp_create_invoice"             // booking, discount_code
	ProcAddPayment           = "sp_add_payment"                // invoice, amount, method
	ProcGetAllInvoices       = "sp_get_all_invoices"           // -
	ProcRevenueReport        = "sp_get_revenue_report"         // branch, start, end
	ProcRoomOccupancyReport  = "sp_get_room_occupancy_report"  // start, end
	ProcGuestBillingSummary  = "sp_get_guest_billing_summary"  // -
	ProcServiceUsagePerRoom  = "sp_get_service_usage_per_room" // -
	ProcDashboardStats       = "sp_get_dashboard_stats"        // -
)

var registry = map[string]struct{}{
	ProcCreateBooking:        {},
	ProcCheckin:              {},
	ProcCheckout:             {},
	ProcGetAllReservations:   {},
	ProcReservationsByStatus: {},
	ProcTodaysReservations:   {},
	ProcCreateGuest:          {},
	ProcGetGuestByID:         {},
	ProcSearchGuests:         {},
	ProcGetAllGuests:         {},
	ProcAvailableRooms:       {},
	ProcCreateInvoice:        {},
	ProcAddPayment:           {},
	ProcGetAllInvoices:       {},
	ProcRevenueReport:        {},
	ProcRoomOccupancyReport:  {},
	ProcGuestBillingSummary:  {},
	ProcServiceUsagePerRoom:  {},
	ProcDashboardStats:       {},
}

// Registered reports whether name is a known procedure.
func Registered(name string) bool {
	_, ok := registry[name]
	return ok
}
