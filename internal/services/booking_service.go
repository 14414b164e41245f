package services

import (
	"context"
	"fmt"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain"
	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/events"
	"hrgsms-backend/internal/utils"
)

const (
	msgBookingFailed  = "Failed to create booking"
	msgCheckInFailed  = "Check-in failed"
	msgCheckOutFailed = "Check-out failed"
)

type BookingService struct {
	Deps
}

// Create books a room. Date ordering and room availability are checked by
// sp_create_booking; its rejection surfaces as a StoreError.
func (s BookingService) Create(ctx context.Context, in models.ReservationCreate) (int64, error) {
	b, err := bookingFromRequest(in)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("guest_id=%d branch_id=%d room_id=%d", b.GuestID, b.BranchID, b.RoomID))

	id, err := s.createdID(ctx, intdb.ProcCreateBooking, "bookingID", msgBookingFailed,
		b.GuestID, b.BranchID, b.RoomID,
		utils.FormatDateTime(b.CheckIn), utils.FormatDateTime(b.CheckOut),
		b.NumGuests,
	)
	if err != nil {
		return 0, err
	}

	s.emit(ctx, events.BookingCreated, map[string]any{
		"booking_id": id,
		"guest_id":   b.GuestID,
		"branch_id":  b.BranchID,
		"room_id":    b.RoomID,
		"check_in":   utils.FormatDate(b.CheckIn),
		"check_out":  utils.FormatDate(b.CheckOut),
		"num_guests": b.NumGuests,
	})
	return id, nil
}

// CheckIn returns sp_checkin's first row as-is.
func (s BookingService) CheckIn(ctx context.Context, bookingID int64) (intdb.Row, error) {
	utils.LogEvent(s.RequestID, "booking", "checkin", fmt.Sprintf("booking_id=%d", bookingID))
	row, err := s.callFirst(ctx, intdb.ProcCheckin, msgCheckInFailed, bookingID)
	if err != nil {
		return intdb.Row{}, err
	}
	s.emit(ctx, events.BookingCheckedIn, map[string]any{"booking_id": bookingID})
	return row, nil
}

// CheckOut returns sp_checkout's first row as-is.
func (s BookingService) CheckOut(ctx context.Context, bookingID int64) (intdb.Row, error) {
	utils.LogEvent(s.RequestID, "booking", "checkout", fmt.Sprintf("booking_id=%d", bookingID))
	row, err := s.callFirst(ctx, intdb.ProcCheckout, msgCheckOutFailed, bookingID)
	if err != nil {
		return intdb.Row{}, err
	}
	s.emit(ctx, events.BookingCheckedOut, map[string]any{"booking_id": bookingID})
	return row, nil
}

func (s BookingService) List(ctx context.Context) ([]intdb.Row, error) {
	return s.call(ctx, intdb.ProcGetAllReservations)
}

func (s BookingService) ListByStatus(ctx context.Context, status string) ([]intdb.Row, error) {
	return s.call(ctx, intdb.ProcReservationsByStatus, status)
}

func (s BookingService) ListToday(ctx context.Context) ([]intdb.Row, error) {
	return s.call(ctx, intdb.ProcTodaysReservations)
}

// Search picks one listing: today wins over status, and an empty filter lists all.
func (s BookingService) Search(ctx context.Context, f models.ReservationFilter) ([]intdb.Row, error) {
	switch {
	case f.Today:
		return s.ListToday(ctx)
	case f.Status != "":
		return s.ListByStatus(ctx, f.Status)
	default:
		return s.List(ctx)
	}
}

func bookingFromRequest(in models.ReservationCreate) (models.Booking, error) {
	checkIn, err := utils.ParseDate(in.CheckInDate)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "checkInDate", Msg: "must be YYYY-MM-DD", Err: err}
	}
	checkOut, err := utils.ParseDate(in.CheckOutDate)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "checkOutDate", Msg: "must be YYYY-MM-DD", Err: err}
	}
	return models.Booking{
		GuestID:   deref(in.GuestID),
		BranchID:  deref(in.BranchID),
		RoomID:    deref(in.RoomID),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		NumGuests: deref(in.NumGuests),
	}, nil
}

// deref reads an optional request field; binding has already rejected nil
// for required ones, so nil only shows up for direct callers.
func deref[T int | int64](p *T) T {
	if p == nil {
		return 0
	}
	return *p
}
