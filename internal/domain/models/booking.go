package models

import "time"

// ReservationCreate is the POST /reservations/ body. Integer fields are
// pointers so that "required" means present: an explicit 0 still reaches
// sp_create_booking, which decides whether it is acceptable.
type ReservationCreate struct {
	GuestID      *int64 `json:"guestID" binding:"required"`
	BranchID     *int64 `json:"branchID" binding:"required"`
	RoomID       *int64 `json:"roomID" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"checkOutDate" binding:"required,datetime=2006-01-02"`
	NumGuests    *int   `json:"numGuests" binding:"required"`
}

// Booking is a reservation request with its dates resolved to midnight datetimes.
// Ordering of CheckIn/CheckOut is left to sp_create_booking.
type Booking struct {
	GuestID   int64
	BranchID  int64
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
	NumGuests int
}

// ReservationFilter selects which reservation listing to run.
// Today wins over Status; an empty filter lists everything.
type ReservationFilter struct {
	Status string `form:"status"`
	Today  bool   `form:"today"`
}
