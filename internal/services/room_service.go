package services

import (
	"context"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain"
	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/utils"
)

type RoomService struct {
	Deps
}

// Available lists rooms of a branch free over [check_in, check_out).
func (s RoomService) Available(ctx context.Context, q models.AvailabilityQuery) ([]intdb.Row, error) {
	checkIn, err := utils.ParseDateOrDateTime(q.CheckIn)
	if err != nil {
		return nil, domain.ValidationError{Field: "check_in", Msg: "must be a date or datetime", Err: err}
	}
	checkOut, err := utils.ParseDateOrDateTime(q.CheckOut)
	if err != nil {
		return nil, domain.ValidationError{Field: "check_out", Msg: "must be a date or datetime", Err: err}
	}
	return s.call(ctx, intdb.ProcAvailableRooms, deref(q.BranchID), utils.FormatDateTime(checkIn), utils.FormatDateTime(checkOut))
}
