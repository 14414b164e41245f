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

const msgGuestFailed = "Failed to create guest"

type GuestService struct {
	Deps
}

func (s GuestService) Create(ctx context.Context, in models.GuestCreate) (int64, error) {
	first := utils.NormalizeSpace(in.FirstName)
	last := utils.NormalizeSpace(in.LastName)
	utils.LogEvent(s.RequestID, "guest", "create", "name="+first+" "+last)

	id, err := s.createdID(ctx, intdb.ProcCreateGuest, "guestID", msgGuestFailed,
		first, last,
		strings.TrimSpace(in.Phone),
		intdb.NullableString(in.Email),
		strings.TrimSpace(in.IDNumber),
	)
	if err != nil {
		return 0, err
	}
	s.emit(ctx, events.GuestCreated, map[string]any{"guest_id": id})
	return id, nil
}

// Get returns the guest row, or NotFoundError when the procedure yields nothing.
func (s GuestService) Get(ctx context.Context, guestID int64) (intdb.Row, error) {
	row, err := s.callFirst(ctx, intdb.ProcGetGuestByID, "", guestID)
	if domain.IsEmptyResult(err) {
		return intdb.Row{}, domain.NotFoundError{Resource: "Guest", Err: err}
	}
	if err != nil {
		return intdb.Row{}, fmt.Errorf("get guest %d: %w", guestID, err)
	}
	return row, nil
}

// Search matches term against guest records; a blank term lists every guest.
func (s GuestService) Search(ctx context.Context, term string) ([]intdb.Row, error) {
	term = utils.NormalizeSpace(term)
	if term == "" {
		return s.List(ctx)
	}
	return s.call(ctx, intdb.ProcSearchGuests, term)
}

func (s GuestService) List(ctx context.Context) ([]intdb.Row, error) {
	return s.call(ctx, intdb.ProcGetAllGuests)
}
