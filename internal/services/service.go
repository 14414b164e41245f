package services

import (
	"context"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain"
	"hrgsms-backend/internal/events"
)

// Deps is what every service needs to reach the store and the event bus.
// Handlers build one service value per request with the request id filled in.
type Deps struct {
	Procs     intdb.Caller
	Events    events.Publisher
	RequestID string
}

func (d Deps) call(ctx context.Context, proc string, args ...any) ([]intdb.Row, error) {
	if d.Procs == nil {
		return nil, domain.StoreError{Procedure: proc, Msg: "database not connected"}
	}
	return d.Procs.Call(ctx, proc, args...)
}

// callFirst runs proc and returns its first row. An empty result set becomes
// an EmptyResultError carrying emptyMsg.
func (d Deps) callFirst(ctx context.Context, proc, emptyMsg string, args ...any) (intdb.Row, error) {
	rows, err := d.call(ctx, proc, args...)
	if err != nil {
		return intdb.Row{}, err
	}
	row, err := intdb.First(rows, proc)
	if err != nil {
		return intdb.Row{}, domain.EmptyResultError{Procedure: proc, Msg: emptyMsg}
	}
	return row, nil
}

// createdID reads the id column of a create procedure's first row. A missing
// or non-numeric id is reported as a store failure with failMsg.
func (d Deps) createdID(ctx context.Context, proc, col, failMsg string, args ...any) (int64, error) {
	row, err := d.callFirst(ctx, proc, failMsg, args...)
	if err != nil {
		return 0, err
	}
	id, err := row.Int64(col)
	if err != nil {
		return 0, domain.StoreError{Procedure: proc, Msg: failMsg, Err: err}
	}
	return id, nil
}

func (d Deps) emit(ctx context.Context, eventType string, data map[string]any) {
	events.Emit(ctx, d.Events, events.New(eventType, d.RequestID, data))
}
