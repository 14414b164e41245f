package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hrgsms-backend/internal/domain"
)

// ErrUnknownProcedure is returned for a name missing from the registry.
var ErrUnknownProcedure = errors.New("unknown procedure")

// Querier is the subset of *sql.DB the gateway needs.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Caller runs stored procedures. Services depend on this rather than on *Gateway.
type Caller interface {
	Call(ctx context.Context, name string, args ...any) ([]Row, error)
}

// Gateway executes registered stored procedures against the relational store.
type Gateway struct {
	DB Querier
}

func NewGateway(q Querier) *Gateway {
	return &Gateway{DB: q}
}

// Call executes CALL name(args...) and returns the first result set. Any
// failure, including one raised by the procedure, is returned as a
// domain.StoreError. Zero rows yields an empty, non-nil slice.
func (g *Gateway) Call(ctx context.Context, name string, args ...any) ([]Row, error) {
	if !Registered(name) {
		return nil, domain.StoreError{Procedure: name, Msg: fmt.Sprintf("unknown procedure %s", name), Err: ErrUnknownProcedure}
	}
	if g == nil || g.DB == nil {
		return nil, domain.StoreError{Procedure: name, Msg: "database not connected"}
	}

	rows, err := g.DB.QueryContext(ctx, callStatement(name, len(args)), args...)
	if err != nil {
		return nil, storeError(name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, storeError(name, err)
	}

	out := make([]Row, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, storeError(name, err)
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		out = append(out, NewRow(cols, vals))
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(name, err)
	}
	return out, nil
}

// First returns the first row, discarding the rest.
func First(rows []Row, procedure string) (Row, error) {
	if len(rows) == 0 {
		return Row{}, domain.EmptyResultError{Procedure: procedure}
	}
	return rows[0], nil
}

func callStatement(name string, n int) string {
	if n == 0 {
		return "CALL " + name + "()"
	}
	return "CALL " + name + "(" + strings.TrimSuffix(strings.Repeat("?, ", n), ", ") + ")"
}
