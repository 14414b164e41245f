package db

import (
	"errors"
	"strings"

	"hrgsms-backend/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// NullIfEmpty sends optional strings as SQL NULL rather than "".
func NullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// NullableString dereferences an optional string, mapping nil and blank to NULL.
func NullableString(s *string) any {
	if s == nil {
		return nil
	}
	return NullIfEmpty(*s)
}

// NullableInt64 dereferences an optional integer, mapping nil to NULL.
func NullableInt64(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}

func storeError(procedure string, err error) error {
	return domain.StoreError{Procedure: procedure, Msg: storeMessage(err), Err: err}
}

// storeMessage extracts the text a procedure passed to SIGNAL, so callers see
// "Room not available" rather than the driver's "Error 1644 (45000): ..." form.
func storeMessage(err error) string {
	var me *mysql.MySQLError
	if errors.As(err, &me) && strings.TrimSpace(me.Message) != "" {
		return me.Message
	}
	return err.Error()
}
