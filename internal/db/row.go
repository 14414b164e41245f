package db

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is one result record. Columns keep the order the store returned them in,
// which is also the order they are serialised in.
type Row struct {
	cols []string
	vals map[string]any
}

// NewRow builds a row from parallel column/value slices. Later duplicates of a
// column name overwrite earlier ones but keep the first position.
func NewRow(cols []string, vals []any) Row {
	r := Row{cols: make([]string, 0, len(cols)), vals: make(map[string]any, len(cols))}
	for i, c := range cols {
		var v any
		if i < len(vals) {
			v = vals[i]
		}
		r.set(c, v)
	}
	return r
}

func (r *Row) set(col string, v any) {
	if r.vals == nil {
		r.vals = map[string]any{}
	}
	if _, ok := r.vals[col]; !ok {
		r.cols = append(r.cols, col)
	}
	r.vals[col] = v
}

func (r Row) Columns() []string {
	out := make([]string, len(r.cols))
	copy(out, r.cols)
	return out
}

func (r Row) Get(col string) (any, bool) {
	v, ok := r.vals[col]
	return v, ok
}

// Int64 reads an integer column, accepting the shapes the MySQL driver produces
// for INT, BIGINT, DECIMAL and text columns.
func (r Row) Int64(col string) (int64, error) {
	v, ok := r.vals[col]
	if !ok {
		return 0, fmt.Errorf("column %q missing", col)
	}
	switch t := v.(type) {
	case int64:
		return t, nil
	case int32:
		return int64(t), nil
	case int:
		return int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, fmt.Errorf("column %q overflows int64", col)
		}
		return int64(t), nil
	case float64:
		return integral(col, t)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(strings.TrimSpace(t), 64)
			if ferr != nil {
				return 0, fmt.Errorf("column %q: %w", col, err)
			}
			return integral(col, f)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("column %q is null", col)
	default:
		return 0, fmt.Errorf("column %q has unsupported type %T", col, v)
	}
}

// integral accepts 4 or "4.00" but refuses 3.7 rather than truncating it.
func integral(col string, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("column %q: %v is not an integer", col, f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("column %q overflows int64", col)
	}
	return int64(f), nil
}

// Float64 reads a numeric column. DECIMAL arrives from the driver as text.
func (r Row) Float64(col string) (float64, error) {
	v, ok := r.vals[col]
	if !ok {
		return 0, fmt.Errorf("column %q missing", col)
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", col, err)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("column %q is null", col)
	default:
		return 0, fmt.Errorf("column %q has unsupported type %T", col, v)
	}
}

// String renders a column for display; NULL becomes "".
func (r Row) String(col string) string {
	v, ok := r.vals[col]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.vals[c])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
