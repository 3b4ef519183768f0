// Package report implements the merge, filter, and channel-aggregation
// pipeline behind a report run: performance rows from an uploaded workbook
// are joined against the reference registry on a normalized business key,
// narrowed by industry and region, grouped by channel, ranked, and
// paginated.
package report

import (
	"strconv"
	"strings"
)

// NormalizeKey coerces a join key to its canonical numeric form. Numeric
// values pass through, numeric strings are parsed (so "123", 123, and
// 123.0 all compare equal), and blank or non-numeric input reports false
// rather than an error. It must be applied to both sides of the join;
// thousands separators are not handled.
func NormalizeKey(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// NormalizeKeyPtr is NormalizeKey for callers that carry optional keys as
// pointers; it returns nil for input that does not normalize.
func NormalizeKeyPtr(value any) *float64 {
	f, ok := NormalizeKey(value)
	if !ok {
		return nil
	}
	return &f
}
