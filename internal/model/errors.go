package model

import "fmt"

// DataError reports a malformed or schema-incompatible input table:
// a required column is absent or a row cannot be read. It is never
// retried; the offending table and column travel with it so the caller
// can name them.
type DataError struct {
	Table  string
	Column string
}

func (e *DataError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("data error: table %q is unreadable", e.Table)
	}
	return fmt.Sprintf("data error: table %q is missing required column %q", e.Table, e.Column)
}

// UpstreamError reports that the reference registry feed could not be
// fetched or parsed. The core never retries it; the caller decides on a
// fallback.
type UpstreamError struct {
	Source string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upstream %s unavailable", e.Source)
	}
	return fmt.Sprintf("upstream %s unavailable: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
