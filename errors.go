package pricebook

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoData is returned by queries on an empty store.
	ErrNoData = errors.New("no data")
	// ErrNotFound is returned when a queried item is not in the store.
	ErrNotFound = errors.New("not found")
	// ErrEmptyBatch is returned when an imported sheet holds no price row.
	ErrEmptyBatch = errors.New("nothing to import: the sheet has no price row")
	// ErrEmptyOrder is returned when saving an order without lines.
	ErrEmptyOrder = errors.New("the order has no line")
)

// SchemaError reports the required columns missing from an imported sheet.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// DateFormatError reports a date cell that cannot be read.
// Row is the sheet row number, the header being row 1.
type DateFormatError struct {
	Row   int
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("row %d: cannot read date %q", e.Row, e.Value)
}

func (e *DateFormatError) Unwrap() error { return e.Err }

// StoreError reports a failure to read or write a store.
type StoreError struct {
	Op   string // "read", "write", ...
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot %s store: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cannot %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
