package types

import (
	"errors"
	"fmt"
)

// ErrUnsupportedReportType is returned for report types outside
// xlsx, csv, json and pdf.
var ErrUnsupportedReportType = errors.New("unsupported report type. Valid types are: xlsx, csv, json, pdf")

// NotFoundError indicates that an input file is missing or unreadable.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file '%s' not found or unreadable: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError indicates a malformed amount field or a structurally invalid
// record. Row is 1-based; 0 means the row is unknown.
type ParseError struct {
	Value string
	Row   int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: cannot parse amount '%s': %v", e.Row, e.Value, e.Err)
	}
	return fmt.Sprintf("cannot parse amount '%s': %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DateFormatError indicates a date field that does not match YYYYMMDD.
type DateFormatError struct {
	Value string
	Row   int
	Err   error
}

func (e *DateFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: date '%s' does not match YYYYMMDD: %v", e.Row, e.Value, e.Err)
	}
	return fmt.Sprintf("date '%s' does not match YYYYMMDD: %v", e.Value, e.Err)
}

func (e *DateFormatError) Unwrap() error {
	return e.Err
}
