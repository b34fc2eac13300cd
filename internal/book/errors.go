package book

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("book not found")

// ErrInvalidArgument is returned when a caller-supplied argument is
// structurally invalid (non-positive count, blank search keyword).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrEmptyCollection is returned when an operation that needs at least
// one record runs against an empty collection.
var ErrEmptyCollection = errors.New("collection is empty")

// DataFormatError reports a dataset that could not be loaded: missing
// file, invalid JSON, or a document without the required shape. It is
// fatal at startup.
type DataFormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataFormatError) Error() string {
	where := e.Path
	if where == "" {
		where = "dataset"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, e.Reason)
}

func (e *DataFormatError) Unwrap() error { return e.Err }
