package timecodec

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError via errors.Is.
	ErrFormat = errors.New("timecodec: invalid format")
	// ErrUnknownVariant is returned by New and ParseVariant.
	ErrUnknownVariant = errors.New("timecodec: unknown variant")
	// ErrNotString is the cause of a FormatError raised for a non-string token.
	ErrNotString = errors.New("value is not a string")
)

// FormatError reports text that could not be parsed into a date/time value.
type FormatError struct {
	Kind  Kind
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("timecodec: cannot parse %q as %s", e.Input, e.Kind)
	}
	return fmt.Sprintf("timecodec: cannot parse %q as %s: %v", e.Input, e.Kind, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// RangeError is returned when encoding a value that has no ISO-8601 form,
// e.g. Date{Month: 13} or a year past 9999.
type RangeError struct {
	Kind  Kind
	Value any
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("timecodec: %s %+v out of range", e.Kind, e.Value)
}
