package shelf

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("ShelfError (code %s): %s", e.Code, e.Msg)
}

// Is matches any *Error with the same code, so callers can write
// errors.Is(err, shelf.ErrInvalidInput) without caring about the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError creates a new ShelfError with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// CodeOf returns the return code carried by err, or RetCSuccess if err is nil
// and RetCUnknown if it is not a shelf error.
func CodeOf(err error) RetCode {
	if err == nil {
		return RetCSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return RetCUnknown
}

// Sentinels for errors.Is
var (
	ErrInvalidInput         = NewError(RetCInvalidInput, "invalid input")
	ErrNoLibrariesAvailable = NewError(RetCNoLibrariesAvailable, "no libraries available")
	ErrIncompleteCatalog    = NewError(RetCIncompleteCatalog, "incomplete catalog")
)

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess              RetCode = iota // 0: Operation succeeded.
	RetCInvalidInput                        // 1: Empty or whitespace-only input where a value is required.
	RetCNoLibrariesAvailable                // 2: The reference library set is empty.
	RetCIncompleteCatalog                   // 3: A book is missing its category or library after initialization.
	RetCUnknown                             // 4: Any error not raised by this module.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInvalidInput:
		return "InvalidInput"
	case RetCNoLibrariesAvailable:
		return "NoLibrariesAvailable"
	case RetCIncompleteCatalog:
		return "IncompleteCatalog"
	default:
		return "Unknown"
	}
}
