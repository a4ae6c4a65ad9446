// Package errors provides the structured error type shared by every layer.
// Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"maps"
	"net/http"
)

// ErrorCode classifies a failure. Values are part of the wire format:
// append only, never renumber
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	// ErrorCodeUnavailable is an upstream that could not be reached or answered non 2xx
	ErrorCodeUnavailable
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is a request body that failed struct validation
	ErrorCodeValidation
	ErrorCodeJSON
	ErrorCodeNotFound
	ErrorCodeConflict
	ErrorCodeDB
	// ErrorCodeInvalidFormat is a quarter that does not read as YYYYKQ
	ErrorCodeInvalidFormat
	// ErrorCodeOutOfRange is a year before the first published quarter
	ErrorCodeOutOfRange
	// ErrorCodeFutureDate is a quarter that has not started yet
	ErrorCodeFutureDate
	// ErrorCodeRangeOrder is a range whose end is not after its start
	ErrorCodeRangeOrder
	// ErrorCodeMalformedResponse is an upstream payload with the wrong shape
	ErrorCodeMalformedResponse
	// ErrorCodePersistenceUnavailable is a history storage failure
	ErrorCodePersistenceUnavailable
)

type kind struct {
	name   string
	status int
}

var kinds = [...]kind{
	ErrorCodeUnknown:                {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:                  {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:            {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeInvalidArgument:        {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:             {"validation", http.StatusBadRequest},
	ErrorCodeJSON:                   {"json", http.StatusBadRequest},
	ErrorCodeNotFound:               {"not_found", http.StatusNotFound},
	ErrorCodeConflict:               {"conflict", http.StatusConflict},
	ErrorCodeDB:                     {"db", http.StatusInternalServerError},
	ErrorCodeInvalidFormat:          {"invalid_format", http.StatusBadRequest},
	ErrorCodeOutOfRange:             {"out_of_range", http.StatusUnprocessableEntity},
	ErrorCodeFutureDate:             {"future_date", http.StatusUnprocessableEntity},
	ErrorCodeRangeOrder:             {"range_order", http.StatusUnprocessableEntity},
	ErrorCodeMalformedResponse:      {"malformed_response", http.StatusBadGateway},
	ErrorCodePersistenceUnavailable: {"persistence_unavailable", http.StatusServiceUnavailable},
}

// String returns the snake_case kind name
func (c ErrorCode) String() string {
	if int(c) < len(kinds) {
		return kinds[c].name
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode maps a code to its response status; unknown codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if int(c) < len(kinds) {
		return kinds[c].status
	}
	return http.StatusInternalServerError
}

// Error carries a machine code, a human message, the offending input field
// and string details such as the rejected value or the violated bound
type Error struct {
	code  ErrorCode
	msg   string
	field string
	meta  map[string]string
	cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// Field returns the offending input field, "" when none
func (e *Error) Field() string { return e.field }

// Meta returns one detail value, "" when unset
func (e *Error) Meta(key string) string { return e.meta[key] }

// Wire is the JSON form of an error inside a response envelope
type Wire struct {
	Code    ErrorCode         `json:"code"`
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Field   string            `json:"field,omitempty"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// WireFrom converts any error to its wire form. Foreign errors become
// unknown with their text as the message; nil is the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	e, ok := As(err)
	if !ok {
		return Wire{Code: ErrorCodeUnknown, Kind: ErrorCodeUnknown.String(), Message: err.Error()}
	}
	return Wire{
		Code:    e.code,
		Kind:    e.code.String(),
		Message: e.msg,
		Field:   e.field,
		Meta:    maps.Clone(e.meta),
	}
}

// As returns the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns err's code, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the response status for err
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// with applies mut to a copy of err's *Error. Foreign errors pass through
func with(err error, mut func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	mut(&c)
	return &c
}

// WithField returns a copy of err naming the offending input field
func WithField(err error, field string) error {
	return with(err, func(e *Error) { e.field = field })
}

// WithMeta returns a copy of err with one more detail
func WithMeta(err error, key, value string) error {
	return with(err, func(e *Error) {
		e.meta = maps.Clone(e.meta)
		if e.meta == nil {
			e.meta = make(map[string]string, 1)
		}
		e.meta[key] = value
	})
}

// New returns an *Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a format
func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap returns an *Error with code and msg around cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// JSONErrf returns a request decoding error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns the error reported for a recovered panic
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef returns an upstream unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// MalformedResponsef returns an upstream shape error
func MalformedResponsef(format string, a ...any) error {
	return Newf(ErrorCodeMalformedResponse, format, a...)
}
