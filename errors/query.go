package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a query failure category.
type ErrorCode string

const (
	// ErrNoSuchChild indicates a tag lookup matched no child element.
	ErrNoSuchChild ErrorCode = "query-no-such-child"
	// ErrIndexOutOfRange indicates a positional key outside the sequence bounds.
	ErrIndexOutOfRange ErrorCode = "query-index-out-of-range"
	// ErrInvalidAttributePath indicates a malformed or unsupported attribute path.
	ErrInvalidAttributePath ErrorCode = "query-invalid-attribute-path"
	// ErrTypeMismatch indicates a key applied to a result shape it cannot operate on.
	ErrTypeMismatch ErrorCode = "query-type-mismatch"
	// ErrAttemptsExhausted indicates every registered attempt candidate failed.
	ErrAttemptsExhausted ErrorCode = "query-attempts-exhausted"
	// ErrAttemptConsumed indicates a resolved attempt handle was used again.
	ErrAttemptConsumed ErrorCode = "query-attempt-consumed"
)

// Query describes a failed query with an error code and optional step
// context. Step is the 1-based ordinal of the failing key within its
// chain, or zero for a standalone key.
//
//nolint:errname // public API name uses the query domain term.
type Query struct {
	Code    ErrorCode
	Message string
	Step    int
	Err     error
}

// Error formats the query failure for display, including code and step context.
func (q *Query) Error() string {
	if q == nil {
		return "query <nil>"
	}
	msg := fmt.Sprintf("[%s] %s", q.Code, q.Message)
	if q.Step > 0 {
		msg += fmt.Sprintf(" (step %d)", q.Step)
	}
	return msg
}

// Unwrap exposes the underlying failure, if any. Aggregate failures from
// exhausted attempts join every candidate's reason here.
func (q *Query) Unwrap() error {
	if q == nil {
		return nil
	}
	return q.Err
}

// New formats a message and builds a Query failure.
func New(code ErrorCode, format string, args ...any) *Query {
	return &Query{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsQuery extracts a query failure from an error returned by query helpers.
func AsQuery(err error) (*Query, bool) {
	if err == nil {
		return nil, false
	}
	var q *Query
	if errors.As(err, &q) && q != nil {
		return q, true
	}
	return nil, false
}

// HasCode reports whether err carries a query failure with the given code.
func HasCode(err error, code ErrorCode) bool {
	q, ok := AsQuery(err)
	return ok && q.Code == code
}
