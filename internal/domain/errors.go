package domain

import (
	"errors"
	"fmt"
)

// Sentinel data-layer conditions. Repositories translate driver errors into
// these so callers never match on database/sql internals.
var (
	ErrNotFound  = errors.New("record not found")
	ErrNonUnique = errors.New("multiple records found")
)

// DataError wraps any persistence failure (connectivity, not-found,
// non-unique result) with the repository operation that produced it.
type DataError struct {
	Op  string
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func NewDataError(op string, err error) *DataError {
	return &DataError{Op: op, Err: err}
}

// BusinessError is the only error kind that crosses into the HTTP layer.
// Services catch every data-layer error at their boundary and rewrap it with
// call-site context; handlers map the chain onto status codes.
type BusinessError struct {
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(message string, err error) *BusinessError {
	return &BusinessError{Message: message, Err: err}
}
