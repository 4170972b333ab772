package simulation

import (
	"errors"
	"fmt"
)

// ErrorCode classifies simulation failures.
type ErrorCode int

const (
	ErrCodeNone ErrorCode = iota
	// Config rejected before any allocation
	ErrCodeInvalidConfig
	// Shared table or lock could not be created
	ErrCodeResourceAllocation
	// Operation not allowed in the current lifecycle state
	ErrCodeInvalidState
	// A worker stopped before finishing its rounds
	ErrCodeWorkerFailed
)

var (
	ErrInvalidConfig      = errors.New("invalid config")
	ErrResourceAllocation = errors.New("resource allocation failed")
	ErrInvalidState       = errors.New("invalid simulation state")
	ErrWorkerFailed       = errors.New("worker failed")
)

func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidConfig:
		return ErrInvalidConfig
	case ErrCodeResourceAllocation:
		return ErrResourceAllocation
	case ErrCodeInvalidState:
		return ErrInvalidState
	case ErrCodeWorkerFailed:
		return ErrWorkerFailed
	}
	return nil
}

// Error is returned by every failing Simulator operation.
type Error struct {
	Code ErrorCode
	Op   string
	Err  error
}

func newError(code ErrorCode, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("simulation %s: %s: %v", e.Op, e.Code.sentinel(), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Code, so errors.Is(err, ErrResourceAllocation) works.
func (e *Error) Is(target error) bool {
	s := e.Code.sentinel()
	return s != nil && s == target
}
