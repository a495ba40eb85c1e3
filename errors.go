package main

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrDegenerateGeometry   = errors.New("degenerate geometry")
)

// StarError wraps a sentinel with the operation that failed and what it
// was looking at.
type StarError struct {
	Op     string
	Detail string
	Err    error
}

func (e *StarError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Op
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	if e.Detail != "" {
		base += fmt.Sprintf(" (%s)", e.Detail)
	}
	return base
}

func (e *StarError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalidf(op, format string, a ...interface{}) error {
	return &StarError{Op: op, Detail: fmt.Sprintf(format, a...), Err: ErrInvalidConfiguration}
}

func degeneratef(op, format string, a ...interface{}) error {
	return &StarError{Op: op, Detail: fmt.Sprintf(format, a...), Err: ErrDegenerateGeometry}
}
