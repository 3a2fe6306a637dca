package main

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedReading = errors.New("malformed sensor reading")
	ErrRowOutOfBounds   = errors.New("row out of bounds")
	ErrEmptyDomain      = errors.New("empty domain")
	ErrNoGap            = errors.New("no uncovered position")
	ErrAmbiguousGap     = errors.New("more than one uncovered position")
	ErrNegativeCount    = errors.New("negative coverage count")
)

// ParseError identifies the input line that could not be read as a sensor.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvariantViolation means the input does not have the shape the scan
// relies on, as opposed to being malformed.
type InvariantViolation struct {
	Op     string
	Detail string
	Err    error
}

func (e *InvariantViolation) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *InvariantViolation) Unwrap() error {
	return e.Err
}

func _violation(op string, err error, format string, a ...interface{}) error {
	return &InvariantViolation{Op: op, Detail: fmt.Sprintf(format, a...), Err: err}
}
