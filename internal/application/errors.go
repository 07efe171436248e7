package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrOutOfRange       = errors.New("out of range")
	ErrAlreadyCompleted = errors.New("already completed")
	ErrImport           = errors.New("import failed")
	ErrPersistence      = errors.New("persistence failed")
	ErrNoSession        = errors.New("no notes session")
	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// OutOfRangeError is returned when a coordinate does not resolve to a topic.
// Item is -1 when only the section was addressed.
type OutOfRangeError struct {
	Section int
	Item    int
}

func (e *OutOfRangeError) Error() string {
	if e.Item < 0 {
		return fmt.Sprintf("section %d does not exist", e.Section)
	}
	return fmt.Sprintf("topic %d.%d does not exist", e.Section, e.Item)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// AlreadyCompletedError is returned when a timer is started on a completed topic
type AlreadyCompletedError struct {
	Title string
}

func (e *AlreadyCompletedError) Error() string {
	return fmt.Sprintf("%q is already completed", e.Title)
}

func (e *AlreadyCompletedError) Is(target error) bool {
	return target == ErrAlreadyCompleted
}

// ImportError represents an import document that could not be accepted
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import failed: %s", e.Reason)
}

func (e *ImportError) Is(target error) bool {
	return target == ErrImport
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// PersistenceError represents a failed read or write of the stored catalog
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
