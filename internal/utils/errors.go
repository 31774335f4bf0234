package util

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput           = errors.New("reference string is empty")
	ErrInvalidCapacity        = errors.New("frame capacity must be a positive integer")
	ErrUnknownPolicy          = errors.New("unknown replacement policy")
	ErrInvalidRecord          = errors.New("invalid simulation record")
	ErrNoLastRun              = errors.New("no last run stored")
	ErrUnsupportedCompression = errors.New("unsupported compression")
	ErrCorruptPayload         = errors.New("corrupt payload")
	ErrStoreNil               = errors.New("record store is nil")
	ErrInvalidEviction        = errors.New("invalid eviction")
)

// ValidationError reports a caller-correctable input rejected before a run starts
type ValidationError struct {
	Type  ErrorType
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s=%q: %v", e.Type, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error wrapping the sentinel for its type
func NewValidationError(errType ErrorType, field, value string) *ValidationError {
	var sentinel error
	switch errType {
	case ErrTypeInvalidInput:
		sentinel = ErrInvalidInput
	case ErrTypeInvalidCapacity:
		sentinel = ErrInvalidCapacity
	case ErrTypeUnknownPolicy:
		sentinel = ErrUnknownPolicy
	default:
		sentinel = ErrInvalidRecord
	}
	return &ValidationError{
		Type:  errType,
		Field: field,
		Value: value,
		Err:   sentinel,
	}
}
