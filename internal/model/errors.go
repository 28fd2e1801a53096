package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("model: validation failed")
	ErrInvalidStatus = errors.New("model: invalid task status")
	ErrUnknownField  = errors.New("model: unknown task field")
	ErrMissingID     = errors.New("model: task id is required")
)

type Reason string

const (
	ReasonRequired Reason = "required"
	ReasonInvalid  Reason = "invalid"
)

// ValidationError names the field that failed a creation or edit check.
type ValidationError struct {
	Field  Field
	Reason Reason
}

func (e *ValidationError) Error() string {
	if e.Reason == ReasonInvalid {
		return fmt.Sprintf("model: task %s is invalid", e.Field)
	}
	return fmt.Sprintf("model: task %s is required", e.Field)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
