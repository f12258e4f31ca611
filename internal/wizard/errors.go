package wizard

import (
	"errors"
	"strings"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnknownField = errors.New("unknown field")
	ErrNotTextField = errors.New("field cannot be set from text")
	ErrNotFinalStep = errors.New("tournament can only be submitted from the last step")
)

type Reason string

const (
	ReasonRequired   Reason = "required"
	ReasonNotOffered Reason = "not offered for the selected game"
	ReasonUnknown    Reason = "not in the catalog"
	ReasonInvalid    Reason = "invalid value"
)

type FieldError struct {
	Field  Field  `json:"field"`
	Reason Reason `json:"reason"`
}

func (e FieldError) Error() string {
	return string(e.Field) + ": " + string(e.Reason)
}

// ValidationError is returned when a transition or an edit is refused
// because of the draft's content. The wizard stays where it was.
type ValidationError struct {
	Step   Step
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return e.Step.String() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap exposes each field problem so errors.Join style consumers can
// list them individually.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, f := range e.Fields {
		errs = append(errs, f)
	}
	return errs
}

// MissingFields lists the fields that failed for being empty.
func (e *ValidationError) MissingFields() []Field {
	var fields []Field
	for _, f := range e.Fields {
		if f.Reason == ReasonRequired {
			fields = append(fields, f.Field)
		}
	}
	return fields
}
