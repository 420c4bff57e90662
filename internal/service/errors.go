package service

import (
	"errors"
	"strings"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/catalog"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

var (
	// ErrInvalidName is returned when the trimmed name is shorter than two characters.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidID is returned when the student id is not exactly six digits.
	ErrInvalidID = errors.New("invalid student id")
	// ErrUnknownEvent is returned when no event has the requested id.
	ErrUnknownEvent = catalog.ErrNotFound
	// ErrFullyBooked is returned when the event has no remaining capacity.
	ErrFullyBooked = catalog.ErrFullyBooked
)

// Field names reported in FieldError.
const (
	FieldName      = "name"
	FieldStudentID = "student_id"
	FieldEventID   = "event_id"
)

// Per-field messages shown next to the form inputs.
const (
	MsgInvalidName   = "Please enter your full name."
	MsgInvalidID     = "Student ID must be exactly six digits (e.g., 670797)."
	MsgUnknownEvent  = "Please choose an event."
	MsgEventFullPick = "Selected event is fully booked. Pick another."
)

// ValidationError reports every field that failed the registration gate.
// errors.Is matches each field's sentinel.
type ValidationError struct {
	Fields []model.FieldError
	errs   []error
}

func (e *ValidationError) add(field, msg string, err error) {
	e.Fields = append(e.Fields, model.FieldError{Field: field, Message: msg})
	e.errs = append(e.errs, err)
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.errs
}

// Message returns the message for field, or "" if the field passed.
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}
