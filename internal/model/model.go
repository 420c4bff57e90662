// Package model defines the core domain types for the event booking dashboard.
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event represents a bookable event in the catalog.
// RemainingSlots is the only field that changes after seeding.
type Event struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Venue          string `json:"venue"`
	DateLabel      string `json:"date_label"`
	DateISO        string `json:"date_iso"`
	Category       string `json:"category,omitempty"`
	RemainingSlots int    `json:"remaining_slots"`
	SourceURL      string `json:"source_url,omitempty"`
	Image          string `json:"image,omitempty"`
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.RemainingSlots <= 0
}

// Booking is a named registration produced by the form path.
type Booking struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	EventID   int    `json:"event_id"`
	Timestamp int64  `json:"ts"` // epoch milliseconds
}

// CreatedAt returns the booking timestamp as a time.Time in UTC.
func (b *Booking) CreatedAt() time.Time {
	return time.UnixMilli(b.Timestamp).UTC()
}

// LedgerRow is a booking flattened together with its event, for export.
type LedgerRow struct {
	BookingID    string    `json:"booking_id"`
	Name         string    `json:"name"`
	StudentID    string    `json:"student_id"`
	EventID      int       `json:"event_id"`
	EventName    string    `json:"event_name"`
	EventDate    string    `json:"event_date"`
	Venue        string    `json:"venue"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Page is one derived, paginated slice of the filtered catalog.
type Page struct {
	Items       []Event `json:"items"`
	CurrentPage int     `json:"current_page"`
	TotalPages  int     `json:"total_pages"`
	TotalItems  int     `json:"total_items"`
	PageSize    int     `json:"page_size"`
}

// EventOption is an entry of the registration form's event dropdown.
type EventOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Full bool   `json:"full"`
}

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// EventRef is an event id as picked in a form. It decodes from either a JSON
// number or a JSON string so that an empty or non-numeric choice surfaces as a
// field error instead of a decode failure.
type EventRef string

// UnmarshalJSON accepts 3, "3", "" and null.
func (r *EventRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = EventRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("event_id must be a number or a string")
	}
	*r = EventRef(n.String())
	return nil
}

// RegisterFormRequest is the payload for a full form registration.
type RegisterFormRequest struct {
	Name      string   `json:"name" validate:"required,min=2"`
	StudentID string   `json:"student_id" validate:"studentid"`
	EventID   EventRef `json:"event_id"`
}

// RegisterFormResult is returned after a successful form registration.
type RegisterFormResult struct {
	Event   Event   `json:"event"`
	Booking Booking `json:"booking"`
}

// ResetResult is the fresh state produced by a reset.
type ResetResult struct {
	Events   []Event   `json:"events"`
	Bookings []Booking `json:"bookings"`
}

// FieldError describes one failed form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}
