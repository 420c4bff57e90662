// Package ledger keeps the ordered list of booking records.
package ledger

import (
	"slices"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

// Ledger is an insertion-ordered list of bookings. It performs no validation;
// callers validate before appending. Not safe for concurrent use.
type Ledger struct {
	bookings []model.Booking
}

// New returns a ledger holding a copy of bookings.
func New(bookings []model.Booking) *Ledger {
	return &Ledger{bookings: slices.Clone(bookings)}
}

// Append adds a record at the end.
func (l *Ledger) Append(b model.Booking) {
	l.bookings = append(l.bookings, b)
}

// Count returns the number of records.
func (l *Ledger) Count() int {
	return len(l.bookings)
}

// All returns a copy of the records in insertion order.
func (l *Ledger) All() []model.Booking {
	return slices.Clone(l.bookings)
}

// Clear removes every record.
func (l *Ledger) Clear() {
	l.bookings = nil
}
