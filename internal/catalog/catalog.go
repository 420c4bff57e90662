// Package catalog holds the mutable list of events and their remaining
// capacity counters.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

// ErrNotFound is returned when no event matches the requested id.
var ErrNotFound = errors.New("event not found")

// ErrFullyBooked is returned when an event has no remaining capacity.
var ErrFullyBooked = errors.New("event is fully booked")

// Catalog is the in-memory event list. It is not safe for concurrent use;
// the owner serialises access.
type Catalog struct {
	events []model.Event
}

// New returns a catalog holding a copy of events, in the given order.
func New(events []model.Event) *Catalog {
	return &Catalog{events: slices.Clone(events)}
}

// Seeded returns a catalog initialised from DefaultEvents.
func Seeded() *Catalog {
	return &Catalog{events: DefaultEvents()}
}

// Events returns a copy of the events in catalog order.
func (c *Catalog) Events() []model.Event {
	return slices.Clone(c.events)
}

// Len returns the number of events.
func (c *Catalog) Len() int {
	return len(c.events)
}

// FindByID returns the event with the given id.
func (c *Catalog) FindByID(id int) (model.Event, bool) {
	i := c.index(id)
	if i < 0 {
		return model.Event{}, false
	}
	return c.events[i], true
}

// DecrementSlots takes one seat from the event. The check and the decrement
// happen against the stored event, never a caller-held copy, so a second call
// always observes the first one's result.
func (c *Catalog) DecrementSlots(id int) (model.Event, error) {
	i := c.index(id)
	if i < 0 {
		return model.Event{}, fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	if c.events[i].RemainingSlots <= 0 {
		return c.events[i], fmt.Errorf("event %d: %w", id, ErrFullyBooked)
	}
	c.events[i].RemainingSlots--
	return c.events[i], nil
}

// Categories returns the distinct non-empty categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range c.events {
		if e.Category == "" {
			continue
		}
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}

func (c *Catalog) index(id int) int {
	return slices.IndexFunc(c.events, func(e model.Event) bool { return e.ID == id })
}
