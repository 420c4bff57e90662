// Package repository implements the persistence gateway between the
// in-memory catalog/ledger and the durable key-value store.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/kvstore"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

// Storage keys. The theme preference lives under a separate prefix so that
// clearing core state never touches it.
const (
	KeyEvents   = "booking/events/v1"
	KeyBookings = "booking/bookings/v1"
	KeyTheme    = "prefs/theme"
)

// ErrPersistenceUnavailable is returned when the store cannot be read or
// written, or holds data that does not decode.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// StateRepository loads and saves the catalog and the ledger.
type StateRepository struct {
	store kvstore.Store
}

// NewStateRepository constructs a StateRepository.
func NewStateRepository(store kvstore.Store) *StateRepository {
	return &StateRepository{store: store}
}

// LoadCatalog returns the persisted events. A missing entry yields
// found=false with a nil error; an unreadable one yields found=false with an
// error wrapping ErrPersistenceUnavailable. Either way the caller seeds.
func (r *StateRepository) LoadCatalog(ctx context.Context) ([]model.Event, bool, error) {
	var events []model.Event
	found, err := r.load(ctx, KeyEvents, &events)
	if !found || err != nil {
		return nil, false, err
	}
	return events, true, nil
}

// LoadLedger returns the persisted bookings, with the same contract as
// LoadCatalog.
func (r *StateRepository) LoadLedger(ctx context.Context) ([]model.Booking, bool, error) {
	var bookings []model.Booking
	found, err := r.load(ctx, KeyBookings, &bookings)
	if !found || err != nil {
		return nil, false, err
	}
	return bookings, true, nil
}

// Save writes the catalog and ledger in a single store call.
func (r *StateRepository) Save(ctx context.Context, events []model.Event, bookings []model.Booking) error {
	if events == nil {
		events = []model.Event{}
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	eventsJSON, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	bookingsJSON, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}

	err = r.store.Put(ctx,
		kvstore.Entry{Key: KeyEvents, Value: eventsJSON},
		kvstore.Entry{Key: KeyBookings, Value: bookingsJSON},
	)
	if err != nil {
		return fmt.Errorf("%w: save state: %w", ErrPersistenceUnavailable, err)
	}
	return nil
}

func (r *StateRepository) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %w", ErrPersistenceUnavailable, key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: decode %s: %w", ErrPersistenceUnavailable, key, err)
	}
	return true, nil
}
