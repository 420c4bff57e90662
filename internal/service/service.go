// Package service owns the dashboard's application state: the event catalog
// and the booking ledger. Every mutation goes through BookingService, which
// validates, mutates, persists and only then returns, so a caller always
// renders state that is already saved.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/catalog"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/ledger"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/repository"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/view"
)

// PageSize is the number of events shown per page.
const PageSize = 6

// BookingService is the single owner of the catalog and ledger. The mutex
// gives it a single-writer discipline when hosted by the HTTP server; each
// method runs to completion before the next one starts.
type BookingService struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	ledger  *ledger.Ledger

	state  *repository.StateRepository
	themes *repository.ThemeRepository

	validate *validator.Validate
	log      logrus.FieldLogger
	tracer   trace.Tracer
	now      func() time.Time
	newID    func() string
}

// Option customises a BookingService.
type Option func(*BookingService)

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *BookingService) { s.log = log }
}

// WithTracer sets the tracer used for spans around each operation.
func WithTracer(t trace.Tracer) Option {
	return func(s *BookingService) { s.tracer = t }
}

// WithClock sets the time source used for booking timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *BookingService) { s.now = now }
}

// WithIDGenerator sets the booking id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *BookingService) { s.newID = newID }
}

// New constructs a BookingService. Call Initialize before use.
func New(state *repository.StateRepository, themes *repository.ThemeRepository, opts ...Option) *BookingService {
	s := &BookingService{
		catalog:  catalog.New(nil),
		ledger:   ledger.New(nil),
		state:    state,
		themes:   themes,
		validate: newValidator(),
		log:      logrus.StandardLogger(),
		tracer:   noop.NewTracerProvider().Tracer("service"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize restores the catalog and ledger from storage, seeding whatever
// is missing or unreadable, and saves the result. Storage problems are logged
// and never fail initialisation.
func (s *BookingService) Initialize(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "service.Initialize")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	events, found, err := s.state.LoadCatalog(ctx)
	if err != nil {
		s.log.WithError(err).Warn("stored catalog unreadable, seeding defaults")
	}
	if found {
		s.catalog = catalog.New(events)
	} else {
		s.catalog = catalog.Seeded()
	}

	bookings, bookingsFound, err := s.state.LoadLedger(ctx)
	if err != nil {
		s.log.WithError(err).Warn("stored ledger unreadable, starting empty")
	}
	s.ledger = ledger.New(bookings)

	s.log.WithFields(logrus.Fields{
		"catalog_restored": found,
		"ledger_restored":  bookingsFound,
		"events":           s.catalog.Len(),
		"bookings":         s.ledger.Count(),
	}).Info("state initialized")
	span.SetAttributes(attribute.Bool("catalog.restored", found), attribute.Bool("ledger.restored", bookingsFound))

	if err := s.persist(ctx); err != nil {
		s.log.WithError(err).Warn("initial save failed")
	}
}

// GetPage filters the catalog by query and categories, clamps page to the
// filtered page range and returns that page.
func (s *BookingService) GetPage(ctx context.Context, query string, categories []string, page int) model.Page {
	_, span := s.tracer.Start(ctx, "service.GetPage")
	defer span.End()

	s.mu.Lock()
	events := s.catalog.Events()
	s.mu.Unlock()

	filtered := view.Filter(events, query, categories)
	total := view.TotalPages(len(filtered), PageSize)
	current := view.Clamp(page, total)
	items := view.Slice(filtered, current, PageSize)
	if items == nil {
		items = []model.Event{}
	}

	span.SetAttributes(attribute.Int("page", current), attribute.Int("filtered", len(filtered)))
	return model.Page{
		Items:       items,
		CurrentPage: current,
		TotalPages:  total,
		TotalItems:  len(filtered),
		PageSize:    PageSize,
	}
}

// Event returns one event by id.
func (s *BookingService) Event(id int) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.catalog.FindByID(id)
	if !ok {
		return model.Event{}, fmt.Errorf("event %d: %w", id, ErrUnknownEvent)
	}
	return e, nil
}

// Events returns the whole catalog in catalog order.
func (s *BookingService) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Events()
}

// EventOptions returns the registration dropdown: every event, flagged when full.
func (s *BookingService) EventOptions() []model.EventOption {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.catalog.Events()
	opts := make([]model.EventOption, len(events))
	for i, e := range events {
		opts[i] = model.EventOption{ID: e.ID, Name: e.Name, Full: e.IsFull()}
	}
	return opts
}

// Categories returns the catalog's distinct categories.
func (s *BookingService) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Categories()
}

// RegisterRow is the quick, anonymous RSVP: it takes one seat and persists,
// but records no booking because no identity is captured. On ErrFullyBooked
// the returned event carries the current (zero) capacity.
func (s *BookingService) RegisterRow(ctx context.Context, eventID int) (model.Event, error) {
	ctx, span := s.tracer.Start(ctx, "service.RegisterRow",
		trace.WithAttributes(attribute.Int("event.id", eventID)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.catalog.Events()
	updated, err := s.catalog.DecrementSlots(eventID)
	if err != nil {
		s.log.WithError(err).WithField("event_id", eventID).Debug("row registration rejected")
		recordError(span, err)
		if errors.Is(err, ErrFullyBooked) {
			return updated, err
		}
		return model.Event{}, err
	}

	if err := s.persist(ctx); err != nil {
		s.catalog = catalog.New(before)
		s.log.WithError(err).WithField("event_id", eventID).Error("row registration rolled back")
		recordError(span, err)
		return model.Event{}, err
	}

	s.log.WithFields(logrus.Fields{
		"event_id":        updated.ID,
		"remaining_slots": updated.RemainingSlots,
	}).Info("seat reserved")
	return updated, nil
}

// RegisterForm validates the form, then takes one seat, appends a booking and
// persists. Every check runs before any mutation; on failure nothing changes
// and the *ValidationError lists each failing field.
func (s *BookingService) RegisterForm(ctx context.Context, req model.RegisterFormRequest) (model.RegisterFormResult, error) {
	ctx, span := s.tracer.Start(ctx, "service.RegisterForm")
	defer span.End()

	req = normalize(req)

	s.mu.Lock()
	defer s.mu.Unlock()

	verr := &ValidationError{}
	s.checkIdentity(req, verr)

	id, ok := parseEventRef(req.EventID)
	var target model.Event
	if ok {
		target, ok = s.catalog.FindByID(id)
	}
	switch {
	case !ok:
		verr.add(FieldEventID, MsgUnknownEvent, ErrUnknownEvent)
	case target.IsFull():
		verr.add(FieldEventID, MsgEventFullPick, ErrFullyBooked)
	}

	if !verr.empty() {
		s.log.WithField("fields", verr.Fields).Debug("form registration rejected")
		recordError(span, verr)
		return model.RegisterFormResult{}, verr
	}
	span.SetAttributes(attribute.Int("event.id", id))

	beforeEvents := s.catalog.Events()
	beforeBookings := s.ledger.All()

	updated, err := s.catalog.DecrementSlots(id)
	if err != nil {
		// Unreachable after the checks above while the lock is held.
		recordError(span, err)
		return model.RegisterFormResult{}, err
	}
	booking := model.Booking{
		ID:        s.newID(),
		Name:      req.Name,
		StudentID: req.StudentID,
		EventID:   updated.ID,
		Timestamp: s.now().UnixMilli(),
	}
	s.ledger.Append(booking)

	if err := s.persist(ctx); err != nil {
		s.catalog = catalog.New(beforeEvents)
		s.ledger = ledger.New(beforeBookings)
		s.log.WithError(err).WithField("event_id", id).Error("form registration rolled back")
		recordError(span, err)
		return model.RegisterFormResult{}, err
	}

	s.log.WithFields(logrus.Fields{
		"event_id":        updated.ID,
		"booking_id":      booking.ID,
		"remaining_slots": updated.RemainingSlots,
	}).Info("registration recorded")
	return model.RegisterFormResult{Event: updated, Booking: booking}, nil
}

// ResetToDefaults re-seeds the catalog, empties the ledger and saves the fresh
// state over the persisted one in a single write. It is the only way capacity
// comes back. On a failed save nothing changes, in memory or in the store.
func (s *BookingService) ResetToDefaults(ctx context.Context) (model.ResetResult, error) {
	ctx, span := s.tracer.Start(ctx, "service.ResetToDefaults")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := catalog.Seeded()
	if err := s.state.Save(ctx, fresh.Events(), []model.Booking{}); err != nil {
		s.log.WithError(err).Error("reset failed")
		recordError(span, err)
		return model.ResetResult{}, err
	}
	s.catalog = fresh
	s.ledger.Clear()

	s.log.Info("state reset to defaults")
	return model.ResetResult{Events: s.catalog.Events(), Bookings: []model.Booking{}}, nil
}

// BookingCount returns the number of ledger records.
func (s *BookingService) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Count()
}

// Bookings returns the ledger in insertion order.
func (s *BookingService) Bookings() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.All()
}

// ExportLedgerRows flattens every booking with its event's details.
func (s *BookingService) ExportLedgerRows() []model.LedgerRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := s.ledger.All()
	rows := make([]model.LedgerRow, len(bookings))
	for i, b := range bookings {
		row := model.LedgerRow{
			BookingID:    b.ID,
			Name:         b.Name,
			StudentID:    b.StudentID,
			EventID:      b.EventID,
			RegisteredAt: b.CreatedAt(),
		}
		if e, ok := s.catalog.FindByID(b.EventID); ok {
			row.EventName = e.Name
			row.EventDate = e.DateLabel
			row.Venue = e.Venue
		}
		rows[i] = row
	}
	return rows
}

// Theme returns the stored display theme.
func (s *BookingService) Theme(ctx context.Context) (model.Theme, error) {
	return s.themes.Get(ctx)
}

// SetTheme stores the display theme.
func (s *BookingService) SetTheme(ctx context.Context, theme model.Theme) error {
	if err := s.themes.Set(ctx, theme); err != nil {
		return err
	}
	s.log.WithField("theme", theme).Debug("theme changed")
	return nil
}

// persist saves the current catalog and ledger. Callers hold s.mu.
func (s *BookingService) persist(ctx context.Context) error {
	return s.state.Save(ctx, s.catalog.Events(), s.ledger.All())
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
