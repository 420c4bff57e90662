// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the booking service.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/render"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/repository"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/service"
)

// EventHandler holds all HTTP handlers for the booking dashboard API.
type EventHandler struct {
	svc *service.BookingService
	now func() time.Time
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.BookingService) *EventHandler {
	return &EventHandler{svc: svc, now: time.Now}
}

// Routes mounts every endpoint on r.
func (h *EventHandler) Routes(r chi.Router) {
	r.Get("/health", HealthCheck)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Get("/options", h.EventOptions)
		r.Get("/categories", h.Categories)
		r.Get("/{id}", h.GetEvent)
		r.Post("/{id}/register", h.RegisterRow)
	})
	r.Route("/registrations", func(r chi.Router) {
		r.Post("/", h.RegisterForm)
		r.Get("/count", h.BookingCount)
		r.Get("/export.csv", h.ExportCSV)
	})
	r.Get("/print", h.PrintView)
	r.Post("/admin/reset", h.Reset)
	r.Get("/theme", h.GetTheme)
	r.Put("/theme", h.SetTheme)
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func eventID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// writeServiceError maps core errors to status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, model.ErrorResponse{
			Error:  "registration is invalid",
			Fields: verr.Fields,
		})
	case errors.Is(err, service.ErrUnknownEvent):
		writeError(w, http.StatusNotFound, "event not found")
	case errors.Is(err, service.ErrFullyBooked):
		writeError(w, http.StatusConflict, "event is fully booked")
	case errors.Is(err, repository.ErrPersistenceUnavailable):
		writeError(w, http.StatusServiceUnavailable, "storage is unavailable, nothing was changed")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListEvents handles GET /events?q=&category=&page=
// Returns the requested page of the filtered catalog, clamped to range.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := 1
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		page = n
	}

	writeJSON(w, http.StatusOK, h.svc.GetPage(r.Context(), q.Get("q"), q["category"], page))
}

// EventOptions handles GET /events/options
// Returns the registration dropdown entries.
func (h *EventHandler) EventOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.EventOptions())
}

// Categories handles GET /events/categories
func (h *EventHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats := h.svc.Categories()
	if cats == nil {
		cats = []string{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// GetEvent handles GET /events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	event, err := h.svc.Event(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// RegisterRow handles POST /events/{id}/register
// Reserves one seat without recording a named booking.
func (h *EventHandler) RegisterRow(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	event, err := h.svc.RegisterRow(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFullyBooked) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"error":   "event is fully booked",
				"message": render.RowFull(event.Name),
				"event":   event,
			})
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": render.RowReserved(event.Name),
		"event":   event,
	})
}

// RegisterForm handles POST /registrations
// Validates name, student id and event, then records the booking.
func (h *EventHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.svc.RegisterForm(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      render.FormRegistered(res.Event.Name),
		"confirmation": render.FormConfirmation(res.Booking.Name, res.Booking.StudentID, res.Event.Name),
		"event":        res.Event,
		"booking":      res.Booking,
	})
}

// BookingCount handles GET /registrations/count
func (h *EventHandler) BookingCount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"count": h.svc.BookingCount()})
}

// ExportCSV handles GET /registrations/export.csv
func (h *EventHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.ExportLedgerRows()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+render.ExportFilename(h.now())+`"`)
	w.WriteHeader(http.StatusOK)
	_ = render.WriteLedgerCSV(w, rows)
}

// PrintView handles GET /print
// Returns the ledger as a printable plain-text table.
func (h *EventHandler) PrintView(w http.ResponseWriter, r *http.Request) {
	theme, _ := h.svc.Theme(r.Context())
	out := render.PrintView(h.svc.ExportLedgerRows(), render.PaletteFor(theme), h.now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

// Reset handles POST /admin/reset
// Confirmation is the client's job; this endpoint resets unconditionally.
func (h *EventHandler) Reset(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ResetToDefaults(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  render.ResetDone,
		"events":   res.Events,
		"bookings": res.Bookings,
	})
}

type themePayload struct {
	Theme model.Theme `json:"theme"`
}

// GetTheme handles GET /theme
func (h *EventHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.Theme(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, themePayload{Theme: theme})
}

// SetTheme handles PUT /theme
func (h *EventHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themePayload
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !req.Theme.Valid() {
		writeError(w, http.StatusBadRequest, "theme must be light or dark")
		return
	}
	if err := h.svc.SetTheme(r.Context(), req.Theme); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
