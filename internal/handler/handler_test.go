package handler

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/kvstore"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/render"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/repository"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/service"
)

var testNow = time.Date(2025, 6, 2, 8, 15, 0, 0, time.UTC)

func newServer(t *testing.T) (http.Handler, *service.BookingService) {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := kvstore.NewMemory()
	svc := service.New(
		repository.NewStateRepository(store),
		repository.NewThemeRepository(store),
		service.WithLogger(log),
		service.WithClock(func() time.Time { return testNow }),
	)
	svc.Initialize(context.Background())

	h := NewEventHandler(svc)
	h.now = func() time.Time { return testNow }
	return NewRouter(h, log), svc
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newServer(t)
	rec := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListEvents_Pagination(t *testing.T) {
	srv, _ := newServer(t)

	page := decode[model.Page](t, do(t, srv, http.MethodGet, "/events", ""))
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 6)

	page = decode[model.Page](t, do(t, srv, http.MethodGet, "/events?page=7", ""))
	assert.Equal(t, 2, page.CurrentPage)
	assert.Len(t, page.Items, 4)
}

func TestListEvents_SearchAndCategory(t *testing.T) {
	srv, _ := newServer(t)

	page := decode[model.Page](t, do(t, srv, http.MethodGet, "/events?q=summit", ""))
	require.Len(t, page.Items, 1)
	assert.Equal(t, 5, page.Items[0].ID)
	assert.Equal(t, 1, page.TotalPages)

	page = decode[model.Page](t, do(t, srv, http.MethodGet, "/events?category=career&category=workshop", ""))
	assert.Equal(t, 4, page.TotalItems)
}

func TestListEvents_BadPage(t *testing.T) {
	srv, _ := newServer(t)
	rec := do(t, srv, http.MethodGet, "/events?page=two", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEvent(t *testing.T) {
	srv, _ := newServer(t)

	rec := do(t, srv, http.MethodGet, "/events/6", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, decode[model.Event](t, rec).RemainingSlots)

	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/events/99", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/events/abc", "").Code)
}

func TestRegisterRow(t *testing.T) {
	srv, svc := newServer(t)

	for range 10 {
		rec := do(t, srv, http.MethodPost, "/events/6/register", "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, srv, http.MethodPost, "/events/6/register", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "Sorry, Africahackon Cyber Security Conference is fully booked.", body["message"])

	assert.Equal(t, 0, svc.BookingCount())
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/events/99/register", "").Code)
}

func TestRegisterForm_Created(t *testing.T) {
	srv, svc := newServer(t)

	rec := do(t, srv, http.MethodPost, "/registrations", `{"name":"Amani Otieno","student_id":"670797","event_id":7}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Confirmation string        `json:"confirmation"`
		Event        model.Event   `json:"event"`
		Booking      model.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 14, body.Event.RemainingSlots)
	assert.Equal(t, "670797", body.Booking.StudentID)
	assert.Equal(t, testNow.UnixMilli(), body.Booking.Timestamp)
	assert.Equal(t, render.FormConfirmation("Amani Otieno", "670797", "PACS Employer Breakfast"), body.Confirmation)
	assert.Equal(t, 1, svc.BookingCount())

	// A string event id works too.
	rec = do(t, srv, http.MethodPost, "/registrations", `{"name":"Baraka","student_id":"653431","event_id":"7"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRegisterForm_FieldErrors(t *testing.T) {
	srv, svc := newServer(t)

	rec := do(t, srv, http.MethodPost, "/registrations", `{"name":"J","student_id":"12345","event_id":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decode[model.ErrorResponse](t, rec)
	fields := map[string]string{}
	for _, f := range resp.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, service.MsgInvalidName, fields[service.FieldName])
	assert.Equal(t, service.MsgInvalidID, fields[service.FieldStudentID])
	assert.Equal(t, service.MsgUnknownEvent, fields[service.FieldEventID])
	assert.Equal(t, 0, svc.BookingCount())
}

func TestRegisterForm_FullEvent(t *testing.T) {
	srv, _ := newServer(t)

	rec := do(t, srv, http.MethodPost, "/registrations", `{"name":"Amani","student_id":"670797","event_id":5}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[model.ErrorResponse](t, rec)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, service.MsgEventFullPick, resp.Fields[0].Message)
}

func TestRegisterForm_BadBody(t *testing.T) {
	srv, _ := newServer(t)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/registrations", `{"name":`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/registrations", `{"nickname":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/registrations", `{"event_id":{}}`).Code)
}

func TestCountExportAndPrint(t *testing.T) {
	srv, _ := newServer(t)
	do(t, srv, http.MethodPost, "/registrations", `{"name":"Amani Otieno","student_id":"670797","event_id":7}`)
	do(t, srv, http.MethodPost, "/events/7/register", "")

	rec := do(t, srv, http.MethodGet, "/registrations/count", "")
	assert.JSONEq(t, `{"count":1}`, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/registrations/export.csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bookings-20250602-081500.csv")
	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "PACS Employer Breakfast", records[1][4])

	rec = do(t, srv, http.MethodGet, "/print", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Amani Otieno")
	assert.Contains(t, rec.Body.String(), "Total bookings: 1")
}

func TestReset(t *testing.T) {
	srv, svc := newServer(t)
	do(t, srv, http.MethodPost, "/registrations", `{"name":"Amani Otieno","student_id":"670797","event_id":6}`)
	do(t, srv, http.MethodPost, "/events/6/register", "")

	rec := do(t, srv, http.MethodPost, "/admin/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 0, svc.BookingCount())
	e, err := svc.Event(6)
	require.NoError(t, err)
	assert.Equal(t, 10, e.RemainingSlots)
}

func TestTheme(t *testing.T) {
	srv, _ := newServer(t)

	assert.JSONEq(t, `{"theme":"light"}`, do(t, srv, http.MethodGet, "/theme", "").Body.String())

	rec := do(t, srv, http.MethodPut, "/theme", `{"theme":"dark"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme":"dark"}`, do(t, srv, http.MethodGet, "/theme", "").Body.String())

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPut, "/theme", `{"theme":"sepia"}`).Code)
}

func TestOptionsAndCategories(t *testing.T) {
	srv, _ := newServer(t)

	opts := decode[[]model.EventOption](t, do(t, srv, http.MethodGet, "/events/options", ""))
	require.Len(t, opts, 10)
	assert.True(t, opts[0].Full, "Data Science Summit sorts first and is full")

	cats := decode[[]string](t, do(t, srv, http.MethodGet, "/events/categories", ""))
	assert.Contains(t, cats, "workshop")
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newServer(t)
	rec := do(t, srv, http.MethodOptions, "/registrations", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAccessLog(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, http.StatusTeapot, hook.LastEntry().Data["status"])
	assert.Equal(t, "/x", hook.LastEntry().Data["path"])
}
