// Package render turns derived dashboard data into output formats: CSV
// export, the printable ledger table, slot badges and notification texts.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

// CSVHeader is the first line of a ledger export.
var CSVHeader = []string{
	"booking_id", "name", "student_id", "event_id",
	"event_name", "event_date", "venue", "registered_at",
}

// WriteLedgerCSV writes rows as CSV with a header line.
func WriteLedgerCSV(w io.Writer, rows []model.LedgerRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.BookingID,
			r.Name,
			r.StudentID,
			strconv.Itoa(r.EventID),
			r.EventName,
			r.EventDate,
			r.Venue,
			r.RegisteredAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename is the suggested download name for an export made at t.
func ExportFilename(t time.Time) string {
	return "bookings-" + t.UTC().Format("20060102-150405") + ".csv"
}
