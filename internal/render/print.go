package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

// PrintView renders the ledger as a bordered table for printing, with a
// title line and a total. Columns follow the CSV export minus the id.
func PrintView(rows []model.LedgerRow, p Palette, generatedAt time.Time) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(p.Border)).
		Headers("#", "NAME", "STUDENT ID", "EVENT", "DATE", "VENUE", "REGISTERED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.Header
			}
			return p.Cell
		})

	for i, r := range rows {
		t.Row(
			strconv.Itoa(i+1),
			r.Name,
			r.StudentID,
			r.EventName,
			r.EventDate,
			r.Venue,
			r.RegisteredAt.UTC().Format("2006-01-02 15:04"),
		)
	}

	var b strings.Builder
	b.WriteString(p.Title.Render("Event Bookings"))
	b.WriteString("\n")
	b.WriteString(p.Muted.Render("Generated " + generatedAt.UTC().Format(time.RFC1123)))
	b.WriteString("\n\n")
	if len(rows) == 0 {
		b.WriteString(p.Muted.Render("No bookings yet."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(p.Muted.Render("Total bookings: " + strconv.Itoa(len(rows))))
	b.WriteString("\n")
	return b.String()
}

// EventsTable renders one page of events with the given row highlighted
// (-1 for none), plus the "Page X / Y" status line.
func EventsTable(page model.Page, selected int, p Palette) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(p.Border)).
		Headers("ID", "EVENT", "DATE", "VENUE", "CATEGORY", "SLOTS", "").
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.Header
			case row == selected:
				return p.Selected
			default:
				return p.Cell
			}
		})

	for _, e := range page.Items {
		action := "Register"
		if e.IsFull() {
			action = "Fully Booked"
		}
		t.Row(
			strconv.Itoa(e.ID),
			e.Name,
			e.DateLabel,
			e.Venue,
			e.Category,
			p.Slots(e.RemainingSlots),
			action,
		)
	}

	var b strings.Builder
	if len(page.Items) == 0 {
		b.WriteString(p.Muted.Render("No events match."))
	} else {
		b.WriteString(t.Render())
	}
	b.WriteString("\n")
	b.WriteString(p.Muted.Render(PageStatus(page)))
	return b.String()
}

// PageStatus is the pagination status line.
func PageStatus(page model.Page) string {
	return "Page " + strconv.Itoa(page.CurrentPage) + " / " + strconv.Itoa(page.TotalPages)
}
