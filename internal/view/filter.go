// Package view derives what the dashboard shows from the catalog: the
// filtered subset and the current page of it. Everything here is pure.
package view

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

// Filter returns the events, in input order, whose category is one of
// categories (or any category when categories is empty) and whose name or
// venue contains query case-insensitively. A blank query matches everything.
func Filter(events []model.Event, query string, categories []string) []model.Event {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	var wanted map[string]struct{}
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if wanted == nil {
			wanted = make(map[string]struct{}, len(categories))
		}
		wanted[fold.String(c)] = struct{}{}
	}

	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if wanted != nil {
			if _, ok := wanted[fold.String(e.Category)]; !ok {
				continue
			}
		}
		if q != "" &&
			!strings.Contains(fold.String(e.Name), q) &&
			!strings.Contains(fold.String(e.Venue), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}
