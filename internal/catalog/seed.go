package catalog

import (
	"slices"
	"strings"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

// Categories used by the seed catalog.
const (
	CategorySports     = "sports"
	CategoryConference = "conference"
	CategoryTechnology = "technology"
	CategoryCareer     = "career"
	CategoryWorkshop   = "workshop"
)

const defaultVenue = "USIU‑Africa, Nairobi"

// DefaultEvents returns a fresh copy of the seed catalog sorted by DateISO
// ascending. Events sharing a date keep their seed order.
func DefaultEvents() []model.Event {
	events := []model.Event{
		{ID: 1, Name: "USIU‑Africa Half Marathon 2025", DateISO: "2025-07-27", DateLabel: "Sun, Jul 27, 2025", Venue: defaultVenue, Category: CategorySports, RemainingSlots: 120, SourceURL: "https://www.usiu.ac.ke/halfmarathon/faqs/"},
		{ID: 2, Name: "3rd Int’l Symposium on Social Media (ISSM 2025)", DateISO: "2025-09-24", DateLabel: "Sep 24–25, 2025", Venue: defaultVenue, Category: CategoryConference, RemainingSlots: 80, SourceURL: "https://www.usiu.ac.ke/3964/3rd-international-symposium-social-media-2025"},
		{ID: 3, Name: "81st IIPF Annual Congress 2025", DateISO: "2025-08-20", DateLabel: "Aug 20–22, 2025", Venue: defaultVenue, Category: CategoryConference, RemainingSlots: 60, SourceURL: "https://www.iipf.org/cng.htm"},
		{ID: 4, Name: "IPSF 70th World Congress 2025", DateISO: "2025-08-08", DateLabel: "Aug 8–14, 2025", Venue: defaultVenue, Category: CategoryConference, RemainingSlots: 90, SourceURL: "https://www.facebook.com/wc.ipsf/"},
		{ID: 5, Name: "Data Science Summit 2025", DateISO: "2025-02-26", DateLabel: "Feb 26–27, 2025 (Virtual)", Venue: "USIU‑Africa (Virtual)", Category: CategoryTechnology, RemainingSlots: 0, SourceURL: "https://www.usiu.ac.ke/3596/data-science-summit-2025-driving-innovation-through/"},
		{ID: 6, Name: "Africahackon Cyber Security Conference", DateISO: "2025-03-03", DateLabel: "Mar 3–4, 2025", Venue: defaultVenue, Category: CategoryTechnology, RemainingSlots: 10, SourceURL: "https://www.usiu.ac.ke/2958/africahackon-hosts-cyber-security-conference-usiu-africa/"},
		{ID: 7, Name: "PACS Employer Breakfast", DateISO: "2025-06-09", DateLabel: "Mon, Jun 9, 2025", Venue: "Radisson Blu (USIU‑A Partner)", Category: CategoryCareer, RemainingSlots: 15, SourceURL: "https://www.facebook.com/USIUAFRICA/photos/1125592589614176/"},
		{ID: 8, Name: "USIU‑Africa Career Fair 2025", DateISO: "2025-06-09", DateLabel: "Jun 9–12, 2025", Venue: defaultVenue, Category: CategoryCareer, RemainingSlots: 200, SourceURL: "https://x.com/ExperienceUSIU/status/1921176511060545950"},
		{ID: 9, Name: "Dewald Roode Workshop on IS Security Research", DateISO: "2025-06-24", DateLabel: "Tue, Jun 24, 2025", Venue: defaultVenue, Category: CategoryWorkshop, RemainingSlots: 25, SourceURL: "https://www.iipf.org/cng.htm"},
		{ID: 10, Name: "Linguistics Training Workshop (SHSS)", DateISO: "2025-07-02", DateLabel: "Wed, Jul 2, 2025", Venue: defaultVenue, Category: CategoryWorkshop, RemainingSlots: 18, SourceURL: "https://www.usiu.ac.ke/university-calendar/"},
	}
	slices.SortStableFunc(events, func(a, b model.Event) int {
		return strings.Compare(a.DateISO, b.DateISO)
	})
	return events
}
