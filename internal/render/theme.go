package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

// SlotClass buckets a remaining-capacity count for display.
type SlotClass string

const (
	SlotZero SlotClass = "zero"
	SlotLow  SlotClass = "low"
	SlotOK   SlotClass = "ok"
)

// lowSlotThreshold is the count at or below which capacity is shown as low.
const lowSlotThreshold = 10

// ClassifySlots returns the display class of n remaining slots.
func ClassifySlots(n int) SlotClass {
	switch {
	case n <= 0:
		return SlotZero
	case n <= lowSlotThreshold:
		return SlotLow
	default:
		return SlotOK
	}
}

// Palette is the set of styles for one theme.
type Palette struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Color
	SlotZero lipgloss.Style
	SlotLow  lipgloss.Style
	SlotOK   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Invalid  lipgloss.Style
}

// PaletteFor returns the styles of theme; unknown themes get the light palette.
func PaletteFor(theme model.Theme) Palette {
	fg, muted, accent, border, selBg := lipgloss.Color("#1F2937"), lipgloss.Color("#6B7280"), lipgloss.Color("#1D4ED8"), lipgloss.Color("#D1D5DB"), lipgloss.Color("#DBEAFE")
	if theme == model.ThemeDark {
		fg, muted, accent, border, selBg = lipgloss.Color("#E5E7EB"), lipgloss.Color("#9CA3AF"), lipgloss.Color("#60A5FA"), lipgloss.Color("#374151"), lipgloss.Color("#1E3A8A")
	}
	red, amber, green := lipgloss.Color("#DC2626"), lipgloss.Color("#D97706"), lipgloss.Color("#16A34A")

	return Palette{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(fg).Padding(0, 1),
		Cell:     lipgloss.NewStyle().Foreground(fg).Padding(0, 1),
		Selected: lipgloss.NewStyle().Foreground(fg).Background(selBg).Padding(0, 1),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Border:   border,
		SlotZero: lipgloss.NewStyle().Bold(true).Foreground(red),
		SlotLow:  lipgloss.NewStyle().Foreground(amber),
		SlotOK:   lipgloss.NewStyle().Foreground(green),
		Success:  lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(green),
		Error:    lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(red),
		Invalid:  lipgloss.NewStyle().Foreground(red),
	}
}

// Slots renders n with the style of its class.
func (p Palette) Slots(n int) string {
	if n < 0 {
		n = 0
	}
	s := strconv.Itoa(n)
	switch ClassifySlots(n) {
	case SlotZero:
		return p.SlotZero.Render(s)
	case SlotLow:
		return p.SlotLow.Render(s)
	default:
		return p.SlotOK.Render(s)
	}
}
