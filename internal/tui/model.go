// Package tui is the terminal dashboard. It reads and mutates state only
// through the booking service and re-derives the visible page after every
// change.
package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/render"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/service"
)

// Service is the part of the booking service the dashboard uses.
type Service interface {
	GetPage(ctx context.Context, query string, categories []string, page int) model.Page
	Categories() []string
	EventOptions() []model.EventOption
	RegisterRow(ctx context.Context, eventID int) (model.Event, error)
	RegisterForm(ctx context.Context, req model.RegisterFormRequest) (model.RegisterFormResult, error)
	ResetToDefaults(ctx context.Context) (model.ResetResult, error)
	BookingCount() int
	Theme(ctx context.Context) (model.Theme, error)
	SetTheme(ctx context.Context, theme model.Theme) error
}

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeForm
	modeConfirmReset
)

// Model is the dashboard state.
type Model struct {
	ctx  context.Context
	svc  Service
	keys KeyMap
	mode mode

	search   textinput.Model
	category int // index into categories, -1 for all
	page     int
	cursor   int
	view     model.Page

	form         form
	lastEventID  int
	confirmation string

	theme   model.Theme
	palette render.Palette
	toast   toast
	width   int
}

// New creates the dashboard over svc and derives the first page.
func New(ctx context.Context, svc Service) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search events"

	theme, err := svc.Theme(ctx)
	if err != nil {
		theme = model.ThemeLight
	}

	m := Model{
		ctx:      ctx,
		svc:      svc,
		keys:     DefaultKeyMap(),
		search:   search,
		category: -1,
		page:     1,
		theme:    theme,
		palette:  render.PaletteFor(theme),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Page returns the currently displayed page.
func (m Model) Page() model.Page {
	return m.view
}

// categories returns the active category filter.
func (m Model) categories() []string {
	cats := m.svc.Categories()
	if m.category < 0 || m.category >= len(cats) {
		return nil
	}
	return []string{cats[m.category]}
}

// refresh re-derives the page from the service and keeps the cursor on it.
func (m *Model) refresh() {
	m.view = m.svc.GetPage(m.ctx, m.search.Value(), m.categories(), m.page)
	m.page = m.view.CurrentPage
	if m.cursor >= len(m.view.Items) {
		m.cursor = len(m.view.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) notify(message string, kind toastKind) tea.Cmd {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.show(message, kind)
	return cmd
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case dismissToastMsg:
		m.toast = m.toast.dismiss(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmReset:
			return m.updateConfirmReset(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevPage):
		m.page--
		m.refresh()
	case key.Matches(msg, m.keys.NextPage):
		m.page++
		m.refresh()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Register):
		return m.registerSelected()
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Category):
		m.category++
		if m.category >= len(m.svc.Categories()) {
			m.category = -1
		}
		m.page = 1
		m.refresh()
	case key.Matches(msg, m.keys.Form):
		m.form = newForm(m.svc.EventOptions(), m.lastEventID)
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Theme):
		next := m.theme.Toggle()
		if err := m.svc.SetTheme(m.ctx, next); err != nil {
			return m, m.notify("Could not save theme: "+err.Error(), toastError)
		}
		m.theme = next
		m.palette = render.PaletteFor(next)
	case key.Matches(msg, m.keys.Reset):
		m.mode = modeConfirmReset
	}
	return m, nil
}

func (m Model) registerSelected() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.view.Items) {
		return m, nil
	}
	selected := m.view.Items[m.cursor]

	event, err := m.svc.RegisterRow(m.ctx, selected.ID)
	m.refresh()
	switch {
	case err == nil:
		return m, m.notify(render.RowReserved(event.Name), toastSuccess)
	case errors.Is(err, service.ErrFullyBooked):
		return m, m.notify(render.RowFull(selected.Name), toastError)
	default:
		return m, m.notify("Registration failed: "+err.Error(), toastError)
	}
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || msg.Type == tea.KeyEnter {
		m.search.Blur()
		m.mode = modeBrowse
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.page = 1
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.form.cycle(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form.cycle(-1)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	}

	if m.form.focus == fieldEvent {
		switch {
		case key.Matches(msg, m.keys.PrevPage), key.Matches(msg, m.keys.Up):
			m.form.moveChoice(-1)
		case key.Matches(msg, m.keys.NextPage), key.Matches(msg, m.keys.Down):
			m.form.moveChoice(1)
		}
		return m, nil
	}
	return m, m.form.updateInput(msg)
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	res, err := m.svc.RegisterForm(m.ctx, m.form.request())
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		m.form.setErrors(verr)
		return m, nil
	case err != nil:
		return m, m.notify("Registration failed: "+err.Error(), toastError)
	}

	m.lastEventID = res.Event.ID
	m.confirmation = render.FormConfirmation(res.Booking.Name, res.Booking.StudentID, res.Event.Name)
	m.mode = modeBrowse
	m.refresh()
	return m, m.notify(render.FormRegistered(res.Event.Name), toastSuccess)
}

func (m Model) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	if !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}

	if _, err := m.svc.ResetToDefaults(m.ctx); err != nil {
		return m, m.notify("Reset failed: "+err.Error(), toastError)
	}
	m.page = 1
	m.cursor = 0
	m.confirmation = ""
	m.refresh()
	return m, m.notify(render.ResetDone, toastSuccess)
}

// View implements tea.Model.
func (m Model) View() string {
	p := m.palette
	var b strings.Builder

	b.WriteString(p.Title.Render("USIU-Africa Events"))
	b.WriteString(p.Muted.Render("  bookings: " + strconv.Itoa(m.svc.BookingCount()) + "  theme: " + string(m.theme)))
	b.WriteString("\n")

	filter := "all"
	if cats := m.categories(); len(cats) > 0 {
		filter = cats[0]
	}
	b.WriteString(m.search.View())
	b.WriteString(p.Muted.Render("   category: " + filter))
	b.WriteString("\n\n")

	b.WriteString(render.EventsTable(m.view, m.cursor, p))
	b.WriteString("\n")

	switch m.mode {
	case modeForm:
		b.WriteString("\n")
		b.WriteString(m.form.view(p))
		b.WriteString("\n")
	case modeConfirmReset:
		b.WriteString("\n")
		b.WriteString(p.Invalid.Render(render.ResetPrompt + " (y/N)"))
		b.WriteString("\n")
	}

	if m.confirmation != "" {
		b.WriteString("\n")
		b.WriteString(p.Muted.Render(m.confirmation))
		b.WriteString("\n")
	}
	if t := m.toast.view(p); t != "" {
		b.WriteString("\n")
		b.WriteString(t)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) helpView() string {
	bindings := m.keys.browseHelp()
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	help := strings.Join(parts, " • ")
	if m.width > 0 {
		help = lipgloss.NewStyle().Width(m.width).Render(help)
	}
	return m.palette.Muted.Render(help)
}
