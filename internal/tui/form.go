package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/render"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/service"
)

type formField int

const (
	fieldName formField = iota
	fieldStudentID
	fieldEvent
	fieldCount
)

// form is the registration form overlay. Only events with remaining
// capacity are offered.
type form struct {
	name      textinput.Model
	studentID textinput.Model
	options   []model.EventOption
	choice    int
	focus     formField
	errors    map[string]string
}

// newForm builds a form over options, preselecting prevID if it is still open.
func newForm(options []model.EventOption, prevID int) form {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Full name"
	name.CharLimit = 80

	id := textinput.New()
	id.Prompt = ""
	id.Placeholder = "670797"
	id.CharLimit = 6

	f := form{name: name, studentID: id}
	for _, o := range options {
		if o.Full {
			continue
		}
		if o.ID == prevID {
			f.choice = len(f.options)
		}
		f.options = append(f.options, o)
	}
	f.setFocus(fieldName)
	return f
}

func (f *form) setFocus(field formField) {
	f.focus = field
	f.name.Blur()
	f.studentID.Blur()
	switch field {
	case fieldName:
		f.name.Focus()
	case fieldStudentID:
		f.studentID.Focus()
	}
}

func (f *form) cycle(delta int) {
	next := (int(f.focus) + delta + int(fieldCount)) % int(fieldCount)
	f.setFocus(formField(next))
}

func (f *form) moveChoice(delta int) {
	if len(f.options) == 0 {
		return
	}
	f.choice = (f.choice + delta + len(f.options)) % len(f.options)
}

// selected returns the chosen event, if any.
func (f form) selected() (model.EventOption, bool) {
	if f.choice < 0 || f.choice >= len(f.options) {
		return model.EventOption{}, false
	}
	return f.options[f.choice], true
}

func (f form) request() model.RegisterFormRequest {
	req := model.RegisterFormRequest{
		Name:      f.name.Value(),
		StudentID: f.studentID.Value(),
	}
	if o, ok := f.selected(); ok {
		req.EventID = model.EventRef(strconv.Itoa(o.ID))
	}
	return req
}

func (f *form) setErrors(verr *service.ValidationError) {
	f.errors = make(map[string]string, len(verr.Fields))
	for _, fe := range verr.Fields {
		f.errors[fe.Field] = fe.Message
	}
}

// updateInput forwards msg to the focused text input.
func (f *form) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldStudentID:
		f.studentID, cmd = f.studentID.Update(msg)
	}
	return cmd
}

func (f form) view(p render.Palette) string {
	var b strings.Builder
	b.WriteString(p.Title.Render("Register for an event"))
	b.WriteString("\n\n")

	row := func(field formField, label, value, errKey string) {
		marker := "  "
		if f.focus == field {
			marker = "> "
		}
		b.WriteString(marker + p.Header.Render(label) + " " + value + "\n")
		if msg := f.errors[errKey]; msg != "" {
			b.WriteString("    " + p.Invalid.Render(msg) + "\n")
		}
	}

	row(fieldName, "Name      ", f.name.View(), service.FieldName)
	row(fieldStudentID, "Student ID", f.studentID.View(), service.FieldStudentID)

	choice := p.Muted.Render("no open events")
	if o, ok := f.selected(); ok {
		choice = "‹ " + o.Name + " ›"
	}
	row(fieldEvent, "Event     ", choice, service.FieldEventID)

	b.WriteString("\n")
	b.WriteString(p.Muted.Render("tab next field • ←/→ change event • enter submit • esc cancel"))
	return b.String()
}
