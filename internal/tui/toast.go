package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/render"
)

// ToastDuration is how long a notification stays on screen.
const ToastDuration = 3200 * time.Millisecond

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

// toast is the notification currently shown. seq identifies which dismiss
// timer may hide it; a newer toast makes older timers stale.
type toast struct {
	message string
	kind    toastKind
	visible bool
	seq     int
}

// dismissToastMsg is delivered when a toast timer fires.
type dismissToastMsg struct {
	seq int
}

func (t toast) show(message string, kind toastKind) (toast, tea.Cmd) {
	t.message = message
	t.kind = kind
	t.visible = true
	t.seq++
	seq := t.seq
	return t, tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return dismissToastMsg{seq: seq}
	})
}

func (t toast) dismiss(msg dismissToastMsg) toast {
	if msg.seq != t.seq {
		return t
	}
	t.visible = false
	t.message = ""
	return t
}

func (t toast) view(p render.Palette) string {
	if !t.visible {
		return ""
	}
	if t.kind == toastError {
		return p.Error.Render(t.message)
	}
	return p.Success.Render(t.message)
}
