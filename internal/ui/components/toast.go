package components

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safeguard/internal/notify"
	"github.com/abhisek/safeguard/internal/ui/theme"
)

// maxVisibleToasts caps how many toasts render at once; older ones drop off.
const maxVisibleToasts = 3

// ToastExpiredMsg is delivered when the toast with ID has outlived its duration.
type ToastExpiredMsg struct {
	ID int
}

type toast struct {
	id int
	n  notify.Notification
}

// Toasts is a stack of transient notifications, newest last.
type Toasts struct {
	items  []toast
	nextID int
}

// Push shows n and returns the command that expires it.
func (t *Toasts) Push(n notify.Notification) tea.Cmd {
	t.nextID++
	id := t.nextID
	t.items = append(t.items, toast{id: id, n: n})
	if len(t.items) > maxVisibleToasts {
		t.items = t.items[len(t.items)-maxVisibleToasts:]
	}

	d := n.Duration
	if d <= 0 {
		d = notify.DefaultDuration
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Expire removes the toast with id. Unknown ids are ignored.
func (t *Toasts) Expire(id int) {
	for i, it := range t.items {
		if it.id == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of visible toasts.
func (t *Toasts) Len() int {
	return len(t.items)
}

// View renders the visible toasts stacked vertically, or "" when empty.
func (t *Toasts) View(width int) string {
	if len(t.items) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(t.items))
	for _, it := range t.items {
		body := lipgloss.NewStyle().Bold(true).Render(toastIcon(it.n.Level) + " " + it.n.Title)
		if it.n.Description != "" {
			body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(it.n.Description)
		}
		boxes = append(boxes, theme.ToastStyle(it.n.Level.String()).Width(width).Render(body))
	}
	return strings.Join(boxes, "\n")
}

func toastIcon(l notify.Level) string {
	switch l {
	case notify.LevelSuccess:
		return "✓"
	case notify.LevelError:
		return "!"
	default:
		return "i"
	}
}
