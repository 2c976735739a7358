package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safeguard/internal/ui/theme"
)

// DialogChoice is the outcome of a key press inside a dialog.
type DialogChoice int

const (
	DialogPending   DialogChoice = iota // still open, no decision
	DialogChosen                        // a button was pressed
	DialogDismissed                     // closed with esc
)

// Dialog is a modal box with a title, body text and a row of buttons.
type Dialog struct {
	Title   string
	Body    string
	Buttons []string
	Focused int
}

// NewDialog creates a dialog focused on its first button.
func NewDialog(title, body string, buttons ...string) Dialog {
	return Dialog{Title: title, Body: body, Buttons: buttons}
}

// Update moves focus between buttons. It reports DialogChosen with the
// focused button index on enter, and DialogDismissed on esc.
func (d Dialog) Update(msg tea.Msg) (Dialog, DialogChoice, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, DialogPending, -1
	}

	switch kmsg.String() {
	case "left", "h", "shift+tab", "up", "k":
		if d.Focused > 0 {
			d.Focused--
		}
	case "right", "l", "tab", "down", "j":
		if d.Focused < len(d.Buttons)-1 {
			d.Focused++
		}
	case "enter":
		if len(d.Buttons) == 0 {
			return d, DialogDismissed, -1
		}
		return d, DialogChosen, d.Focused
	case "esc":
		return d, DialogDismissed, -1
	}
	return d, DialogPending, -1
}

// View renders the dialog box at the given content width.
func (d Dialog) View(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 8).Render(d.Body))

	if len(d.Buttons) > 0 {
		btns := make([]string, 0, len(d.Buttons))
		for i, label := range d.Buttons {
			btns = append(btns, NewButton(label, i == d.Focused, nil).View())
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, btns...))
	}

	return theme.Dialog.Width(cw).Render(b.String())
}
