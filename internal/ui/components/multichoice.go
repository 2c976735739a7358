package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/safeguard/internal/ui/theme"
)

// MultiChoice renders a multiple-choice question. It holds no quiz logic:
// the caller copies selection and reveal state in from the quiz session.
type MultiChoice struct {
	Question     string
	Options      []string
	Selected     int // -1 when nothing is selected
	Revealed     bool
	CorrectIndex int
}

// NewMultiChoice creates a multiple-choice view with no selection.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Selected: -1,
	}
}

// View renders the question and its options. Once revealed, the correct
// option is marked ✓ and a wrong selection ✗; other options are dimmed.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+rune(i), opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && i == m.Selected:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}
