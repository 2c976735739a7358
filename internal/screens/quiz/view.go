package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/safeguard/internal/quiz"
	"github.com/abhisek/safeguard/internal/ui/components"
	"github.com/abhisek/safeguard/internal/ui/theme"
)

// renderQuestion renders the answering and revealed phases.
func renderQuestion(s *qz.Session, cw int) string {
	q, _ := s.Current()

	var b strings.Builder
	title := theme.Heading.Render("Disaster Preparedness ") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Training")
	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.CurrentIndex()+1, s.Len()))
	gap := cw - lipgloss.Width(title) - lipgloss.Width(counter)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(title + strings.Repeat(" ", gap) + counter)
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", s.Progress(), false, cw).View())
	b.WriteString("\n\n")

	mc := components.NewMultiChoice(q.Prompt, q.Options)
	if sel, ok := s.Selected(); ok {
		mc.Selected = sel
	}
	body := ""
	if res, ok := s.LastResult(); ok && s.State() == qz.StateRevealed {
		mc.Revealed = true
		mc.CorrectIndex = res.CorrectIndex
		body = "\n" + renderVerdict(res, cw)
	}
	b.WriteString(components.Card(mc.View()+body, cw))
	b.WriteString("\n\n")
	b.WriteString(actionButton(s).View())

	return b.String()
}

func renderVerdict(res qz.Result, cw int) string {
	verdict := theme.Incorrect.Render("✗ Incorrect")
	if res.Correct {
		verdict = theme.Correct.Render("✓ Correct!")
	}
	explanation := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 6).Render(res.Explanation)
	return verdict + "\n" + explanation
}

// actionButton is Submit Answer while answering (disabled without a
// selection) and Next Question or See Results once revealed.
func actionButton(s *qz.Session) components.Button {
	if s.State() == qz.StateRevealed {
		label := "Next Question"
		if s.IsLast() {
			label = "See Results"
		}
		return components.NewButton(label, true, nil)
	}
	b := components.NewButton("Submit Answer", true, nil)
	_, has := s.Selected()
	b.Disabled = !has
	return b
}

// renderResults renders the completed card.
func renderResults(s *qz.Session, cw int) string {
	pct, _ := s.FinalScorePercentage()

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Accent).Render("★"),
		theme.Heading.Render("Quiz Completed!"),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Great job on completing the training"),
		"",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d%%", pct)),
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("You got %d out of %d questions correct", s.Score(), s.Len())),
		"",
		theme.Heading.Render("Performance Feedback"),
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 6).Render(qz.Performance(pct).Message()),
		"",
		components.NewButton("Retake Quiz", true, nil).View(),
	}
	return components.Card(lipgloss.JoinVertical(lipgloss.Center, lines...), cw)
}

func renderError(msg string, cw int) string {
	return components.AlertCard(
		theme.Incorrect.Render("Quiz unavailable")+"\n\n"+
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-6).Render(msg),
		cw)
}
