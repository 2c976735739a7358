package emergency

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/safeguard/internal/ui/components"
	"github.com/abhisek/safeguard/internal/ui/layout"
	"github.com/abhisek/safeguard/internal/ui/theme"
)

func renderEmergency(s *EmergencyScreen, cw, height int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Emergency ") +
		lipgloss.NewStyle().Foreground(theme.Emergency).Bold(true).Render("Contacts"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Access emergency services with one key. Your safety is our priority."))
	b.WriteString("\n\n")

	b.WriteString(renderLocationStatus(s))
	b.WriteString("\n\n")

	if s.editing {
		b.WriteString(components.AlertCard(
			theme.Heading.Render("Nearby Landmark")+"\n"+s.input.View(), cw))
		b.WriteString("\n\n")
	}

	b.WriteString(s.menu.View())

	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		b.WriteString("\n")
		b.WriteString(components.Card(renderTips(s), cw))
	}
	return b.String()
}

func renderLocationStatus(s *EmergencyScreen) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var lines []string
	switch {
	case s.sharing:
		lines = append(lines, dim.Render("Locating..."))
	case s.shared != nil:
		lines = append(lines, theme.Correct.Render("Location shared: ")+s.shared.String())
	default:
		lines = append(lines, dim.Render("Location not shared"))
	}
	if s.landmark != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render("Landmark: ")+s.landmark)
	}
	return strings.Join(lines, "\n")
}

func renderTips(s *EmergencyScreen) string {
	lines := []string{theme.Heading.Render("Important Safety Tips")}
	for _, tip := range s.env.Catalog.SafetyTips() {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(tip.Title)+"  "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(tip.Body))
	}
	return strings.Join(lines, "\n")
}
