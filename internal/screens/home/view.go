package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/ui/components"
	"github.com/abhisek/safeguard/internal/ui/theme"
)

const heroBlurb = "Learn life-saving skills through interactive training, access emergency " +
	"services instantly, and get location-based rescue assistance when you need it most."

func renderHome(e *env.Env, menu components.Menu, cw int, compact bool) string {
	sections := []string{renderHero(cw, compact)}
	if !compact {
		sections = append(sections, renderStatsBar(e, cw))
	}
	sections = append(sections,
		theme.Heading.Render("Why Choose SafeGuard?"),
		menu.View(),
	)
	return strings.Join(sections, "\n\n")
}

// renderHero renders the badge, headline and blurb.
func renderHero(cw int, compact bool) string {
	badge := lipgloss.NewStyle().Foreground(theme.Primary).Render("⛨ Interactive Disaster Preparedness")
	headline := theme.Heading.Render("Be Prepared,") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" Stay Safe")

	parts := []string{badge, headline}
	if !compact {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(heroBlurb))
	}
	parts = append(parts, theme.SOSBadge.Render("⚠ 24/7 Emergency Ready"))
	return strings.Join(parts, "\n")
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(e *env.Env, cw int) string {
	stat := func(value, label string) string {
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(value) + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	}

	stats := strings.Join([]string{
		stat("24/7", "Emergency Access"),
		stat(fmt.Sprintf("%d", e.Catalog.TotalLessons()), "Lessons"),
		stat(fmt.Sprintf("%d", len(e.Catalog.QuizQuestions())), "Training Scenarios"),
	}, "   ")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Align(lipgloss.Center).
		Render(stats)
}
