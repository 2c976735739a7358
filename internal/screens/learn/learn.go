package learn

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/nav"
	"github.com/abhisek/safeguard/internal/router"
	"github.com/abhisek/safeguard/internal/screen"
	"github.com/abhisek/safeguard/internal/screens/module"
	"github.com/abhisek/safeguard/internal/ui/components"
	"github.com/abhisek/safeguard/internal/ui/layout"
	"github.com/abhisek/safeguard/internal/ui/theme"
)

// LearnScreen lists the learning modules.
type LearnScreen struct {
	env  *env.Env
	menu components.Menu
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.SectionProvider = (*LearnScreen)(nil)

// New creates a new LearnScreen.
func New(e *env.Env) *LearnScreen {
	l := &LearnScreen{env: e}
	l.menu = components.NewMenu(l.items())
	return l
}

func (l *LearnScreen) items() []components.MenuItem {
	mods := l.env.Catalog.Modules()
	items := make([]components.MenuItem, 0, len(mods))
	for _, m := range mods {
		id := m.ID
		desc := fmt.Sprintf("%s · %d lessons · %d min", m.Description, m.LessonCount(), m.TotalMinutes())
		if done := l.env.Tracker.CompletedCount(m); done > 0 {
			desc += fmt.Sprintf(" · %d done", done)
		}
		items = append(items, components.MenuItem{
			Label:       m.Title,
			Description: desc,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: module.New(l.env, id)}
				}
			},
		})
	}
	return items
}

func (l *LearnScreen) Init() tea.Cmd {
	return nil
}

func (l *LearnScreen) Title() string {
	return "Learn"
}

func (l *LearnScreen) Section() nav.Section {
	return nav.SectionLearn
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start Learning"},
		{Key: "Tab", Description: "Sections"},
		{Key: "Ctrl+S", Description: "SOS"},
	}
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		// Progress may have changed while a module was open.
		selected := l.menu.Selected
		l.menu = components.NewMenu(l.items())
		l.menu.Selected = selected
	}
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LearnScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Interactive ") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Learning Modules"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(
		"Choose a disaster type to start your interactive learning journey."))
	b.WriteString("\n\n")
	b.WriteString(l.menu.View())

	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		b.WriteString("\n")
		b.WriteString(components.Card(renderHighlights(l.env), cw))
	}

	return components.Center(b.String(), width, height)
}

func renderHighlights(e *env.Env) string {
	lines := []string{theme.Heading.Render("Why Interactive Learning?")}
	for _, h := range e.Catalog.Highlights() {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(h.Title)+"  "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Body))
	}
	return strings.Join(lines, "\n")
}
