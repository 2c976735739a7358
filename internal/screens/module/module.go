package module

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safeguard/internal/content"
	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/nav"
	"github.com/abhisek/safeguard/internal/screen"
	"github.com/abhisek/safeguard/internal/screens/notfound"
	"github.com/abhisek/safeguard/internal/ui/components"
	"github.com/abhisek/safeguard/internal/ui/layout"
	"github.com/abhisek/safeguard/internal/ui/theme"
)

const (
	buttonMarkComplete = 0
	noVideo            = "Video content coming soon"
)

// ModuleScreen lists one module's lessons with completion progress.
type ModuleScreen struct {
	env    *env.Env
	mod    content.Module
	menu   components.Menu
	open   int // lesson index shown in the dialog, -1 when closed
	dialog components.Dialog
}

var _ screen.Screen = (*ModuleScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleScreen)(nil)
var _ screen.SectionProvider = (*ModuleScreen)(nil)
var _ screen.InputCapturer = (*ModuleScreen)(nil)

// New returns the screen for module id, or a not-found screen when the
// catalog has no such module.
func New(e *env.Env, id string) screen.Screen {
	mod, ok := e.Catalog.Module(id)
	if !ok {
		return notfound.New("/learn/"+id, e.Log)
	}
	s := &ModuleScreen{env: e, mod: mod, open: -1}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *ModuleScreen) items() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(s.mod.Lessons)+1)
	for i, l := range s.mod.Lessons {
		idx := i
		mark := "▶"
		if s.env.Tracker.IsComplete(s.mod.ID, i) {
			mark = "✓"
		}
		items = append(items, components.MenuItem{
			Label:       fmt.Sprintf("%s %d. %s", mark, i+1, l.Title),
			Description: l.Description + " · " + l.Duration(),
			Action:      func() tea.Cmd { s.openLesson(idx); return nil },
		})
	}
	items = append(items, components.MenuItem{
		Label:       "Take the Quiz",
		Description: "Complete the training quiz to earn your certification",
		Action:      func() tea.Cmd { return nav.Goto(nav.SectionTraining) },
	})
	return items
}

func (s *ModuleScreen) openLesson(i int) {
	l := s.mod.Lessons[i]
	video := noVideo
	if l.HasVideo() {
		video = "Video: " + l.VideoURL
	}
	body := video + "\n\n" + l.Description
	s.dialog = components.NewDialog(l.Title, body, "Mark as Completed", "Close")
	s.open = i
}

func (s *ModuleScreen) Init() tea.Cmd {
	return nil
}

func (s *ModuleScreen) Title() string {
	return s.mod.Title
}

func (s *ModuleScreen) Section() nav.Section {
	return nav.SectionLearn
}

// CapturingInput is true while a lesson dialog is open.
func (s *ModuleScreen) CapturingInput() bool {
	return s.open >= 0
}

func (s *ModuleScreen) KeyHints() []layout.KeyHint {
	if s.open >= 0 {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Close"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back to Learning Modules"},
	}
}

func (s *ModuleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.open >= 0 {
		d, choice, idx := s.dialog.Update(msg)
		s.dialog = d
		switch choice {
		case components.DialogChosen:
			if idx == buttonMarkComplete {
				s.env.Tracker.MarkComplete(s.mod.ID, s.open)
				s.env.Log.Info().
					Str("module", s.mod.ID).
					Int("lesson", s.open).
					Msg("lesson completed")
				s.refresh()
			}
			s.open = -1
		case components.DialogDismissed:
			s.open = -1
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModuleScreen) refresh() {
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.items())
	s.menu.Selected = selected
}

func (s *ModuleScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.open >= 0 {
		return components.Center(s.dialog.View(cw), width, height)
	}

	done := s.env.Tracker.CompletedCount(s.mod)
	var b strings.Builder
	b.WriteString(theme.Hint.Render("← Back to Learning Modules (esc)"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.mod.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d of %d lessons completed", done, s.mod.LessonCount())))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", s.env.Tracker.Fraction(s.mod), true, cw).View())
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	return components.Center(b.String(), width, height)
}
