package notfound

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/safeguard/internal/nav"
	"github.com/abhisek/safeguard/internal/screen"
	"github.com/abhisek/safeguard/internal/ui/layout"
	"github.com/abhisek/safeguard/internal/ui/theme"
)

// NotFoundScreen is shown for routes that do not exist, such as an unknown
// module id.
type NotFoundScreen struct {
	route string
	log   zerolog.Logger
}

var _ screen.Screen = (*NotFoundScreen)(nil)
var _ screen.KeyHintProvider = (*NotFoundScreen)(nil)

// New creates a NotFoundScreen for the given route.
func New(route string, log zerolog.Logger) *NotFoundScreen {
	return &NotFoundScreen{route: route, log: log}
}

func (p *NotFoundScreen) Init() tea.Cmd {
	p.log.Error().Str("route", p.route).Msg("404: user attempted to access non-existent route")
	return nil
}

func (p *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return p, nav.Goto(nav.SectionHome)
	}
	return p, nil
}

func (p *NotFoundScreen) View(width, height int) string {
	code := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render("404")
	body := lipgloss.NewStyle().Foreground(theme.Text).Render("Page Not Found\nThe page you're looking for doesn't exist or has been moved.")
	route := theme.Hint.Render(p.route)
	hint := theme.Hint.Render("press enter to return to home")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(code + "\n\n" + body + "\n" + route + "\n\n" + hint)
}

func (p *NotFoundScreen) Title() string {
	return "Not Found"
}

func (p *NotFoundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Return to Home"},
		{Key: "Esc", Description: "Back"},
	}
}
