package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/location"
	"github.com/abhisek/safeguard/internal/nav"
	"github.com/abhisek/safeguard/internal/notify"
	"github.com/abhisek/safeguard/internal/router"
	"github.com/abhisek/safeguard/internal/screen"
	"github.com/abhisek/safeguard/internal/screens/emergency"
	"github.com/abhisek/safeguard/internal/screens/home"
	learnscreen "github.com/abhisek/safeguard/internal/screens/learn"
	"github.com/abhisek/safeguard/internal/screens/module"
	quizscreen "github.com/abhisek/safeguard/internal/screens/quiz"
	"github.com/abhisek/safeguard/internal/screens/welcome"
	"github.com/abhisek/safeguard/internal/ui/components"
	"github.com/abhisek/safeguard/internal/ui/layout"
)

// Options configures the root model.
type Options struct {
	Env *env.Env

	// Sink receives every notification shown as a toast. Defaults to a
	// LogSink over Env.Log.
	Sink notify.Sink

	// Start builds the initial screen stack, bottom first. Defaults to the
	// welcome splash.
	Start func(e *env.Env) []screen.Screen
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	env    *env.Env
	sink   notify.Sink
	toasts *components.Toasts
	width  int
	height int
}

// NewAppModel creates the root model.
func NewAppModel(opts Options) AppModel {
	e := opts.Env
	sink := opts.Sink
	if sink == nil {
		sink = notify.LogSink{Log: e.Log}
	}
	start := opts.Start
	if start == nil {
		start = Welcome
	}
	stack := start(e)
	return AppModel{
		router: router.New(stack[0], stack[1:]...),
		env:    e,
		sink:   sink,
		toasts: &components.Toasts{},
	}
}

// Welcome is the default start stack: the splash, then home.
func Welcome(e *env.Env) []screen.Screen {
	return []screen.Screen{welcome.New(func() screen.Screen { return home.New(e) })}
}

// SectionStart opens the app directly at a section's root screen.
func SectionStart(s nav.Section) func(e *env.Env) []screen.Screen {
	return func(e *env.Env) []screen.Screen {
		return []screen.Screen{ScreenFor(e, s)}
	}
}

// ScreenFor builds the root screen of a navigation section.
func ScreenFor(e *env.Env, s nav.Section) screen.Screen {
	switch s {
	case nav.SectionLearn:
		return learnscreen.New(e)
	case nav.SectionTraining:
		return quizscreen.New(e)
	case nav.SectionEmergency:
		return emergency.New(e)
	default:
		return home.New(e)
	}
}

// ModuleStart opens a learning module with the catalog beneath it, so
// esc returns to the module list.
func ModuleStart(id string) func(e *env.Env) []screen.Screen {
	return func(e *env.Env) []screen.Screen {
		return []screen.Screen{learnscreen.New(e), module.New(e, id)}
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case notify.Msg:
		m.sink.Notify(msg.Notification)
		return m, m.toasts.Push(msg.Notification)

	case components.ToastExpiredMsg:
		m.toasts.Expire(msg.ID)
		return m, nil

	case nav.GotoMsg:
		m.env.Log.Debug().Str("section", string(msg.Section)).Msg("navigate")
		return m, m.router.Reset(ScreenFor(m.env, msg.Section))

	case location.ResultMsg:
		if msg.Purpose == location.PurposeSOS {
			return m, m.handleSOSLocation(msg)
		}

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// handleKey processes app-wide keys. Keys are left to the active screen
// while it is capturing input, except ctrl+c and the SOS key.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.env.Log.Info().Msg("app quit")
		return tea.Quit, true
	case "ctrl+s":
		return m.sos(), true
	}

	if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
		return nil, false
	}

	switch msg.String() {
	case "tab":
		return nav.Goto(m.activeSection().Next()), true
	case "shift+tab":
		return nav.Goto(m.activeSection().Prev()), true
	case "esc":
		if m.router.Depth() > 1 {
			return func() tea.Msg { return router.PopScreenMsg{} }, true
		}
		return nil, true
	}
	return nil, false
}

func (m AppModel) activeSection() nav.Section {
	if sp, ok := m.router.Active().(screen.SectionProvider); ok {
		return sp.Section()
	}
	return nav.SectionNone
}

func (m AppModel) sos() tea.Cmd {
	m.env.Log.Warn().Msg("sos activated")
	return tea.Batch(
		notify.Cmd(notify.Error("SOS Alert Activated", "Emergency services are being notified. Stay safe!")),
		location.RequestCmd(m.env.Context(), m.env.Location, location.PurposeSOS),
	)
}

func (m AppModel) handleSOSLocation(msg location.ResultMsg) tea.Cmd {
	if msg.Err != nil {
		m.env.Log.Warn().Err(msg.Err).Msg("sos location unavailable")
		return notify.Cmd(notify.Info("Location Unavailable", "Describe nearby landmarks to the operator"))
	}
	m.env.Log.Warn().
		Float64("latitude", msg.Coords.Latitude).
		Float64("longitude", msg.Coords.Longitude).
		Msg("sos location attached")
	return notify.Cmd(notify.Info("Location Attached", msg.Coords.String()))
}

func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	} else {
		hints = []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Tab", Description: "Sections"},
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame: header, toasts, active screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.activeSection(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight

	toasts := ""
	if m.toasts.Len() > 0 {
		toasts = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.toasts.View(toastWidth(m.width)))
		contentHeight -= lipgloss.Height(toasts)
	}
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	if toasts != "" {
		content = toasts + "\n" + content
	}
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func toastWidth(width int) int {
	w := width / 3
	if w < 30 {
		w = 30
	}
	return w
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(NewAppModel(opts))
	opts.Env.Log.Info().Msg("app started")
	_, err := p.Run()
	opts.Env.Log.Info().Err(err).Msg("app stopped")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
