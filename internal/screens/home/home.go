package home

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/location"
	"github.com/abhisek/safeguard/internal/nav"
	"github.com/abhisek/safeguard/internal/notify"
	"github.com/abhisek/safeguard/internal/screen"
	"github.com/abhisek/safeguard/internal/store"
	"github.com/abhisek/safeguard/internal/ui/components"
	"github.com/abhisek/safeguard/internal/ui/layout"
)

const (
	gpsDialogTitle = "Enable GPS for Emergency Assistance"
	gpsDialogBody  = "Allow SafeGuard to access your location so we can help emergency responders " +
		"find you faster during a crisis. Your location is only shared when you activate the SOS button."

	buttonEnable = 0
	buttonLater  = 1
)

// gpsFlagMsg reports whether the GPS prompt was handled on a previous run.
type gpsFlagMsg struct {
	handled bool
	err     error
}

// showGPSPromptMsg opens the GPS dialog once the prompt delay has passed.
type showGPSPromptMsg struct{}

// flagSavedMsg reports the outcome of persisting the prompt flag.
type flagSavedMsg struct {
	err error
}

// HomeScreen is the landing screen: hero, feature menu and the one-time GPS
// permission prompt.
type HomeScreen struct {
	env        *env.Env
	menu       components.Menu
	dialog     *components.Dialog
	requesting bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.SectionProvider = (*HomeScreen)(nil)
var _ screen.InputCapturer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(e *env.Env) *HomeScreen {
	features := e.Catalog.Features()
	items := make([]components.MenuItem, 0, len(features)+1)
	for _, f := range features {
		section := f.Section
		items = append(items, components.MenuItem{
			Label:       f.Title,
			Description: f.Description,
			Action:      func() tea.Cmd { return nav.Goto(section) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		env:  e,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	flags, ctx := h.env.Flags, h.env.Context()
	if flags == nil {
		return nil
	}
	return func() tea.Msg {
		handled, err := flags.Get(ctx, store.FlagGPSPromptHandled)
		return gpsFlagMsg{handled: handled, err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Section() nav.Section {
	return nav.SectionHome
}

// CapturingInput is true while the GPS dialog is open.
func (h *HomeScreen) CapturingInput() bool {
	return h.dialog != nil
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.dialog != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Close"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Tab", Description: "Sections"},
		{Key: "Ctrl+S", Description: "SOS"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gpsFlagMsg:
		if msg.err != nil {
			h.env.Log.Warn().Err(msg.err).Msg("read gps prompt flag")
			return h, nil
		}
		if msg.handled {
			return h, nil
		}
		return h, h.schedulePrompt()

	case showGPSPromptMsg:
		d := components.NewDialog(gpsDialogTitle, gpsDialogBody, "Enable GPS", "Maybe Later")
		h.dialog = &d
		return h, nil

	case location.ResultMsg:
		if msg.Purpose != location.PurposePermission {
			return h, nil
		}
		return h, h.handlePermissionResult(msg)

	case flagSavedMsg:
		if msg.err != nil {
			h.env.Log.Error().Err(msg.err).Msg("persist gps prompt flag")
		} else {
			h.env.Log.Debug().Str("flag", store.FlagGPSPromptHandled).Msg("flag saved")
		}
		return h, nil

	case tea.KeyMsg:
		if h.dialog != nil {
			return h, h.updateDialog(msg)
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) schedulePrompt() tea.Cmd {
	delay := h.env.GPSPromptDelay
	if delay <= 0 {
		return func() tea.Msg { return showGPSPromptMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return showGPSPromptMsg{} })
}

func (h *HomeScreen) updateDialog(msg tea.KeyMsg) tea.Cmd {
	if h.requesting {
		return nil
	}
	d, choice, idx := h.dialog.Update(msg)
	h.dialog = &d

	switch choice {
	case components.DialogChosen:
		if idx == buttonEnable {
			h.requesting = true
			h.dialog.Body = "Requesting location access..."
			h.env.Log.Info().Str("purpose", string(location.PurposePermission)).Msg("location requested")
			return location.RequestCmd(h.env.Context(), h.env.Location, location.PurposePermission)
		}
		h.dialog = nil
		return tea.Batch(
			h.persistFlag(),
			notify.Cmd(notify.Info("You can enable GPS later from the Emergency page", "")),
		)
	case components.DialogDismissed:
		// Closing without a choice leaves the flag unset so the prompt returns next run.
		h.dialog = nil
	}
	return nil
}

func (h *HomeScreen) handlePermissionResult(msg location.ResultMsg) tea.Cmd {
	h.dialog = nil
	h.requesting = false

	cmds := []tea.Cmd{h.persistFlag()}
	switch {
	case msg.Err == nil:
		h.env.Log.Info().Msg("gps access granted")
		cmds = append(cmds, notify.Cmd(notify.Success("GPS Access Granted", "Your location can now be shared in emergencies")))
	case errors.Is(msg.Err, location.ErrUnavailable):
		cmds = append(cmds, notify.Cmd(notify.Error("GPS Not Available", "Your device doesn't support location services")))
	case errors.Is(msg.Err, location.ErrDenied):
		cmds = append(cmds, notify.Cmd(notify.Info("GPS Access Denied", "You can enable it later in settings")))
	default:
		h.env.Log.Warn().Err(msg.Err).Msg("gps permission request failed")
	}
	return tea.Batch(cmds...)
}

func (h *HomeScreen) persistFlag() tea.Cmd {
	flags, ctx := h.env.Flags, h.env.Context()
	if flags == nil {
		return nil
	}
	return func() tea.Msg {
		return flagSavedMsg{err: flags.Set(ctx, store.FlagGPSPromptHandled, true)}
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if h.dialog != nil {
		return components.Center(h.dialog.View(cw), width, height)
	}
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	return components.Center(renderHome(h.env, h.menu, cw, compact), width, height)
}
