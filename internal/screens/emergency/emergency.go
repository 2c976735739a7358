package emergency

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/safeguard/internal/content"
	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/location"
	"github.com/abhisek/safeguard/internal/nav"
	"github.com/abhisek/safeguard/internal/notify"
	"github.com/abhisek/safeguard/internal/screen"
	"github.com/abhisek/safeguard/internal/ui/components"
	"github.com/abhisek/safeguard/internal/ui/layout"
)

const landmarkLimit = 120

// EmergencyScreen offers location sharing, emergency contacts and safety tips.
type EmergencyScreen struct {
	env      *env.Env
	menu     components.Menu
	sharing  bool
	shared   *location.Coordinates
	input    components.TextInput
	editing  bool
	landmark string
}

var _ screen.Screen = (*EmergencyScreen)(nil)
var _ screen.KeyHintProvider = (*EmergencyScreen)(nil)
var _ screen.SectionProvider = (*EmergencyScreen)(nil)
var _ screen.InputCapturer = (*EmergencyScreen)(nil)

// New creates a new EmergencyScreen.
func New(e *env.Env) *EmergencyScreen {
	s := &EmergencyScreen{env: e}

	items := []components.MenuItem{{
		Label:       "Share My Location",
		Description: "Your location will only be shared when you choose this.",
		Action:      s.share,
	}}
	for _, c := range e.Catalog.Contacts() {
		contact := c
		items = append(items, components.MenuItem{
			Label:       fmt.Sprintf("Call %s  %s", c.Name, c.Number),
			Description: c.Description,
			Action:      func() tea.Cmd { return s.call(contact) },
		})
	}
	items = append(items, components.MenuItem{
		Label:       "Describe a Nearby Landmark",
		Description: "For when your position cannot be shared",
		Action:      func() tea.Cmd { return s.startEditing() },
	})
	s.menu = components.NewMenu(items)
	return s
}

func (s *EmergencyScreen) Init() tea.Cmd {
	return nil
}

func (s *EmergencyScreen) Title() string {
	return "Emergency"
}

func (s *EmergencyScreen) Section() nav.Section {
	return nav.SectionEmergency
}

// CapturingInput is true while the landmark field has focus.
func (s *EmergencyScreen) CapturingInput() bool {
	return s.editing
}

func (s *EmergencyScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save Landmark"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "Sections"},
		{Key: "Ctrl+S", Description: "SOS"},
	}
}

func (s *EmergencyScreen) share() tea.Cmd {
	if s.sharing {
		return nil
	}
	s.sharing = true
	s.env.Log.Info().Str("purpose", string(location.PurposeShare)).Msg("location requested")
	return location.RequestCmd(s.env.Context(), s.env.Location, location.PurposeShare)
}

func (s *EmergencyScreen) call(c content.Contact) tea.Cmd {
	s.env.Log.Info().
		Str("contact", c.Name).
		Str("uri", c.TelURI()).
		Msg("dial requested")
	return notify.Cmd(notify.Success("Calling "+c.Name, "Dialing "+c.Number+"..."))
}

func (s *EmergencyScreen) startEditing() tea.Cmd {
	s.input = components.NewTextInput("e.g. opposite the city library, main gate", landmarkLimit)
	s.editing = true
	return s.input.Init()
}

func (s *EmergencyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case location.ResultMsg:
		if msg.Purpose != location.PurposeShare {
			return s, nil
		}
		return s, s.handleShareResult(msg)

	case tea.KeyMsg:
		if s.editing {
			return s, s.updateInput(msg)
		}
	}

	if s.editing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *EmergencyScreen) handleShareResult(msg location.ResultMsg) tea.Cmd {
	s.sharing = false
	if msg.Err == nil {
		coords := msg.Coords
		s.shared = &coords
		s.env.Log.Info().
			Float64("latitude", coords.Latitude).
			Float64("longitude", coords.Longitude).
			Msg("location shared")
		return notify.Cmd(notify.Success("Location Shared", "Your location has been sent to emergency services"))
	}

	s.env.Log.Warn().Err(msg.Err).Msg("location share failed")
	n := notify.Error("Location Access Denied", "Please enable location services to share your position")
	if errors.Is(msg.Err, location.ErrUnavailable) {
		n = notify.Error("GPS Not Available", "Your device doesn't support location services")
	}
	return tea.Batch(notify.Cmd(n), s.startEditing())
}

func (s *EmergencyScreen) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.editing = false
		return nil
	case "enter":
		value := s.input.Value()
		if value == "" {
			s.input.Submit(false)
			return nil
		}
		s.input.Submit(true)
		s.landmark = value
		s.editing = false
		s.env.Log.Info().Str("landmark", value).Msg("landmark recorded")
		return notify.Cmd(notify.Info("Landmark Saved", "Share it with the operator when you call"))
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *EmergencyScreen) View(width, height int) string {
	return components.Center(renderEmergency(s, components.ContentWidth(width), height), width, height)
}
