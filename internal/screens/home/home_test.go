package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/location"
	"github.com/abhisek/safeguard/internal/nav"
	"github.com/abhisek/safeguard/internal/notify"
	"github.com/abhisek/safeguard/internal/store"
)

func newTestHome(t *testing.T) (*HomeScreen, *env.Env) {
	t.Helper()
	e, err := env.ForTest()
	require.NoError(t, err)
	return New(e), e
}

// collect runs cmd and any batched commands, returning every message produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// feed sends messages to the screen, following up on every command it returns.
func feed(h *HomeScreen, msgs ...tea.Msg) []tea.Msg {
	var seen []tea.Msg
	queue := append([]tea.Msg(nil), msgs...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		seen = append(seen, msg)
		_, cmd := h.Update(msg)
		queue = append(queue, collect(cmd)...)
	}
	return seen
}

func notifications(msgs []tea.Msg) []notify.Notification {
	var out []notify.Notification
	for _, m := range msgs {
		if n, ok := m.(notify.Msg); ok {
			out = append(out, n.Notification)
		}
	}
	return out
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func right() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyRight} }

func openPrompt(t *testing.T, h *HomeScreen) {
	t.Helper()
	feed(h, collect(h.Init())...)
	require.NotNil(t, h.dialog, "expected GPS dialog to open when flag is unset")
}

func TestPromptShownWhenFlagUnset(t *testing.T) {
	h, _ := newTestHome(t)
	openPrompt(t, h)

	assert.True(t, h.CapturingInput())
	assert.Contains(t, h.View(100, 30), "Enable GPS for Emergency Assistance")
}

func TestPromptSkippedWhenFlagSet(t *testing.T) {
	h, e := newTestHome(t)
	require.NoError(t, e.Flags.Set(context.Background(), store.FlagGPSPromptHandled, true))

	feed(h, collect(h.Init())...)
	assert.Nil(t, h.dialog)
	assert.False(t, h.CapturingInput())
}

func TestPromptDelayed(t *testing.T) {
	h, e := newTestHome(t)
	e.GPSPromptDelay = 1500 * time.Millisecond

	_, cmd := h.Update(gpsFlagMsg{handled: false})
	require.NotNil(t, cmd, "expected a tick command when the prompt is delayed")
	assert.Nil(t, h.dialog, "dialog must not open before the delay")
}

func TestEnableGPS_Granted(t *testing.T) {
	h, e := newTestHome(t)
	openPrompt(t, h)

	msgs := feed(h, enter())

	ns := notifications(msgs)
	require.Len(t, ns, 1)
	assert.Equal(t, "GPS Access Granted", ns[0].Title)
	assert.Equal(t, notify.LevelSuccess, ns[0].Level)
	assert.Nil(t, h.dialog)

	handled, err := e.Flags.Get(context.Background(), store.FlagGPSPromptHandled)
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestEnableGPS_Unavailable(t *testing.T) {
	h, e := newTestHome(t)
	e.Location = location.UnavailableProvider{}
	openPrompt(t, h)

	ns := notifications(feed(h, enter()))
	require.Len(t, ns, 1)
	assert.Equal(t, "GPS Not Available", ns[0].Title)
	assert.Equal(t, notify.LevelError, ns[0].Level)

	handled, _ := e.Flags.Get(context.Background(), store.FlagGPSPromptHandled)
	assert.True(t, handled, "flag is persisted even without a location source")
}

func TestEnableGPS_Denied(t *testing.T) {
	h, e := newTestHome(t)
	e.Location = location.DeniedProvider{}
	openPrompt(t, h)

	ns := notifications(feed(h, enter()))
	require.Len(t, ns, 1)
	assert.Equal(t, "GPS Access Denied", ns[0].Title)
	assert.Equal(t, notify.LevelInfo, ns[0].Level)
}

func TestMaybeLater(t *testing.T) {
	h, e := newTestHome(t)
	openPrompt(t, h)

	msgs := feed(h, right(), enter())

	ns := notifications(msgs)
	require.Len(t, ns, 1)
	assert.Equal(t, "You can enable GPS later from the Emergency page", ns[0].Title)
	assert.Nil(t, h.dialog)

	handled, _ := e.Flags.Get(context.Background(), store.FlagGPSPromptHandled)
	assert.True(t, handled)
}

func TestEscClosesWithoutPersisting(t *testing.T) {
	h, e := newTestHome(t)
	openPrompt(t, h)

	feed(h, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, h.dialog)

	handled, _ := e.Flags.Get(context.Background(), store.FlagGPSPromptHandled)
	assert.False(t, handled)
}

func TestOtherPurposeResultsIgnored(t *testing.T) {
	h, _ := newTestHome(t)
	openPrompt(t, h)

	_, cmd := h.Update(location.ResultMsg{Purpose: location.PurposeSOS})
	assert.Nil(t, cmd)
	assert.NotNil(t, h.dialog)
}

func TestMenuNavigatesToSection(t *testing.T) {
	h, e := newTestHome(t)
	require.NoError(t, e.Flags.Set(context.Background(), store.FlagGPSPromptHandled, true))

	// First feature is Interactive Learning -> learn section.
	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(nav.GotoMsg)
	require.True(t, ok)
	assert.Equal(t, e.Catalog.Features()[0].Section, msg.Section)
}

func TestView(t *testing.T) {
	h, _ := newTestHome(t)
	out := h.View(120, 40)

	for _, want := range []string{"Stay Safe", "Why Choose SafeGuard?", "Interactive Learning", "Emergency Access"} {
		if !strings.Contains(out, want) {
			t.Errorf("home view missing %q", want)
		}
	}
	assert.Equal(t, nav.SectionHome, h.Section())
}
