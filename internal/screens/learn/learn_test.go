package learn

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/nav"
	"github.com/abhisek/safeguard/internal/router"
)

func TestViewListsModules(t *testing.T) {
	e, err := env.ForTest()
	require.NoError(t, err)
	l := New(e)

	out := l.View(120, 40)
	for _, m := range e.Catalog.Modules() {
		assert.Contains(t, out, m.Title)
	}
	assert.Contains(t, out, "6 lessons")
	assert.Contains(t, out, "Why Interactive Learning?")
	assert.Equal(t, nav.SectionLearn, l.Section())
}

func TestEnterPushesModule(t *testing.T) {
	e, err := env.ForTest()
	require.NoError(t, err)
	l := New(e)

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, e.Catalog.Modules()[0].Title, push.Screen.Title())
}

func TestProgressReflectedAfterCompletion(t *testing.T) {
	e, err := env.ForTest()
	require.NoError(t, err)
	l := New(e)

	e.Tracker.MarkComplete("earthquake", 0)
	l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l.Update(tea.KeyPressMsg{Code: tea.KeyUp})

	assert.Contains(t, l.View(120, 40), "1 done")
}
