package module

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/nav"
	"github.com/abhisek/safeguard/internal/screens/notfound"
)

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }
func right() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyRight} }

func newEarthquake(t *testing.T) (*ModuleScreen, *env.Env) {
	t.Helper()
	e, err := env.ForTest()
	require.NoError(t, err)
	s, ok := New(e, "earthquake").(*ModuleScreen)
	require.True(t, ok, "expected a module screen for a known id")
	return s, e
}

func TestUnknownModuleIsNotFound(t *testing.T) {
	e, err := env.ForTest()
	require.NoError(t, err)

	s := New(e, "tsunami")
	_, ok := s.(*notfound.NotFoundScreen)
	assert.True(t, ok, "expected not-found screen, got %T", s)
}

func TestViewShowsProgress(t *testing.T) {
	s, _ := newEarthquake(t)
	out := s.View(100, 40)

	assert.Contains(t, out, "Earthquake Safety")
	assert.Contains(t, out, "0 of 6 lessons completed")
	assert.Contains(t, out, "Take the Quiz")
}

func TestOpenLessonAndMarkComplete(t *testing.T) {
	s, e := newEarthquake(t)

	s.Update(enter())
	require.True(t, s.CapturingInput(), "expected lesson dialog to open")
	assert.Contains(t, s.View(100, 40), "Understanding Earthquakes")

	s.Update(enter()) // Mark as Completed
	assert.False(t, s.CapturingInput())
	assert.True(t, e.Tracker.IsComplete("earthquake", 0))
	assert.Contains(t, s.View(100, 40), "1 of 6 lessons completed")
	assert.Contains(t, s.View(100, 40), "✓ 1.")
}

func TestCloseDialogDoesNotComplete(t *testing.T) {
	s, e := newEarthquake(t)

	s.Update(enter())
	s.Update(right())
	s.Update(enter()) // Close
	assert.False(t, s.CapturingInput())
	assert.False(t, e.Tracker.IsComplete("earthquake", 0))

	s.Update(enter())
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, s.CapturingInput())
	assert.Equal(t, 0, e.Tracker.CompletedCount(s.mod))
}

func TestLessonWithoutVideo(t *testing.T) {
	s, _ := newEarthquake(t)

	for i, l := range s.mod.Lessons {
		if l.HasVideo() {
			continue
		}
		for j := 0; j < i; j++ {
			s.Update(down())
		}
		s.Update(enter())
		assert.Contains(t, s.View(100, 40), noVideo)
		return
	}
	t.Skip("every earthquake lesson has a video")
}

func TestTakeTheQuiz(t *testing.T) {
	s, _ := newEarthquake(t)
	for range s.mod.Lessons {
		s.Update(down())
	}

	_, cmd := s.Update(enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(nav.GotoMsg)
	require.True(t, ok)
	assert.Equal(t, nav.SectionTraining, msg.Section)
}

func TestTitleAndSection(t *testing.T) {
	s, _ := newEarthquake(t)
	assert.Equal(t, "Earthquake Safety", s.Title())
	assert.Equal(t, nav.SectionLearn, s.Section())
	assert.True(t, strings.Contains(s.KeyHints()[2].Description, "Back"))
}
