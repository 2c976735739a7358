package quiz

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/nav"
	qz "github.com/abhisek/safeguard/internal/quiz"
	"github.com/abhisek/safeguard/internal/screen"
	"github.com/abhisek/safeguard/internal/ui/components"
	"github.com/abhisek/safeguard/internal/ui/layout"
)

// QuizScreen hosts one quiz session: it maps keys to session transitions and
// renders whatever state the session reports.
type QuizScreen struct {
	env     *env.Env
	session *qz.Session
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.SectionProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the catalog's quiz questions.
func New(e *env.Env) *QuizScreen {
	s := &QuizScreen{env: e}
	sess, err := qz.NewSession(e.QuizQuestions())
	if err != nil {
		e.Log.Error().Err(err).Msg("quiz questions rejected")
		s.errMsg = err.Error()
		return s
	}
	s.session = sess
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.session != nil {
		s.env.Log.Info().
			Str("attempt_id", s.session.ID()).
			Int("questions", s.session.Len()).
			Msg("quiz started")
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return "Training"
}

func (s *QuizScreen) Section() nav.Section {
	return nav.SectionTraining
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session == nil {
		return []layout.KeyHint{{Key: "Tab", Description: "Sections"}}
	}
	switch s.session.State() {
	case qz.StateAnswering:
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Select"},
			{Key: "Enter", Description: "Submit Answer"},
			{Key: "Ctrl+S", Description: "SOS"},
		}
	case qz.StateRevealed:
		label := "Next Question"
		if s.session.IsLast() {
			label = "See Results"
		}
		return []layout.KeyHint{{Key: "Enter", Description: label}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retake Quiz"},
			{Key: "Tab", Description: "Sections"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.session == nil {
		return s, nil
	}

	switch s.session.State() {
	case qz.StateAnswering:
		s.handleAnswering(kmsg.String())
	case qz.StateRevealed:
		if kmsg.String() == "enter" || kmsg.String() == "space" {
			s.advance()
		}
	case qz.StateCompleted:
		if kmsg.String() == "enter" || kmsg.String() == "r" {
			s.session.Reset()
			s.env.Log.Info().Str("attempt_id", s.session.ID()).Msg("quiz retaken")
		}
	}
	return s, nil
}

func (s *QuizScreen) handleAnswering(key string) {
	q, _ := s.session.Current()
	sel, has := s.session.Selected()

	switch key {
	case "up", "k":
		if !has {
			s.selectOption(0)
		} else if sel > 0 {
			s.selectOption(sel - 1)
		}
	case "down", "j":
		if !has {
			s.selectOption(0)
		} else if sel < len(q.Options)-1 {
			s.selectOption(sel + 1)
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.selectOption(int(key[0] - '1'))
	case "enter":
		s.submit()
	}
}

func (s *QuizScreen) selectOption(i int) {
	if err := s.session.SelectOption(i); err != nil {
		s.env.Log.Debug().Err(err).Str("attempt_id", s.session.ID()).Msg("select rejected")
	}
}

func (s *QuizScreen) submit() {
	res, err := s.session.Submit()
	if err != nil {
		s.env.Log.Debug().Err(err).Str("attempt_id", s.session.ID()).Msg("submit rejected")
		return
	}
	s.env.Log.Info().
		Str("attempt_id", s.session.ID()).
		Str("question_id", res.QuestionID).
		Bool("correct", res.Correct).
		Msg("answer submitted")
}

func (s *QuizScreen) advance() {
	if err := s.session.Advance(); err != nil {
		s.env.Log.Debug().Err(err).Str("attempt_id", s.session.ID()).Msg("advance rejected")
		return
	}
	if s.session.State() != qz.StateCompleted {
		return
	}
	pct, _ := s.session.FinalScorePercentage()
	s.env.Log.Info().
		Str("attempt_id", s.session.ID()).
		Int("score", s.session.Score()).
		Int("total", s.session.Len()).
		Int("percentage", pct).
		Msg("quiz completed")
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string
	switch {
	case s.session == nil:
		body = renderError(s.errMsg, cw)
	case s.session.State() == qz.StateCompleted:
		body = renderResults(s.session, cw)
	default:
		body = renderQuestion(s.session, cw)
	}
	return components.Center(body, width, height)
}
