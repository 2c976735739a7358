package quiz

import (
	"math"

	"github.com/google/uuid"
)

// noSelection marks the absence of a pending option for the current question.
const noSelection = -1

// Result is the outcome of submitting the current question.
type Result struct {
	QuestionID   string
	Selected     int
	CorrectIndex int
	Correct      bool
	Explanation  string
}

// Session is one attempt at a fixed, ordered question set. It is owned by a
// single caller and is not safe for concurrent use.
type Session struct {
	id        string
	questions []Question
	current   int
	selected  int
	state     State
	score     int
	answered  int
	last      *Result
}

// NewSession validates the questions and returns a session positioned at the
// first question. An empty set yields a session that is already completed.
func NewSession(questions []Question) (*Session, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.clone()
	}

	s := &Session{id: uuid.NewString(), questions: qs}
	s.Reset()
	return s, nil
}

// ID identifies this attempt in logs.
func (s *Session) ID() string { return s.id }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Len returns the number of questions in the attempt.
func (s *Session) Len() int { return len(s.questions) }

// CurrentIndex returns the zero-based position. It equals Len() once completed.
func (s *Session) CurrentIndex() int { return s.current }

// Current returns the question being shown, or false once completed.
func (s *Session) Current() (Question, bool) {
	if s.state == StateCompleted {
		return Question{}, false
	}
	return s.questions[s.current].clone(), true
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.state != StateCompleted && s.current == len(s.questions)-1
}

// Selected returns the pending or locked option for the current question.
func (s *Session) Selected() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// Score returns the number of correct submissions so far.
func (s *Session) Score() int { return s.score }

// Answered returns the number of questions advanced past.
func (s *Session) Answered() int { return s.answered }

// LastResult returns the result of the most recent submit while it is still
// being revealed.
func (s *Session) LastResult() (Result, bool) {
	if s.state != StateRevealed || s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}

// SelectOption sets the pending selection. Repeating the same index is a no-op.
func (s *Session) SelectOption(index int) error {
	if s.state != StateAnswering {
		return &TransitionError{Op: "select", State: s.state, Reason: "selection is locked"}
	}
	if index < 0 || index >= len(s.questions[s.current].Options) {
		return &TransitionError{Op: "select", State: s.state, Reason: "option index out of range"}
	}
	s.selected = index
	return nil
}

// Submit reveals the answer for the current selection and scores it.
func (s *Session) Submit() (Result, error) {
	if s.state != StateAnswering {
		return Result{}, &TransitionError{Op: "submit", State: s.state, Reason: "answer already submitted"}
	}
	if s.selected == noSelection {
		return Result{}, &TransitionError{Op: "submit", State: s.state, Reason: "no option selected"}
	}

	q := s.questions[s.current]
	res := Result{
		QuestionID:   q.ID,
		Selected:     s.selected,
		CorrectIndex: q.CorrectIndex,
		Correct:      s.selected == q.CorrectIndex,
		Explanation:  q.Explanation,
	}
	if res.Correct {
		s.score++
	}
	s.state = StateRevealed
	s.last = &res
	return res, nil
}

// Advance moves past a revealed question, to the next one or to completion.
func (s *Session) Advance() error {
	if s.state != StateRevealed {
		return &TransitionError{Op: "advance", State: s.state, Reason: "answer not submitted"}
	}

	s.answered++
	s.last = nil
	if s.current+1 < len(s.questions) {
		s.current++
		s.selected = noSelection
		s.state = StateAnswering
		return nil
	}
	s.current = len(s.questions)
	s.state = StateCompleted
	return nil
}

// Reset starts the attempt over from the first question.
func (s *Session) Reset() {
	s.current = 0
	s.selected = noSelection
	s.score = 0
	s.answered = 0
	s.last = nil
	s.state = StateAnswering
	if len(s.questions) == 0 {
		s.state = StateCompleted
	}
}

// Progress returns the fraction of questions advanced past, in [0, 1]. It
// does not count the question currently on screen.
func (s *Session) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.answered) / float64(len(s.questions))
}

// FinalScorePercentage returns the rounded score percentage of a completed
// attempt. An empty question set scores 0.
func (s *Session) FinalScorePercentage() (int, error) {
	if s.state != StateCompleted {
		return 0, &TransitionError{Op: "final score", State: s.state, Reason: "attempt not completed"}
	}
	if len(s.questions) == 0 {
		return 0, nil
	}
	return int(math.Round(100 * float64(s.score) / float64(len(s.questions)))), nil
}
