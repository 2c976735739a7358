package quiz

import (
	"errors"
	"testing"
)

func testQuestions(correct ...int) []Question {
	qs := make([]Question, len(correct))
	for i, c := range correct {
		qs[i] = Question{
			ID:           string(rune('a' + i)),
			Prompt:       "Question?",
			Options:      []string{"w", "x", "y", "z"},
			CorrectIndex: c,
			Explanation:  "Because.",
		}
	}
	return qs
}

func newTestSession(t *testing.T, correct ...int) *Session {
	t.Helper()
	s, err := NewSession(testQuestions(correct...))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// play selects, submits and advances each answer in turn.
func play(t *testing.T, s *Session, answers ...int) {
	t.Helper()
	for _, a := range answers {
		if err := s.SelectOption(a); err != nil {
			t.Fatalf("SelectOption(%d): %v", a, err)
		}
		if _, err := s.Submit(); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
}

func TestNewSession_StartsAnswering(t *testing.T) {
	s := newTestSession(t, 1, 1, 1)

	if s.State() != StateAnswering {
		t.Errorf("State = %s, want answering", s.State())
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex())
	}
	if _, ok := s.Selected(); ok {
		t.Error("expected no selection at start")
	}
	if s.ID() == "" {
		t.Error("expected a non-empty attempt ID")
	}
}

func TestNewSession_RejectsMalformedQuestions(t *testing.T) {
	tests := []struct {
		name string
		qs   []Question
	}{
		{"correct index too high", []Question{{ID: "q1", Options: []string{"a", "b"}, CorrectIndex: 2}}},
		{"correct index negative", []Question{{ID: "q1", Options: []string{"a", "b"}, CorrectIndex: -1}}},
		{"no options", []Question{{ID: "q1", CorrectIndex: 0}}},
		{"missing id", []Question{{Options: []string{"a"}, CorrectIndex: 0}}},
		{"duplicate id", []Question{
			{ID: "q1", Options: []string{"a"}, CorrectIndex: 0},
			{ID: "q1", Options: []string{"a"}, CorrectIndex: 0},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(tt.qs)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidQuestionData) {
				t.Errorf("error %v does not match ErrInvalidQuestionData", err)
			}
			if s != nil {
				t.Error("expected nil session on error")
			}
		})
	}
}

func TestNewSession_CopiesQuestions(t *testing.T) {
	qs := testQuestions(1)
	s, err := NewSession(qs)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	qs[0].Options[0] = "mutated"
	qs[0].CorrectIndex = 3

	q, _ := s.Current()
	if q.Options[0] != "w" {
		t.Errorf("Options[0] = %q, want %q", q.Options[0], "w")
	}
	if q.CorrectIndex != 1 {
		t.Errorf("CorrectIndex = %d, want 1", q.CorrectIndex)
	}
}

func TestSubmit_WithoutSelection(t *testing.T) {
	s := newTestSession(t, 1, 1, 1)

	_, err := s.Submit()
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Submit error = %v, want ErrInvalidTransition", err)
	}
	if s.Score() != 0 || s.Answered() != 0 || s.CurrentIndex() != 0 {
		t.Errorf("counters changed: score=%d answered=%d index=%d", s.Score(), s.Answered(), s.CurrentIndex())
	}
	if s.State() != StateAnswering {
		t.Errorf("State = %s, want answering", s.State())
	}
}

func TestSelectOption_LockedAfterSubmit(t *testing.T) {
	s := newTestSession(t, 1)

	if err := s.SelectOption(2); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if _, err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	err := s.SelectOption(1)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("SelectOption after submit = %v, want ErrInvalidTransition", err)
	}
	sel, ok := s.Selected()
	if !ok || sel != 2 {
		t.Errorf("Selected = (%d, %v), want (2, true)", sel, ok)
	}
}

func TestSelectOption_OutOfRange(t *testing.T) {
	s := newTestSession(t, 1)

	for _, idx := range []int{-1, 4} {
		if err := s.SelectOption(idx); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("SelectOption(%d) = %v, want ErrInvalidTransition", idx, err)
		}
	}
	if _, ok := s.Selected(); ok {
		t.Error("rejected selection should not be recorded")
	}
}

func TestSelectOption_Idempotent(t *testing.T) {
	once := newTestSession(t, 1)
	twice := newTestSession(t, 1)

	_ = once.SelectOption(3)
	_ = twice.SelectOption(3)
	_ = twice.SelectOption(3)

	a, _ := once.Selected()
	b, _ := twice.Selected()
	if a != b {
		t.Errorf("selected %d after one call, %d after two", a, b)
	}
	if once.State() != twice.State() {
		t.Errorf("states differ: %s vs %s", once.State(), twice.State())
	}
}

func TestSelectOption_ChangeBeforeSubmit(t *testing.T) {
	s := newTestSession(t, 1)

	_ = s.SelectOption(0)
	_ = s.SelectOption(1)

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Correct {
		t.Error("expected the last selection to be scored")
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
}

func TestSubmit_ReturnsFeedback(t *testing.T) {
	s := newTestSession(t, 1)
	_ = s.SelectOption(0)

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Correct {
		t.Error("expected incorrect result")
	}
	if res.CorrectIndex != 1 || res.Selected != 0 {
		t.Errorf("result = %+v", res)
	}
	if res.Explanation != "Because." {
		t.Errorf("Explanation = %q", res.Explanation)
	}

	last, ok := s.LastResult()
	if !ok || last != res {
		t.Errorf("LastResult = (%+v, %v), want submitted result", last, ok)
	}
}

func TestSubmit_TwiceRejected(t *testing.T) {
	s := newTestSession(t, 1)
	_ = s.SelectOption(1)
	if _, err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := s.Submit(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Submit = %v, want ErrInvalidTransition", err)
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
}

func TestAdvance_RequiresReveal(t *testing.T) {
	s := newTestSession(t, 1, 1)

	if err := s.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Advance while answering = %v, want ErrInvalidTransition", err)
	}
	if s.Answered() != 0 || s.CurrentIndex() != 0 {
		t.Errorf("rejected advance mutated state: answered=%d index=%d", s.Answered(), s.CurrentIndex())
	}
}

func TestAdvance_ClearsSelection(t *testing.T) {
	s := newTestSession(t, 1, 1)
	play(t, s, 1)

	if s.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex = %d, want 1", s.CurrentIndex())
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection should be cleared after advance")
	}
	if _, ok := s.LastResult(); ok {
		t.Error("result should not be exposed after advance")
	}
}

func TestAdvance_ToCompletion(t *testing.T) {
	s := newTestSession(t, 1, 1, 1)
	play(t, s, 0, 0, 0)

	if s.State() != StateCompleted {
		t.Fatalf("State = %s, want completed", s.State())
	}
	if s.Answered() != s.Len() {
		t.Errorf("Answered = %d, want %d", s.Answered(), s.Len())
	}
	if s.CurrentIndex() != s.Len() {
		t.Errorf("CurrentIndex = %d, want %d", s.CurrentIndex(), s.Len())
	}
	if _, ok := s.Current(); ok {
		t.Error("Current should report false once completed")
	}
	if err := s.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Advance after completion = %v, want ErrInvalidTransition", err)
	}
	if err := s.SelectOption(0); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SelectOption after completion = %v, want ErrInvalidTransition", err)
	}
}

func TestScenario_AllCorrect(t *testing.T) {
	s := newTestSession(t, 1, 1, 1)
	play(t, s, 1, 1, 1)

	if s.Score() != 3 {
		t.Errorf("Score = %d, want 3", s.Score())
	}
	pct, err := s.FinalScorePercentage()
	if err != nil {
		t.Fatalf("FinalScorePercentage: %v", err)
	}
	if pct != 100 {
		t.Errorf("FinalScorePercentage = %d, want 100", pct)
	}
}

func TestScenario_OneCorrect(t *testing.T) {
	s := newTestSession(t, 1, 1, 1)
	play(t, s, 0, 1, 2)

	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
	pct, err := s.FinalScorePercentage()
	if err != nil {
		t.Fatalf("FinalScorePercentage: %v", err)
	}
	if pct != 33 {
		t.Errorf("FinalScorePercentage = %d, want 33", pct)
	}
}

func TestScenario_TwoOfThreeRoundsUp(t *testing.T) {
	s := newTestSession(t, 1, 1, 1)
	play(t, s, 1, 1, 0)

	pct, _ := s.FinalScorePercentage()
	if pct != 67 {
		t.Errorf("FinalScorePercentage = %d, want 67", pct)
	}
}

func TestScenario_EmptyQuestionSet(t *testing.T) {
	s, err := NewSession(nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if s.State() != StateCompleted {
		t.Errorf("State = %s, want completed", s.State())
	}
	pct, err := s.FinalScorePercentage()
	if err != nil {
		t.Fatalf("FinalScorePercentage: %v", err)
	}
	if pct != 0 {
		t.Errorf("FinalScorePercentage = %d, want 0", pct)
	}
	if s.Progress() != 0 {
		t.Errorf("Progress = %f, want 0", s.Progress())
	}
	if _, err := s.Submit(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Submit on empty set = %v, want ErrInvalidTransition", err)
	}

	s.Reset()
	if s.State() != StateCompleted {
		t.Errorf("State after reset = %s, want completed", s.State())
	}
}

func TestFinalScorePercentage_BeforeCompletion(t *testing.T) {
	s := newTestSession(t, 1, 1)
	play(t, s, 1)

	if _, err := s.FinalScorePercentage(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("FinalScorePercentage mid-attempt = %v, want ErrInvalidTransition", err)
	}
}

func TestProgress_LagsUntilAdvance(t *testing.T) {
	s := newTestSession(t, 1, 1, 1, 1)

	_ = s.SelectOption(1)
	_, _ = s.Submit()
	if s.Progress() != 0 {
		t.Errorf("Progress after submit = %f, want 0", s.Progress())
	}

	_ = s.Advance()
	if s.Progress() != 0.25 {
		t.Errorf("Progress after advance = %f, want 0.25", s.Progress())
	}

	play(t, s, 1, 1, 1)
	if s.Progress() != 1 {
		t.Errorf("Progress at completion = %f, want 1", s.Progress())
	}
}

func TestIsLast(t *testing.T) {
	s := newTestSession(t, 1, 1)
	if s.IsLast() {
		t.Error("first of two should not be last")
	}
	play(t, s, 1)
	if !s.IsLast() {
		t.Error("second of two should be last")
	}
	play(t, s, 1)
	if s.IsLast() {
		t.Error("completed session has no last question")
	}
}
