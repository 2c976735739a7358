package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuestionData is matched by errors returned from NewSession
	// when the question set is malformed.
	ErrInvalidQuestionData = errors.New("invalid question data")

	// ErrInvalidTransition is matched by errors returned from operations
	// that are not valid in the session's current state.
	ErrInvalidTransition = errors.New("invalid transition")
)

// QuestionDataError describes a malformed question found at construction.
type QuestionDataError struct {
	Index  int
	ID     string
	Reason string
}

func (e *QuestionDataError) Error() string {
	return fmt.Sprintf("question %d (%q): %s", e.Index, e.ID, e.Reason)
}

func (e *QuestionDataError) Unwrap() error { return ErrInvalidQuestionData }

// TransitionError describes a rejected operation. The session is left
// exactly as it was before the call.
type TransitionError struct {
	Op     string
	State  State
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s rejected in state %s: %s", e.Op, e.State, e.Reason)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
