package quiz

// State is the phase of the current question.
type State int

const (
	StateAnswering State = iota // Waiting for a selection and submit
	StateRevealed               // Answer submitted, feedback visible, selection locked
	StateCompleted              // Advanced past the last question
)

func (s State) String() string {
	switch s {
	case StateAnswering:
		return "answering"
	case StateRevealed:
		return "revealed"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
