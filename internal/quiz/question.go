package quiz

import "slices"

// Question is a single multiple-choice question. The option index is the
// option identifier.
type Question struct {
	ID           string
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// clone returns a copy that does not share the Options backing array.
func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// validateQuestions checks every question and returns the first problem found.
func validateQuestions(questions []Question) error {
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		switch {
		case q.ID == "":
			return &QuestionDataError{Index: i, Reason: "missing id"}
		case seen[q.ID]:
			return &QuestionDataError{Index: i, ID: q.ID, Reason: "duplicate id"}
		case len(q.Options) == 0:
			return &QuestionDataError{Index: i, ID: q.ID, Reason: "no options"}
		case q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options):
			return &QuestionDataError{Index: i, ID: q.ID, Reason: "correct index out of range"}
		}
		seen[q.ID] = true
	}
	return nil
}
