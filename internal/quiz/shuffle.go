package quiz

import "math/rand/v2"

// Shuffle returns the questions in a random order without modifying the input.
// Options keep their order so CorrectIndex stays valid.
func Shuffle(questions []Question, rng *rand.Rand) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
