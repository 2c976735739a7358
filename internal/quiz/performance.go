package quiz

// Rating buckets a final percentage for the results card.
type Rating int

const (
	RatingReview Rating = iota
	RatingGood
	RatingExcellent
)

// Performance rates a final score percentage.
func Performance(percentage int) Rating {
	switch {
	case percentage >= 80:
		return RatingExcellent
	case percentage >= 60:
		return RatingGood
	default:
		return RatingReview
	}
}

// Message is the feedback text shown for the rating.
func (r Rating) Message() string {
	switch r {
	case RatingExcellent:
		return "Excellent! You have a strong understanding of disaster preparedness. Keep practicing to maintain your skills."
	case RatingGood:
		return "Good effort! Review the learning modules to strengthen your knowledge in areas you missed."
	default:
		return "We recommend reviewing the learning modules again to better prepare for emergency situations."
	}
}
